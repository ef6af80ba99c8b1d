package main

import (
	"StatLabApi/internal/data"
	"StatLabApi/internal/validator"
	"errors"
	"fmt"
	"net/http"
)

func (app *application) InsertPlayer(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name          string              `json:"name"`
		Team          string              `json:"team"`
		Position      string              `json:"position"`
		CurrentSeason string              `json:"current_season"`
		Current       data.SeasonRecord   `json:"current"`
		Seasons       []data.SeasonRecord `json:"seasons"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	player := &data.Player{
		Name:          input.Name,
		Team:          input.Team,
		Position:      input.Position,
		CurrentSeason: input.CurrentSeason,
		Current:       input.Current,
		Seasons:       input.Seasons,
	}

	v := validator.New()
	if data.ValidatePlayer(v, player); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Players.Insert(player)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrDuplicateSeason):
			v.AddError("seasons", "must not repeat a season and team stint")
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/player/%d", player.ID))
	err = app.writeJSON(w, http.StatusCreated, envelope{"player": player}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	player, err := app.models.Players.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"player": player}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetAllPlayers(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string
		Team     string
		Position string
		data.Filters
	}

	v := validator.New()
	qs := r.URL.Query()

	input.Name = app.readString(qs, "name", "")
	input.Team = app.readString(qs, "team", "")
	input.Position = app.readString(qs, "position", "")

	input.Filters.Page = app.readInt(qs, "page", 1, v)
	input.Filters.PageSize = app.readInt(qs, "page_size", 20, v)
	input.Filters.Sort = app.readString(qs, "sort", "name")
	input.Filters.SortSafeList = []string{"id", "name", "team", "-id", "-name", "-team"}

	if data.ValidateFilters(v, input.Filters); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	players, metadata, err := app.models.Players.GetAll(input.Name, input.Team, input.Position,
		input.Filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"metadata": metadata, "players": players}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
