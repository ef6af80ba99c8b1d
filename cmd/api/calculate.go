package main

import (
	"StatLabApi/internal/data"
	"StatLabApi/internal/formula"
	"StatLabApi/internal/validator"
	"errors"
	"math"
	"net/http"
	"strconv"
)

// calculationResult is one leaderboard row. The embedded player carries the
// team it played for in the ranked season, and values are rounded to two
// decimals here at the presentation boundary only.
type calculationResult struct {
	Player     data.Player `json:"player"`
	CustomStat float64     `json:"custom_stat"`
	BestSeason string      `json:"best_season"`
	Rank       int         `json:"rank"`
}

func (app *application) CalculateCustomStat(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Formula string `json:"formula"`
		Season  string `json:"season"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(input.Formula != "", "formula", "must be provided")
	v.Check(len(input.Formula) <= 500, "formula", "must be 500 characters or less")
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	results, err := app.runCalculation(input.Formula, input.Season)
	if err != nil {
		app.calculationErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"results": results}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// runCalculation loads fresh snapshots of the registry and player data, runs
// the engine and shapes the ranked results for output. Both the HTTP handler
// and the live preview hub go through here.
func (app *application) runCalculation(rawFormula, season string) ([]calculationResult, error) {
	stats, err := app.models.CustomStats.GetAll()
	if err != nil {
		return nil, err
	}

	players, err := app.models.Players.Snapshot()
	if err != nil {
		return nil, err
	}

	outcome, err := formula.Calculate(rawFormula, formula.ScopeFor(season), players,
		namedFormulas(stats))
	if err != nil {
		return nil, err
	}

	if outcome.Skipped > 0 {
		app.logger.PrintInfo("records skipped during calculation", map[string]string{
			"formula": rawFormula,
			"skipped": strconv.Itoa(outcome.Skipped),
		})
	}

	limit := app.config.calc.maxResults
	if len(outcome.Results) < limit {
		limit = len(outcome.Results)
	}

	results := make([]calculationResult, 0, limit)
	for _, res := range outcome.Results[:limit] {
		player := *res.Player
		player.Seasons = nil
		if res.Record.Team != "" {
			player.Team = res.Record.Team
		}

		results = append(results, calculationResult{
			Player:     player,
			CustomStat: math.Round(res.Value*100) / 100,
			BestSeason: res.Season,
			Rank:       res.Rank,
		})
	}

	return results, nil
}

// calculationErrorResponse translates engine errors onto the HTTP boundary:
// structural formula problems are the client's fault, a missing dataset is ours.
func (app *application) calculationErrorResponse(w http.ResponseWriter, r *http.Request,
	err error) {
	var cycleErr *formula.CycleError
	var noStatsErr *formula.NoValidStatsError

	switch {
	case errors.As(err, &cycleErr), errors.As(err, &noStatsErr):
		app.errorResponse(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, formula.ErrEmptyDataset):
		app.logError(r, err)
		app.errorResponse(w, r, http.StatusInternalServerError, err.Error())
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func namedFormulas(stats []*data.CustomStat) []formula.NamedFormula {
	named := make([]formula.NamedFormula, 0, len(stats))
	for _, stat := range stats {
		named = append(named, formula.NamedFormula{Name: stat.Name, Formula: stat.Formula})
	}
	return named
}

// PlayerProgression returns a player's per-season values for one formula,
// oldest season first, for career progression charts. Seasons whose evaluation
// fails or produces a non-finite value are left out of the series.
func (app *application) PlayerProgression(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	rawFormula := app.readString(r.URL.Query(), "formula", "")
	v := validator.New()
	v.Check(rawFormula != "", "formula", "must be provided")
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
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

	stats, err := app.models.CustomStats.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resolved, err := formula.Resolve(rawFormula, namedFormulas(stats))
	if err != nil {
		app.calculationErrorResponse(w, r, err)
		return
	}
	if !formula.ContainsStatToken(resolved) {
		app.calculationErrorResponse(w, r, &formula.NoValidStatsError{Formula: rawFormula})
		return
	}

	type seasonPoint struct {
		Season string  `json:"season"`
		Team   string  `json:"team"`
		Value  float64 `json:"value"`
	}

	series := make([]seasonPoint, 0, len(player.Seasons))
	for i := range player.Seasons {
		rec := &player.Seasons[i]
		value, err := formula.Evaluate(resolved, rec)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}

		series = append(series, seasonPoint{
			Season: rec.Season,
			Team:   rec.Team,
			Value:  math.Round(value*100) / 100,
		})
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"player_id":   player.ID,
		"player_name": player.Name,
		"formula":     rawFormula,
		"progression": series,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
