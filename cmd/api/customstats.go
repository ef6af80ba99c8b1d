package main

import (
	"StatLabApi/internal/data"
	"StatLabApi/internal/formula"
	"StatLabApi/internal/validator"
	"errors"
	"fmt"
	"net/http"
)

func (app *application) ListCustomStats(w http.ResponseWriter, r *http.Request) {
	stats, err := app.models.CustomStats.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"custom_stats": stats}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) SaveCustomStat(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name        string `json:"name"`
		Formula     string `json:"formula"`
		Description string `json:"description"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	stat := &data.CustomStat{
		Name:        input.Name,
		Formula:     input.Formula,
		Description: input.Description,
	}

	v := validator.New()
	if data.ValidateCustomStat(v, stat, formula.TokenNames()); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	// The new formula must resolve cleanly against the current registry and
	// reference at least one stat token once fully expanded.
	existing, err := app.models.CustomStats.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resolved, err := formula.Resolve(stat.Formula, namedFormulas(existing))
	if err != nil {
		var cycleErr *formula.CycleError
		switch {
		case errors.As(err, &cycleErr):
			v.AddError("formula", err.Error())
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}
	if !formula.ContainsStatToken(resolved) {
		v.AddError("formula", "must reference at least one valid stat token")
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.CustomStats.Insert(stat)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrDuplicateFormulaName):
			v.AddError("name", "must be unique")
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.notifyRegistryChanged()

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/custom-stats/%d", stat.ID))
	err = app.writeJSON(w, http.StatusCreated, envelope{"custom_stat": stat}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteCustomStat(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.models.CustomStats.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.notifyRegistryChanged()

	err = app.writeJSON(w, http.StatusOK, envelope{
		"message": "custom stat successfully deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// notifyRegistryChanged tells live preview watchers the saved-formula registry
// moved under them so they can resubmit their drafts.
func (app *application) notifyRegistryChanged() {
	app.backgroundTask(func() {
		app.statsHub.Broadcast <- []byte(`{"event":"registry_updated"}`)
	})
}
