package main

import (
	"StatLabApi/internal/formula"
	"net/http"
	"strings"
)

func (app *application) HealthCheck(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": app.config.env,
			"version":     app.config.version,
		},
		"calculation_info": map[string]any{
			"max_results": app.config.calc.maxResults,
			"stat_tokens": strings.Join(formula.TokenNames(), " | "),
		},
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
