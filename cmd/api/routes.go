package main

import (
	"expvar"
	"github.com/go-chi/chi/v5"
	"net/http"
)

func (app *application) routes() http.Handler {
	router := chi.NewRouter()

	// Router
	router.NotFound(app.notFoundResponse)
	router.MethodNotAllowed(app.methodNotAllowedRequest)

	// Middleware
	router.Use(app.metrics)
	router.Use(app.recoverPanic)
	router.Use(app.enableCORS)
	router.Use(app.rateLimit)

	// Healthcheck
	router.Get("/v1/healthcheck", app.HealthCheck)
	router.Method(http.MethodGet, "/v1/metrics", expvar.Handler())

	// Player Endpoints
	router.Route("/v1/player", func(router chi.Router) {
		router.Get("/", app.GetAllPlayers)
		router.Get("/{id}", app.GetPlayer)
		router.Get("/{id}/progression", app.PlayerProgression)
		router.Post("/", app.InsertPlayer)
	})

	// Custom Stat Endpoints
	router.Route("/v1/custom-stats", func(router chi.Router) {
		router.Get("/", app.ListCustomStats)
		router.Post("/", app.SaveCustomStat)
		router.Delete("/{id}", app.DeleteCustomStat)
		router.Post("/calculate", app.CalculateCustomStat)
		router.Get("/live", app.LiveCustomStats)
	})

	// Formula Catalog
	router.Get("/v1/formulas/examples", app.FormulaExamples)

	return router
}
