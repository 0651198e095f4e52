package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dougbrunos/go-rest-apis/internal/api"
	apimiddleware "github.com/dougbrunos/go-rest-apis/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.NewTraceMiddleware(app.logger))
	r.Use(apimiddleware.Metrics)

	personHandler := api.NewPersonHandler(app.personService, app.logger)
	bookHandler := api.NewBookHandler(app.bookService, app.logger)
	mathHandler := api.NewMathHandler(app.calculator, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/person", func(r chi.Router) {
			r.Route("/v1", func(r chi.Router) {
				r.Get("/", personHandler.List)
				r.Get("/{id}", personHandler.GetByID)
				r.Post("/", personHandler.Create)
				r.Put("/", personHandler.Update)
				r.Delete("/{id}", personHandler.Delete)
			})
			r.Route("/v2", func(r chi.Router) {
				r.Post("/", personHandler.CreateV2)
				r.Get("/{id}", personHandler.GetByIDV2)
			})
		})

		r.Route("/book/v1", func(r chi.Router) {
			r.Get("/", bookHandler.List)
			r.Get("/{id}", bookHandler.GetByID)
			r.Post("/", bookHandler.Create)
			r.Put("/", bookHandler.Update)
			r.Delete("/{id}", bookHandler.Delete)
		})
	})

	r.Route("/math", func(r chi.Router) {
		r.Get("/sum/{numberOne}/{numberTwo}", mathHandler.Sum)
		r.Get("/sub/{numberOne}/{numberTwo}", mathHandler.Sub)
		r.Get("/mult/{numberOne}/{numberTwo}", mathHandler.Mult)
		r.Get("/div/{numberOne}/{numberTwo}", mathHandler.Div)
		r.Get("/mean/{numberOne}/{numberTwo}", mathHandler.Mean)
		r.Get("/squareroot/{number}", mathHandler.SquareRoot)
	})

	// Operational endpoints
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
