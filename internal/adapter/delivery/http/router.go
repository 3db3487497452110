// Package http provides the HTTP delivery layer for the slug shortener service.
// This package contains the HTTP handlers and related types used for processing
// incoming requests, validating input, and rendering HTML or JSON responses.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/vadimbarashkov/slug-shortener/docs"
)

// NewRouter initializes and returns a new Chi router configured with middleware and routes for the slug shortener.
func NewRouter(logger *httplog.Logger, recordUseCase recordUseCase, tokenUseCase tokenUseCase) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*"},
		AllowedMethods:   []string{"POST", "GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	validate := newValidate()
	rh := newRecordHandler(recordUseCase, validate)
	th := newTokenHandler(tokenUseCase, validate)

	r.NotFound(handleNotFound)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(docs.SwaggerYAML)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", handlePing)

		r.Route("/tokens", func(r chi.Router) {
			r.Post("/refresh", th.issueRefreshToken)
			r.Get("/refresh/{token}", th.validateRefreshToken)
			r.Post("/access", th.issueAccessToken)
			r.Get("/access/{token}", th.validateAccessToken)
		})
	})

	r.Get("/", rh.listRecentlyUsed)
	r.Post("/new", rh.createRecord)
	r.Get("/{slug}", rh.resolveSlug)

	return r
}
