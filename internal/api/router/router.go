// Package router wires the HTTP routes using Chi.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkitools/keyscan/internal/api/handler"
	"github.com/pkitools/keyscan/internal/api/middleware"
	"github.com/pkitools/keyscan/internal/scan"
)

// Config holds router configuration.
type Config struct {
	Version string
	Scan    *scan.Config
}

// New creates a Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.CORS)

	healthHandler := handler.NewHealthHandler(cfg.Version)
	r.Get("/health", healthHandler.Health)

	scanHandler := handler.NewScanHandler(cfg.Scan)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/scan", scanHandler.Scan)
	})

	return r
}
