// Package app wires the portal router: middleware, health check and the
// UI routes.
package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"codemap-portal/internal/catalog"
	"codemap-portal/internal/config"
	"codemap-portal/internal/middleware"
	"codemap-portal/internal/ui"
)

// Deps holds what main() must provide.
type Deps struct {
	Cfg     *config.Config
	Catalog *catalog.Catalog
	Logger  *slog.Logger
}

// NewRouter builds the HTTP handler. ctx bounds background work such as
// the rate limiter sweeper.
func NewRouter(ctx context.Context, deps Deps) http.Handler {
	cfg := deps.Cfg
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(logger.With("component", "http")))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimiter(ctx, middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
		ExemptPrefixes:    []string{"/healthz", "/ui/static/"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	h := ui.NewHandler(deps.Catalog, logger.With("component", "ui"), cfg.IsProduction())
	ui.MountLanding(r, h)
	r.Route("/ui", func(r chi.Router) {
		ui.MountRoutes(r, h)
	})
	return r
}
