package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/henry1266/pharmacy-ledger/internal/adapter/http/handler"
	"github.com/henry1266/pharmacy-ledger/internal/adapter/http/middleware"
	"github.com/henry1266/pharmacy-ledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	TransactionHandler *handler.TransactionHandler
	LineageHandler     *handler.LineageHandler
	HealthHandler      *handler.HealthHandler
	IdempotencyStore   usecase.IdempotencyStore
	IdempotencyTTL     time.Duration
	RateLimiter        *middleware.RateLimiter
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Metrics)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", cfg.TransactionHandler.Create)
			r.Get("/", cfg.TransactionHandler.List)
			r.Post("/validate", cfg.TransactionHandler.Validate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", cfg.TransactionHandler.Get)
				r.Put("/", cfg.TransactionHandler.Update)
				r.Delete("/", cfg.TransactionHandler.Delete)
				r.Post("/confirm", cfg.TransactionHandler.Confirm)
				r.Post("/cancel", cfg.TransactionHandler.Cancel)
				r.Get("/permissions", cfg.TransactionHandler.Permissions)
				r.Get("/copy", cfg.TransactionHandler.Copy)
				r.Get("/funding-chain", cfg.LineageHandler.FundingChain)
				r.Get("/linked", cfg.LineageHandler.Linked)
			})
		})
	})

	return r
}
