package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/oneacre/farmbooks/internal/adapter/http/handler"
	"github.com/oneacre/farmbooks/internal/adapter/http/middleware"
	"github.com/oneacre/farmbooks/internal/infrastructure/metrics"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	TransactionHandler *handler.TransactionHandler
	CategoryHandler    *handler.CategoryHandler
	SummaryHandler     *handler.SummaryHandler
	HerdHandler        *handler.HerdHandler
	AssetHandler       *handler.AssetHandler
	LiabilityHandler   *handler.LiabilityHandler
	InventoryHandler   *handler.InventoryHandler
	ReportHandler      *handler.ReportHandler
	AdviceHandler      *handler.AdviceHandler
	ProfileHandler     *handler.ProfileHandler
	HealthHandler      *handler.HealthHandler

	Logger  zerolog.Logger
	Metrics *metrics.Metrics
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}
	r.Use(middleware.Recovery)

	// Health and observability endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Transactions
		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", cfg.TransactionHandler.Create)
			r.Get("/", cfg.TransactionHandler.List)
			r.Delete("/{id}", cfg.TransactionHandler.Delete)
		})

		// Categories
		r.Route("/categories", func(r chi.Router) {
			r.Post("/", cfg.CategoryHandler.Create)
			r.Get("/", cfg.CategoryHandler.List)
			r.Put("/{id}", cfg.CategoryHandler.Update)
			r.Delete("/{id}", cfg.CategoryHandler.Delete)
		})

		// Aggregate views
		r.Route("/summary", func(r chi.Router) {
			r.Get("/", cfg.SummaryHandler.Totals)
			r.Get("/monthly", cfg.SummaryHandler.Monthly)
			r.Get("/categories", cfg.SummaryHandler.Categories)
		})

		// Livestock
		r.Route("/herd", func(r chi.Router) {
			r.Route("/species", func(r chi.Router) {
				r.Post("/", cfg.HerdHandler.CreateSpecies)
				r.Get("/", cfg.HerdHandler.ListSpecies)
				r.Get("/{id}", cfg.HerdHandler.GetSpecies)
				r.Delete("/{id}", cfg.HerdHandler.DeleteSpecies)
			})
			r.Route("/logs", func(r chi.Router) {
				r.Post("/", cfg.HerdHandler.CreateLog)
				r.Get("/", cfg.HerdHandler.ListLogs)
			})
			r.Get("/alerts", cfg.HerdHandler.Alerts)
			r.Get("/mortality", cfg.HerdHandler.Mortality)
		})

		// Fixed assets
		r.Route("/assets", func(r chi.Router) {
			r.Post("/", cfg.AssetHandler.Create)
			r.Get("/", cfg.AssetHandler.List)
			r.Get("/consolidated", cfg.AssetHandler.Consolidated)
			r.Delete("/{id}", cfg.AssetHandler.Delete)
		})

		// Liabilities
		r.Route("/liabilities", func(r chi.Router) {
			r.Post("/", cfg.LiabilityHandler.Create)
			r.Get("/", cfg.LiabilityHandler.List)
			r.Delete("/{id}", cfg.LiabilityHandler.Delete)
		})

		// Inventory
		r.Route("/inventory", func(r chi.Router) {
			r.Route("/items", func(r chi.Router) {
				r.Post("/", cfg.InventoryHandler.CreateItem)
				r.Get("/", cfg.InventoryHandler.ListItems)
				r.Delete("/{id}", cfg.InventoryHandler.DeleteItem)
			})
			r.Route("/movements", func(r chi.Router) {
				r.Post("/", cfg.InventoryHandler.CreateMovement)
				r.Get("/", cfg.InventoryHandler.ListMovements)
			})
			r.Get("/summary", cfg.InventoryHandler.Summary)
		})

		// Reports
		r.Get("/reports/{name}", cfg.ReportHandler.Get)

		// Advisor
		r.Post("/advice", cfg.AdviceHandler.Generate)
		r.Post("/advice/category", cfg.AdviceHandler.SuggestCategory)

		// Profile
		r.Get("/profile", cfg.ProfileHandler.Get)
		r.Put("/profile", cfg.ProfileHandler.Update)
	})

	return r
}
