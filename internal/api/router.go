package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zentrader/zen-trader-backend/internal/api/handlers"
	custommiddleware "github.com/zentrader/zen-trader-backend/internal/api/middleware"
	"github.com/zentrader/zen-trader-backend/internal/config"
	"github.com/zentrader/zen-trader-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	portfolioService *service.PortfolioService,
	checklistService *service.ChecklistService,
	riskService *service.RiskService,
	journalService *service.JournalService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
			r.Get("/", portfolioHandler.Portfolio)
			r.Get("/summary", portfolioHandler.Summary)
			r.Put("/cash", portfolioHandler.UpdateCash)
			r.Post("/reset", portfolioHandler.Reset)
			r.Post("/refresh", portfolioHandler.RefreshEOD)
		})

		r.Route("/assets", func(r chi.Router) {
			assetHandler := handlers.NewAssetHandler(portfolioService)
			r.Post("/", assetHandler.Add)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", assetHandler.Update)
				r.Delete("/", assetHandler.Delete)
			})
		})

		r.Route("/checklist", func(r chi.Router) {
			checklistHandler := handlers.NewChecklistHandler(checklistService)
			r.Get("/", checklistHandler.Session)
			r.Put("/inputs", checklistHandler.SetInputs)
			r.Put("/status", checklistHandler.SetStatus)
			r.Put("/note", checklistHandler.SetNote)
			r.Put("/rule", checklistHandler.SelectRule)
			r.Post("/save", checklistHandler.Save)
			r.Post("/reset", checklistHandler.Reset)
		})

		r.Route("/risk", func(r chi.Router) {
			riskHandler := handlers.NewRiskHandler(riskService)
			r.Get("/", riskHandler.View)
			r.Put("/inputs", riskHandler.SetInputs)
		})

		r.Route("/journal", func(r chi.Router) {
			journalHandler := handlers.NewJournalHandler(journalService)
			r.Get("/", journalHandler.List)
		})
	})

	return r
}
