package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/zentrader/zen-trader-backend/internal/api"
	"github.com/zentrader/zen-trader-backend/internal/config"
	"github.com/zentrader/zen-trader-backend/internal/database"
	"github.com/zentrader/zen-trader-backend/internal/quote"
	"github.com/zentrader/zen-trader-backend/internal/repository"
	"github.com/zentrader/zen-trader-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.State.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to state database: %s", cfg.State.Path)

	// Quote provider; without an API key the EOD refresh reports
	// failure instead of fetching prices.
	var provider quote.Provider
	if cfg.Quote.APIKey != "" {
		gemini, err := quote.NewGeminiProvider(context.Background(), cfg.Quote.APIKey, cfg.Quote.Model, cfg.Quote.Timeout)
		if err != nil {
			log.Fatalf("Failed to initialize quote provider: %v", err)
		}
		provider = gemini
	} else {
		log.Println("GEMINI_API_KEY not set; EOD price refresh disabled")
	}

	// Create repository and services
	stateRepo := repository.NewStateRepository(db)

	systemService := service.NewSystemService(db)
	portfolioService := service.NewPortfolioService(stateRepo, provider)
	journalService := service.NewJournalService(stateRepo)
	riskService := service.NewRiskService(portfolioService)
	checklistService := service.NewChecklistService(journalService, riskService)

	// Create router
	router := api.NewRouter(systemService, portfolioService, checklistService, riskService, journalService, cfg)

	// Optional scheduled EOD refresh
	var scheduler *cron.Cron
	if cfg.Quote.Schedule != "" {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.Quote.Schedule, func() {
			outcome, err := portfolioService.RefreshEOD(context.Background())
			if err != nil {
				log.Printf("Scheduled EOD refresh error: %v", err)
				return
			}
			log.Printf("Scheduled EOD refresh: %d/%d symbols updated, failed=%t", outcome.Updated, outcome.Symbols, outcome.Failed)
		})
		if err != nil {
			log.Fatalf("Invalid EOD_REFRESH_SCHEDULE: %v", err)
		}
		scheduler.Start()
		log.Printf("EOD refresh scheduled: %s", cfg.Quote.Schedule)
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
