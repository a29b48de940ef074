package testutil

import (
	"database/sql"
	"testing"

	"github.com/zentrader/zen-trader-backend/internal/model"
	"github.com/zentrader/zen-trader-backend/internal/quote"
	"github.com/zentrader/zen-trader-backend/internal/repository"
	"github.com/zentrader/zen-trader-backend/internal/service"
)

func NewTestPortfolioService(t *testing.T, db *sql.DB, provider quote.Provider) *service.PortfolioService {
	t.Helper()

	stateRepo := repository.NewStateRepository(db)
	return service.NewPortfolioService(stateRepo, provider)
}

func NewTestJournalService(t *testing.T, db *sql.DB) *service.JournalService {
	t.Helper()

	stateRepo := repository.NewStateRepository(db)
	return service.NewJournalService(stateRepo)
}

func NewTestRiskService(t *testing.T, db *sql.DB) *service.RiskService {
	t.Helper()

	return service.NewRiskService(NewTestPortfolioService(t, db, nil))
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

func NewTestChecklistService(t *testing.T, db *sql.DB) *service.ChecklistService {
	t.Helper()

	return service.NewChecklistService(NewTestJournalService(t, db), NewTestRiskService(t, db))
}

// SeedPortfolio writes a portfolio directly through the repository so
// tests can start from a known state.
func SeedPortfolio(t *testing.T, db *sql.DB, p model.Portfolio) {
	t.Helper()

	stateRepo := repository.NewStateRepository(db)
	if err := stateRepo.SavePortfolio(p); err != nil {
		t.Fatalf("Failed to seed portfolio: %v", err)
	}
}
