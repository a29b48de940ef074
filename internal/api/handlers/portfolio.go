package handlers

import (
	"net/http"

	"github.com/zentrader/zen-trader-backend/internal/api/request"
	"github.com/zentrader/zen-trader-backend/internal/service"
	"github.com/zentrader/zen-trader-backend/internal/validation"
)

// PortfolioHandler handles portfolio-related HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Portfolio handles GET requests for the raw portfolio state.
//
// Endpoint: GET /api/portfolio
func (h *PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	portfolio, err := h.portfolioService.GetPortfolio()
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to retrieve portfolio",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, portfolio)
}

// Summary handles GET requests for the dashboard aggregate: totals,
// bucket allocation, rebalance flag, daily movers.
//
// Endpoint: GET /api/portfolio/summary
func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.portfolioService.GetSummary()
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to compute portfolio summary",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// UpdateCash handles PUT requests setting the absolute cash balance.
//
// Endpoint: PUT /api/portfolio/cash
func (h *PortfolioHandler) UpdateCash(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateCashRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validation.ValidateUpdateCash(req); err != nil {
		respondValidationError(w, err)
		return
	}

	if err := h.portfolioService.UpdateCash(req); err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to update cash balance",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// Reset handles POST requests restoring the default portfolio and
// clearing the journal. Irreversible.
//
// Endpoint: POST /api/portfolio/reset
func (h *PortfolioHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.portfolioService.Reset(); err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to reset portfolio",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// RefreshEOD handles POST requests running the end-of-day price
// refresh. A provider failure is a 200 with failed=true, not an
// error status: the client offers a retry, nothing was mutated.
//
// Endpoint: POST /api/portfolio/refresh
func (h *PortfolioHandler) RefreshEOD(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.portfolioService.RefreshEOD(r.Context())
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to run EOD refresh",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}
