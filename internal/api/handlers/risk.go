package handlers

import (
	"net/http"

	"github.com/zentrader/zen-trader-backend/internal/api/request"
	"github.com/zentrader/zen-trader-backend/internal/service"
)

// RiskHandler handles HTTP requests for the position-sizing calculator.
type RiskHandler struct {
	riskService *service.RiskService
}

// NewRiskHandler creates a new RiskHandler.
func NewRiskHandler(riskService *service.RiskService) *RiskHandler {
	return &RiskHandler{
		riskService: riskService,
	}
}

// View handles GET requests for the current inputs and sizing result.
//
// Endpoint: GET /api/risk
func (h *RiskHandler) View(w http.ResponseWriter, r *http.Request) {
	view, err := h.riskService.View()
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to compute position size",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// SetInputs handles PUT requests applying partial input changes. The
// response carries the recomputed result set.
//
// Endpoint: PUT /api/risk/inputs
func (h *RiskHandler) SetInputs(w http.ResponseWriter, r *http.Request) {
	var req request.RiskInputsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	view, err := h.riskService.SetInputs(req)
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to compute position size",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, view)
}
