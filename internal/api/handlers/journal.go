package handlers

import (
	"net/http"

	"github.com/zentrader/zen-trader-backend/internal/model"
	"github.com/zentrader/zen-trader-backend/internal/service"
)

// JournalHandler handles HTTP requests for the trade journal.
type JournalHandler struct {
	journalService *service.JournalService
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
	}
}

// List handles GET requests for journal entries, newest first.
// The optional result query parameter filters by verdict
// ("Tradable", "Observe", "No Trade").
//
// Endpoint: GET /api/journal?result=Tradable
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.TradeResult(r.URL.Query().Get("result"))
	switch filter {
	case "", model.ResultTradable, model.ResultObserve, model.ResultNoTrade:
	default:
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": "result must be one of Tradable, Observe, No Trade",
		})
		return
	}

	entries, err := h.journalService.List(filter)
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to retrieve journal",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}
