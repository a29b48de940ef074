package handlers

import (
	"errors"
	"net/http"

	"github.com/zentrader/zen-trader-backend/internal/api/request"
	"github.com/zentrader/zen-trader-backend/internal/apperrors"
	"github.com/zentrader/zen-trader-backend/internal/service"
	"github.com/zentrader/zen-trader-backend/internal/validation"
)

// ChecklistHandler handles HTTP requests for the SOP evaluation session.
type ChecklistHandler struct {
	checklistService *service.ChecklistService
}

// NewChecklistHandler creates a new ChecklistHandler.
func NewChecklistHandler(checklistService *service.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{
		checklistService: checklistService,
	}
}

// Session handles GET requests for the current session and verdict.
//
// Endpoint: GET /api/checklist
func (h *ChecklistHandler) Session(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.checklistService.Session())
}

// SetInputs handles PUT requests updating symbol/price/direction.
//
// Endpoint: PUT /api/checklist/inputs
func (h *ChecklistHandler) SetInputs(w http.ResponseWriter, r *http.Request) {
	var req request.SessionInputsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validation.ValidateSessionInputs(req); err != nil {
		respondValidationError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.checklistService.SetInputs(req))
}

// SetStatus handles PUT requests overwriting one step's status.
//
// Endpoint: PUT /api/checklist/status
func (h *ChecklistHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req request.SetStepStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validation.ValidateSetStepStatus(req); err != nil {
		respondValidationError(w, err)
		return
	}

	session, err := h.checklistService.SetStatus(req)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// SetNote handles PUT requests attaching an observation to one step.
//
// Endpoint: PUT /api/checklist/note
func (h *ChecklistHandler) SetNote(w http.ResponseWriter, r *http.Request) {
	var req request.SetStepNoteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validation.ValidateSetStepNote(req); err != nil {
		respondValidationError(w, err)
		return
	}

	session, err := h.checklistService.SetNote(req)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// SelectRule handles PUT requests toggling the active hard-stop rule.
//
// Endpoint: PUT /api/checklist/rule
func (h *ChecklistHandler) SelectRule(w http.ResponseWriter, r *http.Request) {
	var req request.SelectRuleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validation.ValidateSelectRule(req); err != nil {
		respondValidationError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.checklistService.SelectRule(req))
}

// Save handles POST requests freezing the session into a journal
// entry. A missing symbol is a 400; a successful save starts a fresh
// session.
//
// Endpoint: POST /api/checklist/save
func (h *ChecklistHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req request.SaveSessionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.checklistService.Save(req)
	if errors.Is(err, apperrors.ErrSymbolRequired) {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "symbol is required"})
		return
	}
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to save session",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

// Reset handles POST requests discarding the session without saving.
//
// Endpoint: POST /api/checklist/reset
func (h *ChecklistHandler) Reset(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.checklistService.Reset())
}
