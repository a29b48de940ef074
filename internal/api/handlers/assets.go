package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zentrader/zen-trader-backend/internal/api/request"
	"github.com/zentrader/zen-trader-backend/internal/apperrors"
	"github.com/zentrader/zen-trader-backend/internal/service"
	"github.com/zentrader/zen-trader-backend/internal/validation"
)

// AssetHandler handles HTTP requests for holdings endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the portfolioService.
type AssetHandler struct {
	portfolioService *service.PortfolioService
}

// NewAssetHandler creates a new AssetHandler with the provided service dependency.
func NewAssetHandler(portfolioService *service.PortfolioService) *AssetHandler {
	return &AssetHandler{
		portfolioService: portfolioService,
	}
}

// Add handles POST requests opening a new position.
//
// Endpoint: POST /api/assets
// Response: 201 Created with the new asset
func (h *AssetHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddAssetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validation.ValidateAddAsset(req); err != nil {
		respondValidationError(w, err)
		return
	}

	asset, err := h.portfolioService.AddAsset(req)
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to add asset",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusCreated, asset)
}

// Update handles PUT requests applying partial field edits to a position.
//
// Endpoint: PUT /api/assets/{uuid}
func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	var req request.UpdateAssetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validation.ValidateUpdateAsset(req); err != nil {
		respondValidationError(w, err)
		return
	}

	asset, err := h.portfolioService.UpdateAsset(id, req)
	if errors.Is(err, apperrors.ErrAssetNotFound) {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "asset not found"})
		return
	}
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to update asset",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, asset)
}

// Delete handles DELETE requests permanently removing a position.
//
// Endpoint: DELETE /api/assets/{uuid}
func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	err := h.portfolioService.DeleteAsset(id)
	if errors.Is(err, apperrors.ErrAssetNotFound) {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "asset not found"})
		return
	}
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to delete asset",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
