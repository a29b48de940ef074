package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/zentrader/zen-trader-backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// decodeBody decodes a JSON request body into dst, responding with
// 400 Bad Request on malformed input. Returns false when the request
// has already been answered.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Invalid request body",
			"detail": err.Error(),
		})
		return false
	}
	return true
}

// respondValidationError renders a validation failure as a field map
// when possible, falling back to a plain message.
func respondValidationError(w http.ResponseWriter, err error) {
	if vErr, ok := err.(*validation.Error); ok {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": vErr.Fields,
		})
		return
	}
	respondJSON(w, http.StatusBadRequest, map[string]string{
		"error":  "validation failed",
		"detail": err.Error(),
	})
}
