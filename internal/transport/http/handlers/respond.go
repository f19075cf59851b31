package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/synergysphere/synergy/internal/api"
	"github.com/synergysphere/synergy/pkg/validator"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func writeValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error": map[string]any{
			"code":   "VALIDATION_ERROR",
			"fields": errs,
		},
	})
}

// writeResponse serializes an operation envelope. The envelope itself
// reports success or failure; the HTTP status mirrors it so plain
// clients behave sensibly too.
func writeResponse[T any](w http.ResponseWriter, okStatus int, resp api.Response[T]) {
	if resp.Success {
		writeJSON(w, okStatus, resp)
		return
	}
	writeJSON(w, http.StatusInternalServerError, resp)
}
