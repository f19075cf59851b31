package handlers

import (
	"net/http"
	"strconv"

	"github.com/synergysphere/synergy/internal/api"
	"github.com/synergysphere/synergy/internal/transport/http/middleware"
)

type ActivityHandler struct {
	api *api.Service
}

func NewActivityHandler(apiService *api.Service) *ActivityHandler {
	return &ActivityHandler{api: apiService}
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "INVALID_LIMIT", "Limit must be a positive number")
			return
		}
		limit = n
	}

	writeResponse(w, http.StatusOK, h.api.ListActivity(r.Context(), userID, limit))
}
