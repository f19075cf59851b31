package handlers

import (
	"log"
	"net/http"

	"github.com/synergysphere/synergy/internal/auth"
	"github.com/synergysphere/synergy/internal/insights"
	"github.com/synergysphere/synergy/internal/transport/http/middleware"
)

type InsightsHandler struct {
	insights    *insights.Service
	authService *auth.Service
}

func NewInsightsHandler(insightsService *insights.Service, authService *auth.Service) *InsightsHandler {
	return &InsightsHandler{insights: insightsService, authService: authService}
}

func (h *InsightsHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, http.StatusOK, h.insights.Recommendations())
}

func (h *InsightsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	viewer, err := h.authService.CurrentUser(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR dashboard summary: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}
	if viewer == nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}

	writeResponse(w, http.StatusOK, h.insights.Summary(r.Context(), viewer))
}
