package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/synergysphere/synergy/internal/api"
	"github.com/synergysphere/synergy/internal/transport/http/middleware"
)

type ProfileHandler struct {
	api *api.Service
}

func NewProfileHandler(apiService *api.Service) *ProfileHandler {
	return &ProfileHandler{api: apiService}
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, http.StatusOK, h.api.ListProfiles(r.Context()))
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid profile ID")
		return
	}

	writeResponse(w, http.StatusOK, h.api.GetProfile(r.Context(), profileID))
}

// UpdateMe patches the signed-in user's own profile.
func (h *ProfileHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var patch api.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	// Role changes go through the team endpoints, not self-service.
	patch.Role = nil

	writeResponse(w, http.StatusOK, h.api.UpdateProfile(r.Context(), userID, patch))
}
