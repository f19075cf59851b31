package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/synergysphere/synergy/internal/api"
	"github.com/synergysphere/synergy/internal/transport/http/middleware"
	"github.com/synergysphere/synergy/pkg/validator"
)

type MessageHandler struct {
	api *api.Service
}

func NewMessageHandler(apiService *api.Service) *MessageHandler {
	return &MessageHandler{api: apiService}
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	var projectID *uuid.UUID
	if raw := r.URL.Query().Get("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid project ID")
			return
		}
		projectID = &id
	}

	writeResponse(w, http.StatusOK, h.api.ListMessages(r.Context(), projectID))
}

func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input api.CreateMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateMessage(input.Content, input.MessageType); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	writeResponse(w, http.StatusCreated, h.api.CreateMessage(r.Context(), userID, input))
}
