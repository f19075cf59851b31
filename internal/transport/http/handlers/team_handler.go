package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/synergysphere/synergy/internal/domain"
	"github.com/synergysphere/synergy/internal/policy"
	"github.com/synergysphere/synergy/internal/team"
	"github.com/synergysphere/synergy/internal/transport/http/middleware"
	"github.com/synergysphere/synergy/pkg/validator"
)

type TeamHandler struct {
	team *team.Service
}

func NewTeamHandler(teamService *team.Service) *TeamHandler {
	return &TeamHandler{team: teamService}
}

func (h *TeamHandler) Members(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, http.StatusOK, h.team.Members(r.Context()))
}

func (h *TeamHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, http.StatusOK, h.team.Stats(r.Context()))
}

func (h *TeamHandler) Search(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, http.StatusOK, h.team.SearchMembers(r.Context(), r.URL.Query().Get("q")))
}

func (h *TeamHandler) Invitations(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, http.StatusOK, h.team.PendingInvitations(r.Context()))
}

type createInvitationInput struct {
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	ProjectID *uuid.UUID `json:"project_id"`
}

func (h *TeamHandler) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetRole(r.Context())

	if !policy.CanInvite(role) {
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Only managers can invite members")
		return
	}

	var input createInvitationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateInvitation(input.Email, input.Role); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	writeResponse(w, http.StatusCreated, h.team.CreateInvitation(r.Context(), userID, input.Email, input.Role, input.ProjectID))
}

func (h *TeamHandler) CancelInvitation(w http.ResponseWriter, r *http.Request) {
	role := middleware.GetRole(r.Context())
	if !policy.CanManageTeam(role) {
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Only managers can cancel invitations")
		return
	}

	inviteID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid invitation ID")
		return
	}

	writeResponse(w, http.StatusOK, h.team.CancelInvitation(r.Context(), inviteID))
}

type updateRoleInput struct {
	Role string `json:"role"`
}

func (h *TeamHandler) UpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	role := middleware.GetRole(r.Context())
	if !policy.CanManageTeam(role) {
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Only managers can change member roles")
		return
	}

	memberID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid member ID")
		return
	}

	var input updateRoleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if input.Role != domain.RoleManager && input.Role != domain.RoleTeam {
		errs := make(validator.ValidationErrors)
		errs.Add("role", "Role must be manager or team")
		writeValidationErrors(w, errs)
		return
	}

	writeResponse(w, http.StatusOK, h.team.UpdateMemberRole(r.Context(), memberID, input.Role))
}

func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	role := middleware.GetRole(r.Context())
	if !policy.CanManageTeam(role) {
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Only managers can remove members")
		return
	}

	memberID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid member ID")
		return
	}

	writeResponse(w, http.StatusOK, h.team.RemoveMember(r.Context(), memberID))
}
