package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/synergysphere/synergy/internal/api"
	"github.com/synergysphere/synergy/internal/policy"
	"github.com/synergysphere/synergy/internal/repository"
	"github.com/synergysphere/synergy/internal/transport/http/middleware"
	"github.com/synergysphere/synergy/pkg/validator"
)

type ProjectHandler struct {
	api *api.Service
}

func NewProjectHandler(apiService *api.Service) *ProjectHandler {
	return &ProjectHandler{api: apiService}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetRole(r.Context())

	f := repository.ProjectFilter{
		ViewerID:    userID,
		ManagerView: policy.CanCreateProject(role),
		Status:      r.URL.Query().Get("status"),
		Search:      r.URL.Query().Get("q"),
	}

	writeResponse(w, http.StatusOK, h.api.ListProjects(r.Context(), f))
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid project ID")
		return
	}

	writeResponse(w, http.StatusOK, h.api.GetProject(r.Context(), projectID))
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetRole(r.Context())

	if !policy.CanCreateProject(role) {
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Only managers can create projects")
		return
	}

	var input api.CreateProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateProject(input.Title, input.Status, input.Priority, input.Progress, input.StartDate, input.DueDate); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	writeResponse(w, http.StatusCreated, h.api.CreateProject(r.Context(), userID, input))
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid project ID")
		return
	}

	var patch api.ProjectPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if patch.Progress != nil && (*patch.Progress < 0 || *patch.Progress > 100) {
		errs := make(validator.ValidationErrors)
		errs.Add("progress", "Progress must be between 0 and 100")
		writeValidationErrors(w, errs)
		return
	}

	writeResponse(w, http.StatusOK, h.api.UpdateProject(r.Context(), userID, projectID, patch))
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetRole(r.Context())

	if !policy.CanDeleteProject(role) {
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Only managers can delete projects")
		return
	}

	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid project ID")
		return
	}

	writeResponse(w, http.StatusOK, h.api.DeleteProject(r.Context(), userID, projectID))
}
