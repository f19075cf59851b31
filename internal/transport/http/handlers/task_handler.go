package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/synergysphere/synergy/internal/api"
	"github.com/synergysphere/synergy/internal/repository"
	"github.com/synergysphere/synergy/internal/transport/http/middleware"
	"github.com/synergysphere/synergy/pkg/validator"
)

type TaskHandler struct {
	api *api.Service
}

func NewTaskHandler(apiService *api.Service) *TaskHandler {
	return &TaskHandler{api: apiService}
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var f repository.TaskFilter
	if raw := q.Get("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid project ID")
			return
		}
		f.ProjectID = &id
	}
	if raw := q.Get("assigned_to"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid assignee ID")
			return
		}
		f.AssignedTo = &id
	}
	f.Status = q.Get("status")
	f.Priority = q.Get("priority")
	f.Search = q.Get("q")

	writeResponse(w, http.StatusOK, h.api.ListTasks(r.Context(), f))
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid task ID")
		return
	}

	writeResponse(w, http.StatusOK, h.api.GetTask(r.Context(), taskID))
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input api.CreateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateTask(input.Title, input.Status, input.Priority, input.EstimatedHours, nil); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	writeResponse(w, http.StatusCreated, h.api.CreateTask(r.Context(), userID, input))
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	taskID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid task ID")
		return
	}

	var patch api.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	errs := make(validator.ValidationErrors)
	if patch.EstimatedHours != nil && *patch.EstimatedHours < 0 {
		errs.Add("estimated_hours", "Estimated hours cannot be negative")
	}
	if patch.ActualHours != nil && *patch.ActualHours < 0 {
		errs.Add("actual_hours", "Actual hours cannot be negative")
	}
	if errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	writeResponse(w, http.StatusOK, h.api.UpdateTask(r.Context(), userID, taskID, patch))
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	taskID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid task ID")
		return
	}

	writeResponse(w, http.StatusOK, h.api.DeleteTask(r.Context(), userID, taskID))
}
