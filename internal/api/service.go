// Package api is the data-access layer: every remote operation goes
// through Service and comes back wrapped in the Response envelope. The
// store behind it is chosen at startup (Postgres when configured, canned
// demo data otherwise), so no operation here checks configuration.
package api

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/synergysphere/synergy/internal/domain"
	"github.com/synergysphere/synergy/internal/repository"
)

// Notifier broadcasts real-time events to connected dashboard clients.
type Notifier interface {
	NotifyNewMessage(msg *domain.TeamMessage)
}

type Service struct {
	store    *repository.Store
	log      *zap.SugaredLogger
	notifier Notifier
}

func NewService(store *repository.Store, log *zap.SugaredLogger) *Service {
	return &Service{store: store, log: log}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

// --- Profiles ---

type ProfilePatch struct {
	FullName   *string `json:"full_name"`
	Role       *string `json:"role"`
	Department *string `json:"department"`
	AvatarURL  *string `json:"avatar_url"`
}

func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) Response[domain.Profile] {
	p, err := s.store.Profiles.GetByID(ctx, id)
	if err != nil {
		s.log.Errorw("get profile", "error", err)
		return FailErr[domain.Profile](err)
	}
	if p == nil {
		return Fail[domain.Profile]("Profile not found")
	}
	return OK(*p)
}

func (s *Service) ListProfiles(ctx context.Context) Response[[]domain.Profile] {
	profiles, err := s.store.Profiles.List(ctx)
	if err != nil {
		s.log.Errorw("list profiles", "error", err)
		return FailErr[[]domain.Profile](err)
	}
	if profiles == nil {
		profiles = []domain.Profile{}
	}
	return OK(profiles)
}

func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, patch ProfilePatch) Response[domain.Profile] {
	p, err := s.store.Profiles.GetByID(ctx, id)
	if err != nil {
		s.log.Errorw("update profile", "error", err)
		return FailErr[domain.Profile](err)
	}
	if p == nil {
		return Fail[domain.Profile]("Profile not found")
	}

	if patch.FullName != nil {
		p.FullName = *patch.FullName
	}
	if patch.Role != nil {
		p.Role = *patch.Role
	}
	if patch.Department != nil {
		p.Department = patch.Department
	}
	if patch.AvatarURL != nil {
		p.AvatarURL = patch.AvatarURL
	}
	p.UpdatedAt = time.Now()

	if err := s.store.Profiles.Update(ctx, p); err != nil {
		s.log.Errorw("update profile", "error", err)
		return FailErr[domain.Profile](err)
	}
	return OK(*p)
}

// --- Projects ---

type CreateProjectInput struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority"`
	TeamMembers []uuid.UUID `json:"team_members"`
	Progress    int         `json:"progress"`
	StartDate   time.Time   `json:"start_date"`
	DueDate     *time.Time  `json:"due_date"`
}

type ProjectPatch struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Status      *string      `json:"status"`
	Priority    *string      `json:"priority"`
	TeamMembers *[]uuid.UUID `json:"team_members"`
	Progress    *int         `json:"progress"`
	StartDate   *time.Time   `json:"start_date"`
	DueDate     *time.Time   `json:"due_date"`
}

func (s *Service) ListProjects(ctx context.Context, f repository.ProjectFilter) Response[[]domain.Project] {
	projects, err := s.store.Projects.List(ctx, f)
	if err != nil {
		s.log.Errorw("list projects", "error", err)
		return FailErr[[]domain.Project](err)
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return OK(projects)
}

func (s *Service) GetProject(ctx context.Context, id uuid.UUID) Response[domain.Project] {
	p, err := s.store.Projects.GetByID(ctx, id)
	if err != nil {
		s.log.Errorw("get project", "error", err)
		return FailErr[domain.Project](err)
	}
	if p == nil {
		return Fail[domain.Project]("Project not found")
	}
	return OK(*p)
}

func (s *Service) CreateProject(ctx context.Context, actorID uuid.UUID, input CreateProjectInput) Response[domain.Project] {
	now := time.Now()
	members := input.TeamMembers
	if members == nil {
		members = []uuid.UUID{actorID}
	}

	p := &domain.Project{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		ManagerID:   actorID,
		TeamMembers: members,
		Progress:    input.Progress,
		StartDate:   input.StartDate,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Projects.Create(ctx, p); err != nil {
		s.log.Errorw("create project", "error", err)
		return FailErr[domain.Project](err)
	}

	s.logActivity(ctx, actorID, "created_project", domain.EntityProject, p.ID, map[string]any{"project_name": p.Title})
	return OK(*p)
}

func (s *Service) UpdateProject(ctx context.Context, actorID, id uuid.UUID, patch ProjectPatch) Response[domain.Project] {
	p, err := s.store.Projects.GetByID(ctx, id)
	if err != nil {
		s.log.Errorw("update project", "error", err)
		return FailErr[domain.Project](err)
	}
	if p == nil {
		return Fail[domain.Project]("Project not found")
	}

	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Priority != nil {
		p.Priority = *patch.Priority
	}
	if patch.TeamMembers != nil {
		p.TeamMembers = *patch.TeamMembers
	}
	if patch.Progress != nil {
		p.Progress = *patch.Progress
	}
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.DueDate != nil {
		p.DueDate = patch.DueDate
	}
	p.UpdatedAt = time.Now()

	if err := s.store.Projects.Update(ctx, p); err != nil {
		s.log.Errorw("update project", "error", err)
		return FailErr[domain.Project](err)
	}

	s.logActivity(ctx, actorID, "updated_project", domain.EntityProject, p.ID, map[string]any{"project_name": p.Title})
	return OK(*p)
}

func (s *Service) DeleteProject(ctx context.Context, actorID, id uuid.UUID) Response[bool] {
	if err := s.store.Projects.Delete(ctx, id); err != nil {
		s.log.Errorw("delete project", "error", err)
		return FailErr[bool](err)
	}
	s.logActivity(ctx, actorID, "deleted_project", domain.EntityProject, id, nil)
	return OK(true)
}

// --- Tasks ---

type CreateTaskInput struct {
	ProjectID      uuid.UUID  `json:"project_id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	AssignedTo     uuid.UUID  `json:"assigned_to"`
	DueDate        *time.Time `json:"due_date"`
	EstimatedHours *float64   `json:"estimated_hours"`
}

type TaskPatch struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Status         *string    `json:"status"`
	Priority       *string    `json:"priority"`
	AssignedTo     *uuid.UUID `json:"assigned_to"`
	DueDate        *time.Time `json:"due_date"`
	EstimatedHours *float64   `json:"estimated_hours"`
	ActualHours    *float64   `json:"actual_hours"`
}

func (s *Service) ListTasks(ctx context.Context, f repository.TaskFilter) Response[[]domain.Task] {
	tasks, err := s.store.Tasks.List(ctx, f)
	if err != nil {
		s.log.Errorw("list tasks", "error", err)
		return FailErr[[]domain.Task](err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return OK(tasks)
}

func (s *Service) GetTask(ctx context.Context, id uuid.UUID) Response[domain.Task] {
	t, err := s.store.Tasks.GetByID(ctx, id)
	if err != nil {
		s.log.Errorw("get task", "error", err)
		return FailErr[domain.Task](err)
	}
	if t == nil {
		return Fail[domain.Task]("Task not found")
	}
	return OK(*t)
}

func (s *Service) CreateTask(ctx context.Context, actorID uuid.UUID, input CreateTaskInput) Response[domain.Task] {
	now := time.Now()
	status := input.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}

	t := &domain.Task{
		ID:             uuid.New(),
		ProjectID:      input.ProjectID,
		Title:          input.Title,
		Description:    input.Description,
		Status:         status,
		Priority:       input.Priority,
		AssignedTo:     input.AssignedTo,
		CreatedBy:      actorID,
		DueDate:        input.DueDate,
		EstimatedHours: input.EstimatedHours,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.store.Tasks.Create(ctx, t); err != nil {
		s.log.Errorw("create task", "error", err)
		return FailErr[domain.Task](err)
	}

	s.logActivity(ctx, actorID, "created_task", domain.EntityTask, t.ID, map[string]any{"task_title": t.Title})
	return OK(*t)
}

func (s *Service) UpdateTask(ctx context.Context, actorID, id uuid.UUID, patch TaskPatch) Response[domain.Task] {
	t, err := s.store.Tasks.GetByID(ctx, id)
	if err != nil {
		s.log.Errorw("update task", "error", err)
		return FailErr[domain.Task](err)
	}
	if t == nil {
		return Fail[domain.Task]("Task not found")
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.AssignedTo != nil {
		t.AssignedTo = *patch.AssignedTo
	}
	if patch.DueDate != nil {
		t.DueDate = patch.DueDate
	}
	if patch.EstimatedHours != nil {
		t.EstimatedHours = patch.EstimatedHours
	}
	if patch.ActualHours != nil {
		t.ActualHours = patch.ActualHours
	}
	t.UpdatedAt = time.Now()

	if err := s.store.Tasks.Update(ctx, t); err != nil {
		s.log.Errorw("update task", "error", err)
		return FailErr[domain.Task](err)
	}

	s.logActivity(ctx, actorID, "updated_task", domain.EntityTask, t.ID, map[string]any{"task_title": t.Title})
	return OK(*t)
}

func (s *Service) DeleteTask(ctx context.Context, actorID, id uuid.UUID) Response[bool] {
	if err := s.store.Tasks.Delete(ctx, id); err != nil {
		s.log.Errorw("delete task", "error", err)
		return FailErr[bool](err)
	}
	s.logActivity(ctx, actorID, "deleted_task", domain.EntityTask, id, nil)
	return OK(true)
}

// --- Team messages ---

type CreateMessageInput struct {
	ProjectID   *uuid.UUID `json:"project_id"`
	Content     string     `json:"content"`
	MessageType string     `json:"message_type"`
	ReplyTo     *uuid.UUID `json:"reply_to"`
}

func (s *Service) ListMessages(ctx context.Context, projectID *uuid.UUID) Response[[]domain.TeamMessage] {
	messages, err := s.store.Messages.List(ctx, projectID)
	if err != nil {
		s.log.Errorw("list messages", "error", err)
		return FailErr[[]domain.TeamMessage](err)
	}
	if messages == nil {
		messages = []domain.TeamMessage{}
	}
	return OK(messages)
}

func (s *Service) CreateMessage(ctx context.Context, actorID uuid.UUID, input CreateMessageInput) Response[domain.TeamMessage] {
	msgType := input.MessageType
	if msgType == "" {
		msgType = domain.MessageTypeText
	}

	m := &domain.TeamMessage{
		ID:          uuid.New(),
		ProjectID:   input.ProjectID,
		SenderID:    actorID,
		Content:     input.Content,
		MessageType: msgType,
		ReplyTo:     input.ReplyTo,
		CreatedAt:   time.Now(),
	}

	if err := s.store.Messages.Create(ctx, m); err != nil {
		s.log.Errorw("create message", "error", err)
		return FailErr[domain.TeamMessage](err)
	}

	// Re-read to pick up joined sender fields.
	full, err := s.store.Messages.GetByID(ctx, m.ID)
	if err == nil && full != nil {
		m = full
	}

	if s.notifier != nil {
		s.notifier.NotifyNewMessage(m)
	}
	return OK(*m)
}

// --- Activity log ---

func (s *Service) ListActivity(ctx context.Context, userID uuid.UUID, limit int) Response[[]domain.ActivityLog] {
	entries, err := s.store.Activity.ListByUser(ctx, userID, limit)
	if err != nil {
		s.log.Errorw("list activity", "error", err)
		return FailErr[[]domain.ActivityLog](err)
	}
	if entries == nil {
		entries = []domain.ActivityLog{}
	}
	return OK(entries)
}

// logActivity records an audit entry; failures are logged and swallowed
// so they never mask the mutation that succeeded.
func (s *Service) logActivity(ctx context.Context, userID uuid.UUID, action, entityType string, entityID uuid.UUID, details map[string]any) {
	entry := &domain.ActivityLog{
		ID:         uuid.New(),
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		CreatedAt:  time.Now(),
	}
	if err := s.store.Activity.Create(ctx, entry); err != nil {
		s.log.Warnw("record activity", "action", action, "error", err)
	}
}
