// Package demo implements the store interfaces on fixed in-memory sample
// data. It is selected at startup when no valid backend configuration is
// present, so the product stays explorable without a database.
package demo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/synergysphere/synergy/internal/domain"
	"github.com/synergysphere/synergy/internal/repository"
)

type state struct {
	mu       sync.RWMutex
	seedTime time.Time

	profiles []domain.Profile
	projects []domain.Project
	tasks    []domain.Task
	messages []domain.TeamMessage
	invites  []domain.TeamInvitation
	activity []domain.ActivityLog

	// seeded records are presented as belonging to whoever is browsing,
	// so a fresh demo session always has content of its own.
	seeded map[uuid.UUID]bool
}

// NewStore builds a seeded in-memory store bundle.
func NewStore() *repository.Store {
	st := &state{seedTime: time.Now()}
	seed(st)
	return &repository.Store{
		Profiles: &profileStore{st},
		Projects: &projectStore{st},
		Tasks:    &taskStore{st},
		Messages: &messageStore{st},
		Invites:  &inviteStore{st},
		Activity: &activityStore{st},
	}
}

func newestFirst[T any](items []T, createdAt func(T) time.Time) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return createdAt(out[i]).After(createdAt(out[j]))
	})
	return out
}

// --- Profiles ---

type profileStore struct{ *state }

func (s *profileStore) Create(ctx context.Context, p *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = append(s.profiles, *p)
	return nil
}

func (s *profileStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			p := s.profiles[i]
			return &p, nil
		}
	}
	// Unknown ids still resolve so the dashboard always has an identity.
	p := domain.Profile{
		ID:        id,
		Email:     "demo@synergysphere.com",
		FullName:  "Demo User",
		Role:      domain.RoleManager,
		CreatedAt: s.seedTime,
		UpdatedAt: s.seedTime,
	}
	return &p, nil
}

func (s *profileStore) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.profiles {
		if strings.EqualFold(s.profiles[i].Email, email) {
			p := s.profiles[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *profileStore) List(ctx context.Context) ([]domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.profiles, func(p domain.Profile) time.Time { return p.CreatedAt }), nil
}

func (s *profileStore) Update(ctx context.Context, p *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.profiles {
		if s.profiles[i].ID == p.ID {
			s.profiles[i] = *p
			return nil
		}
	}
	return nil
}

// --- Projects ---

type projectStore struct{ *state }

func (s *projectStore) Create(ctx context.Context, p *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, *p)
	return nil
}

func (s *projectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			p := cloneProject(s.projects[i])
			return &p, nil
		}
	}
	return nil, nil
}

func (s *projectStore) List(ctx context.Context, f repository.ProjectFilter) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Project
	for i := range s.projects {
		p := cloneProject(s.projects[i])
		if s.seeded[p.ID] && f.ViewerID != uuid.Nil {
			p.ManagerID = f.ViewerID
			if !p.HasMember(f.ViewerID) {
				p.TeamMembers = append(p.TeamMembers, f.ViewerID)
			}
		}
		if !f.ManagerView && !p.HasMember(f.ViewerID) {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Search != "" && !containsFold(p.Title, f.Search) && !containsFold(p.Description, f.Search) {
			continue
		}
		out = append(out, p)
	}
	return newestFirst(out, func(p domain.Project) time.Time { return p.CreatedAt }), nil
}

func (s *projectStore) Update(ctx context.Context, p *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			s.projects[i] = cloneProject(*p)
			delete(s.seeded, p.ID)
			return nil
		}
	}
	return nil
}

func (s *projectStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- Tasks ---

type taskStore struct{ *state }

func (s *taskStore) Create(ctx context.Context, t *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, *t)
	return nil
}

func (s *taskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (s *taskStore) List(ctx context.Context, f repository.TaskFilter) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Task
	for _, t := range s.tasks {
		if f.ProjectID != nil && t.ProjectID != *f.ProjectID {
			continue
		}
		if f.AssignedTo != nil && t.AssignedTo != *f.AssignedTo {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.Search != "" {
			desc := ""
			if t.Description != nil {
				desc = *t.Description
			}
			if !containsFold(t.Title, f.Search) && !containsFold(desc, f.Search) {
				continue
			}
		}
		out = append(out, t)
	}
	return newestFirst(out, func(t domain.Task) time.Time { return t.CreatedAt }), nil
}

func (s *taskStore) Update(ctx context.Context, t *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = *t
			return nil
		}
	}
	return nil
}

func (s *taskStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- Messages ---

type messageStore struct{ *state }

func (s *messageStore) Create(ctx context.Context, m *domain.TeamMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, *m)
	return nil
}

func (s *messageStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.TeamMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.messages {
		if s.messages[i].ID == id {
			m := s.messages[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (s *messageStore) List(ctx context.Context, projectID *uuid.UUID) ([]domain.TeamMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.TeamMessage
	for _, m := range s.messages {
		if projectID != nil && (m.ProjectID == nil || *m.ProjectID != *projectID) {
			continue
		}
		out = append(out, m)
	}
	return newestFirst(out, func(m domain.TeamMessage) time.Time { return m.CreatedAt }), nil
}

// --- Invitations ---

type inviteStore struct{ *state }

func (s *inviteStore) Create(ctx context.Context, inv *domain.TeamInvitation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invites = append(s.invites, *inv)
	return nil
}

func (s *inviteStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.TeamInvitation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.invites {
		if s.invites[i].ID == id {
			inv := s.invites[i]
			return &inv, nil
		}
	}
	return nil, nil
}

func (s *inviteStore) ListPending(ctx context.Context) ([]domain.TeamInvitation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.TeamInvitation
	for _, inv := range s.invites {
		if inv.Status == domain.InviteStatusPending {
			out = append(out, inv)
		}
	}
	return newestFirst(out, func(i domain.TeamInvitation) time.Time { return i.CreatedAt }), nil
}

func (s *inviteStore) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invites {
		if s.invites[i].ID == id {
			s.invites[i].Status = status
			return nil
		}
	}
	return nil
}

func (s *inviteStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invites {
		if s.invites[i].ID == id {
			s.invites = append(s.invites[:i], s.invites[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- Activity ---

type activityStore struct{ *state }

func (s *activityStore) Create(ctx context.Context, e *domain.ActivityLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity = append(s.activity, *e)
	return nil
}

func (s *activityStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ActivityLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > 50 {
		limit = 50
	}

	var out []domain.ActivityLog
	for _, e := range s.activity {
		if s.seeded[e.ID] {
			e.UserID = userID
		}
		if e.UserID != userID {
			continue
		}
		out = append(out, e)
	}
	out = newestFirst(out, func(e domain.ActivityLog) time.Time { return e.CreatedAt })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func cloneProject(p domain.Project) domain.Project {
	members := make([]uuid.UUID, len(p.TeamMembers))
	copy(members, p.TeamMembers)
	p.TeamMembers = members
	return p
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
