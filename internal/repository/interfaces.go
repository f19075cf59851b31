package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/synergysphere/synergy/internal/domain"
)

// ProjectFilter scopes project listings. When ManagerView is false the
// listing is restricted to projects whose member set contains ViewerID.
// That restriction is a convenience filter for the dashboard, not an
// authorization decision.
type ProjectFilter struct {
	ViewerID    uuid.UUID
	ManagerView bool
	Status      string
	Search      string
}

// TaskFilter narrows task listings; zero values mean "no constraint".
type TaskFilter struct {
	ProjectID  *uuid.UUID
	AssignedTo *uuid.UUID
	Status     string
	Priority   string
	Search     string
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, f ProjectFilter) ([]domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, f TaskFilter) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.TeamMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TeamMessage, error)
	List(ctx context.Context, projectID *uuid.UUID) ([]domain.TeamMessage, error)
}

type InviteRepository interface {
	Create(ctx context.Context, invite *domain.TeamInvitation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TeamInvitation, error)
	ListPending(ctx context.Context) ([]domain.TeamInvitation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ActivityRepository interface {
	Create(ctx context.Context, entry *domain.ActivityLog) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ActivityLog, error)
}

// Store bundles the entity repositories behind one seam. The live
// implementation is backed by Postgres; the demo implementation serves
// canned in-memory data. Selecting one at startup is the only place the
// configured/unconfigured distinction exists.
type Store struct {
	Profiles ProfileRepository
	Projects ProjectRepository
	Tasks    TaskRepository
	Messages MessageRepository
	Invites  InviteRepository
	Activity ActivityRepository
}
