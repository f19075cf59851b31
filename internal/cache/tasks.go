package cache

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/synergysphere/synergy/internal/api"
	"github.com/synergysphere/synergy/internal/auth"
	"github.com/synergysphere/synergy/internal/domain"
	"github.com/synergysphere/synergy/internal/repository"
)

// Tasks caches one filtered task listing.
type Tasks struct {
	svc     *api.Service
	session *auth.Session
	filter  repository.TaskFilter

	mu      sync.Mutex
	tasks   []domain.Task
	lastErr string
	issued  uint64
}

type TaskStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	InProgress     int `json:"in_progress"`
	Todo           int `json:"todo"`
	Review         int `json:"review"`
	Overdue        int `json:"overdue"`
	DueSoon        int `json:"due_soon"`
	CompletionRate int `json:"completion_rate"`
}

func NewTasks(svc *api.Service, session *auth.Session, f repository.TaskFilter) *Tasks {
	c := &Tasks{svc: svc, session: session, filter: f}
	session.OnChange(func(*domain.Profile) { _ = c.Refresh(context.Background()) })
	return c
}

// Refresh refetches the listing. Each fetch carries a sequence number;
// a response that is no longer the latest issued is discarded, so a
// slow fetch can never clobber newer state.
func (c *Tasks) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.mu.Unlock()

	resp := c.svc.ListTasks(ctx, c.filter)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.issued {
		return nil // superseded
	}
	if !resp.Success {
		c.lastErr = resp.ErrMessage()
		return errors.New(c.lastErr)
	}
	c.tasks = *resp.Data
	c.lastErr = ""
	return nil
}

// Create prepends the created task to the cached list on success.
func (c *Tasks) Create(ctx context.Context, input api.CreateTaskInput) (*domain.Task, error) {
	actorID := c.session.UserID()
	if actorID == uuid.Nil {
		return nil, ErrNotSignedIn
	}

	resp := c.svc.CreateTask(ctx, actorID, input)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !resp.Success {
		c.lastErr = resp.ErrMessage()
		return nil, errors.New(c.lastErr)
	}
	c.tasks = prepend(c.tasks, *resp.Data)
	c.lastErr = ""
	return resp.Data, nil
}

// Update swaps the matching task in place, preserving list order.
func (c *Tasks) Update(ctx context.Context, id uuid.UUID, patch api.TaskPatch) (*domain.Task, error) {
	resp := c.svc.UpdateTask(ctx, c.session.UserID(), id, patch)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !resp.Success {
		c.lastErr = resp.ErrMessage()
		return nil, errors.New(c.lastErr)
	}
	c.tasks = replaceByID(c.tasks, id, *resp.Data, taskID)
	c.lastErr = ""
	return resp.Data, nil
}

// Delete removes the matching task from the cached list.
func (c *Tasks) Delete(ctx context.Context, id uuid.UUID) error {
	resp := c.svc.DeleteTask(ctx, c.session.UserID(), id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !resp.Success {
		c.lastErr = resp.ErrMessage()
		return errors.New(c.lastErr)
	}
	c.tasks = removeByID(c.tasks, id, taskID)
	c.lastErr = ""
	return nil
}

// All returns a copy of the cached list, most recent first.
func (c *Tasks) All() []domain.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshot(c.tasks)
}

// Err returns the message of the last failed operation, if any.
func (c *Tasks) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Tasks) ByProject(projectID uuid.UUID) []domain.Task {
	return filter(c.All(), func(t domain.Task) bool { return t.ProjectID == projectID })
}

func (c *Tasks) ByStatus(status string) []domain.Task {
	return filter(c.All(), func(t domain.Task) bool { return t.Status == status })
}

func (c *Tasks) ByPriority(priority string) []domain.Task {
	return filter(c.All(), func(t domain.Task) bool { return t.Priority == priority })
}

// Overdue returns tasks past their due date and not done.
func (c *Tasks) Overdue() []domain.Task {
	now := time.Now()
	return filter(c.All(), func(t domain.Task) bool { return t.IsOverdue(now) })
}

// DueSoon returns tasks due within the next seven days and not done.
func (c *Tasks) DueSoon() []domain.Task {
	now := time.Now()
	return filter(c.All(), func(t domain.Task) bool { return t.IsDueSoon(now) })
}

// Stats aggregates the cached list. The completion rate is
// round(100·completed/total), and 0 for an empty list.
func (c *Tasks) Stats() TaskStats {
	tasks := c.All()
	now := time.Now()

	var s TaskStats
	s.Total = len(tasks)
	for _, t := range tasks {
		switch t.Status {
		case domain.TaskStatusDone:
			s.Completed++
		case domain.TaskStatusInProgress:
			s.InProgress++
		case domain.TaskStatusTodo:
			s.Todo++
		case domain.TaskStatusReview:
			s.Review++
		}
		if t.IsOverdue(now) {
			s.Overdue++
		}
		if t.IsDueSoon(now) {
			s.DueSoon++
		}
	}
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(100 * float64(s.Completed) / float64(s.Total)))
	}
	return s
}

func taskID(t domain.Task) uuid.UUID { return t.ID }
