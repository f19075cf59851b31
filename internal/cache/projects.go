package cache

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/synergysphere/synergy/internal/api"
	"github.com/synergysphere/synergy/internal/auth"
	"github.com/synergysphere/synergy/internal/domain"
	"github.com/synergysphere/synergy/internal/policy"
	"github.com/synergysphere/synergy/internal/repository"
)

// Projects caches the signed-in user's project listing. Managers see
// the projects they own, other roles the projects they belong to; the
// cache refetches whenever the session identity changes.
type Projects struct {
	svc     *api.Service
	session *auth.Session

	mu       sync.Mutex
	projects []domain.Project
	lastErr  string
	issued   uint64
}

type ProjectStats struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Completed   int `json:"completed"`
	OnHold      int `json:"on_hold"`
	AvgProgress int `json:"avg_progress"`
}

func NewProjects(svc *api.Service, session *auth.Session) *Projects {
	c := &Projects{svc: svc, session: session}
	session.OnChange(func(*domain.Profile) { _ = c.Refresh(context.Background()) })
	return c
}

// Refresh refetches the listing for the current identity. Stale
// responses, ones superseded by a later Refresh, are discarded.
func (c *Projects) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.mu.Unlock()

	viewerID := c.session.UserID()
	if viewerID == uuid.Nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		if seq != c.issued {
			return nil
		}
		c.projects = nil
		c.lastErr = ""
		return nil
	}

	resp := c.svc.ListProjects(ctx, repository.ProjectFilter{
		ViewerID:    viewerID,
		ManagerView: c.session.IsManager(),
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.issued {
		return nil // superseded
	}
	if !resp.Success {
		c.lastErr = resp.ErrMessage()
		return errors.New(c.lastErr)
	}
	c.projects = *resp.Data
	c.lastErr = ""
	return nil
}

// Create requires the manager role; the guard fails before the
// service is called. On success the project is prepended.
func (c *Projects) Create(ctx context.Context, input api.CreateProjectInput) (*domain.Project, error) {
	actorID := c.session.UserID()
	if actorID == uuid.Nil {
		return nil, ErrNotSignedIn
	}
	if err := policy.Require(policy.CanCreateProject(c.session.Role())); err != nil {
		return nil, err
	}

	resp := c.svc.CreateProject(ctx, actorID, input)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !resp.Success {
		c.lastErr = resp.ErrMessage()
		return nil, errors.New(c.lastErr)
	}
	c.projects = prepend(c.projects, *resp.Data)
	c.lastErr = ""
	return resp.Data, nil
}

// Update swaps the matching project in place, preserving list order.
func (c *Projects) Update(ctx context.Context, id uuid.UUID, patch api.ProjectPatch) (*domain.Project, error) {
	resp := c.svc.UpdateProject(ctx, c.session.UserID(), id, patch)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !resp.Success {
		c.lastErr = resp.ErrMessage()
		return nil, errors.New(c.lastErr)
	}
	c.projects = replaceByID(c.projects, id, *resp.Data, projectID)
	c.lastErr = ""
	return resp.Data, nil
}

// Delete requires the manager role. On success the project is removed
// from the cached list; on failure the list is left unchanged.
func (c *Projects) Delete(ctx context.Context, id uuid.UUID) error {
	actorID := c.session.UserID()
	if actorID == uuid.Nil {
		return ErrNotSignedIn
	}
	if err := policy.Require(policy.CanDeleteProject(c.session.Role())); err != nil {
		return err
	}

	resp := c.svc.DeleteProject(ctx, actorID, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !resp.Success {
		c.lastErr = resp.ErrMessage()
		return errors.New(c.lastErr)
	}
	c.projects = removeByID(c.projects, id, projectID)
	c.lastErr = ""
	return nil
}

// All returns a copy of the cached list, most recent first.
func (c *Projects) All() []domain.Project {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshot(c.projects)
}

// Get returns the cached project with the given id, if present.
func (c *Projects) Get(id uuid.UUID) (domain.Project, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.projects {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Project{}, false
}

// Err returns the message of the last failed operation, if any.
func (c *Projects) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Projects) ByStatus(status string) []domain.Project {
	return filter(c.All(), func(p domain.Project) bool { return p.Status == status })
}

// Stats aggregates the cached list.
func (c *Projects) Stats() ProjectStats {
	projects := c.All()

	var s ProjectStats
	s.Total = len(projects)
	var progress int
	for _, p := range projects {
		switch p.Status {
		case domain.ProjectStatusActive:
			s.Active++
		case domain.ProjectStatusCompleted:
			s.Completed++
		case domain.ProjectStatusOnHold:
			s.OnHold++
		}
		progress += p.Progress
	}
	if s.Total > 0 {
		s.AvgProgress = int(math.Round(float64(progress) / float64(s.Total)))
	}
	return s
}

func projectID(p domain.Project) uuid.UUID { return p.ID }
