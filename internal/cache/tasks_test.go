package cache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/synergysphere/synergy/internal/api"
	"github.com/synergysphere/synergy/internal/auth"
	"github.com/synergysphere/synergy/internal/domain"
	"github.com/synergysphere/synergy/internal/repository"
	"github.com/synergysphere/synergy/internal/repository/demo"
)

func managerSession() *auth.Session {
	s := auth.NewSession()
	s.Set(&domain.Profile{ID: uuid.New(), FullName: "Mana Ger", Role: domain.RoleManager})
	return s
}

func teamSession() *auth.Session {
	s := auth.NewSession()
	s.Set(&domain.Profile{ID: uuid.New(), FullName: "Tea Member", Role: domain.RoleTeam})
	return s
}

func demoAPI() *api.Service {
	return api.NewService(demo.NewStore(), zap.NewNop().Sugar())
}

func demoAPIWith(store *repository.Store) *api.Service {
	return api.NewService(store, zap.NewNop().Sugar())
}

func TestTasksRefreshLoadsNewestFirst(t *testing.T) {
	svc := demoAPI()
	c := NewTasks(svc, managerSession(), repository.TaskFilter{})

	require.NoError(t, c.Refresh(context.Background()))
	all := c.All()
	require.Len(t, all, 1)
	assert.Equal(t, "Design new homepage layout", all[0].Title)
}

func TestTaskCreatePrepends(t *testing.T) {
	svc := demoAPI()
	session := managerSession()
	c := NewTasks(svc, session, repository.TaskFilter{})
	require.NoError(t, c.Refresh(context.Background()))

	created, err := c.Create(context.Background(), api.CreateTaskInput{
		ProjectID: demo.ProjectID,
		Title:     "Review launch checklist",
		Priority:  domain.PriorityHigh,
	})
	require.NoError(t, err)

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestTaskCreateRequiresSignIn(t *testing.T) {
	c := NewTasks(demoAPI(), auth.NewSession(), repository.TaskFilter{})

	_, err := c.Create(context.Background(), api.CreateTaskInput{Title: "nope"})
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestTaskUpdateInPlace(t *testing.T) {
	svc := demoAPI()
	session := managerSession()
	c := NewTasks(svc, session, repository.TaskFilter{})
	require.NoError(t, c.Refresh(context.Background()))

	first, err := c.Create(context.Background(), api.CreateTaskInput{ProjectID: demo.ProjectID, Title: "one"})
	require.NoError(t, err)
	_, err = c.Create(context.Background(), api.CreateTaskInput{ProjectID: demo.ProjectID, Title: "two"})
	require.NoError(t, err)

	before := c.All()
	status := domain.TaskStatusDone
	updated, err := c.Update(context.Background(), first.ID, api.TaskPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusDone, updated.Status)

	after := c.All()
	require.Equal(t, len(before), len(after))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID, "order must be preserved")
	}
}

func TestTaskDeleteRemoves(t *testing.T) {
	svc := demoAPI()
	c := NewTasks(svc, managerSession(), repository.TaskFilter{})
	require.NoError(t, c.Refresh(context.Background()))

	created, err := c.Create(context.Background(), api.CreateTaskInput{ProjectID: demo.ProjectID, Title: "temp"})
	require.NoError(t, err)
	count := len(c.All())

	require.NoError(t, c.Delete(context.Background(), created.ID))
	assert.Len(t, c.All(), count-1)
}

func TestTaskStatsCompletionRate(t *testing.T) {
	svc := demoAPI()
	c := NewTasks(svc, managerSession(), repository.TaskFilter{})

	// Empty cache: completion rate is 0, not NaN.
	assert.Equal(t, 0, c.Stats().CompletionRate)

	require.NoError(t, c.Refresh(context.Background()))
	_, err := c.Create(context.Background(), api.CreateTaskInput{ProjectID: demo.ProjectID, Title: "a", Status: domain.TaskStatusDone})
	require.NoError(t, err)
	_, err = c.Create(context.Background(), api.CreateTaskInput{ProjectID: demo.ProjectID, Title: "b", Status: domain.TaskStatusDone})
	require.NoError(t, err)

	s := c.Stats()
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Completed)
	assert.Equal(t, 1, s.InProgress)
	// round(100 * 2/3) = 67
	assert.Equal(t, 67, s.CompletionRate)
}

func TestOverdueAndDueSoon(t *testing.T) {
	svc := demoAPI()
	c := NewTasks(svc, managerSession(), repository.TaskFilter{})
	require.NoError(t, c.Refresh(context.Background()))

	past := time.Now().Add(-48 * time.Hour)
	soon := time.Now().Add(3 * 24 * time.Hour)
	far := time.Now().Add(30 * 24 * time.Hour)

	mk := func(title string, due time.Time, status string) {
		t.Helper()
		_, err := c.Create(context.Background(), api.CreateTaskInput{
			ProjectID: demo.ProjectID,
			Title:     title,
			Status:    status,
			DueDate:   &due,
		})
		require.NoError(t, err)
	}
	mk("late", past, domain.TaskStatusInProgress)
	mk("late but done", past, domain.TaskStatusDone)
	mk("this week", soon, domain.TaskStatusTodo)
	mk("next month", far, domain.TaskStatusTodo)

	overdue := c.Overdue()
	require.Len(t, overdue, 1)
	assert.Equal(t, "late", overdue[0].Title)

	titles := make([]string, 0)
	for _, task := range c.DueSoon() {
		titles = append(titles, task.Title)
	}
	assert.Contains(t, titles, "this week")
	assert.NotContains(t, titles, "next month")
	assert.NotContains(t, titles, "late but done")
}

func TestStaleRefreshDiscarded(t *testing.T) {
	slow := &gatedTasks{entered: make(chan struct{}), release: make(chan struct{})}
	store := demo.NewStore()
	store.Tasks = slow
	svc := api.NewService(store, zap.NewNop().Sugar())
	c := NewTasks(svc, managerSession(), repository.TaskFilter{})

	done := make(chan error, 1)
	go func() { done <- c.Refresh(context.Background()) }()
	<-slow.entered // first fetch is now in flight

	// A second fetch completes while the first is still blocked.
	require.NoError(t, c.Refresh(context.Background()))
	require.Len(t, c.All(), 1)
	assert.Equal(t, "fresh", c.All()[0].Title)

	close(slow.release)
	require.NoError(t, <-done)

	// The slow response arrived last but was issued first; it loses.
	require.Len(t, c.All(), 1)
	assert.Equal(t, "fresh", c.All()[0].Title)
}

// gatedTasks serves a stale list on the first List call, blocking it
// until released; later calls return a fresh list immediately.
type gatedTasks struct {
	calls   atomic.Int32
	entered chan struct{}
	release chan struct{}
}

func (g *gatedTasks) List(ctx context.Context, f repository.TaskFilter) ([]domain.Task, error) {
	if g.calls.Add(1) == 1 {
		close(g.entered)
		<-g.release
		return []domain.Task{{ID: uuid.New(), Title: "stale"}}, nil
	}
	return []domain.Task{{ID: uuid.New(), Title: "fresh"}}, nil
}

func (g *gatedTasks) Create(context.Context, *domain.Task) error               { return nil }
func (g *gatedTasks) GetByID(context.Context, uuid.UUID) (*domain.Task, error) { return nil, nil }
func (g *gatedTasks) Update(context.Context, *domain.Task) error               { return nil }
func (g *gatedTasks) Delete(context.Context, uuid.UUID) error                  { return nil }
