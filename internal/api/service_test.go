package api

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/synergysphere/synergy/internal/domain"
	"github.com/synergysphere/synergy/internal/repository"
	"github.com/synergysphere/synergy/internal/repository/demo"
)

func newTestService() *Service {
	return NewService(demo.NewStore(), zap.NewNop().Sugar())
}

func strPtr(s string) *string { return &s }

func TestListProjectsForViewer(t *testing.T) {
	svc := newTestService()
	viewer := uuid.New()

	resp := svc.ListProjects(context.Background(), repository.ProjectFilter{ViewerID: viewer, ManagerView: true})
	require.True(t, resp.Success)
	require.Len(t, *resp.Data, 1)
	assert.Equal(t, viewer, (*resp.Data)[0].ManagerID)
}

func TestCreateProjectSetsOwnership(t *testing.T) {
	svc := newTestService()
	actor := uuid.New()

	resp := svc.CreateProject(context.Background(), actor, CreateProjectInput{
		Title:     "Mobile App",
		Status:    domain.ProjectStatusPlanning,
		Priority:  domain.PriorityMedium,
		StartDate: time.Now(),
	})
	require.True(t, resp.Success)
	assert.Equal(t, actor, resp.Data.ManagerID)
	assert.Equal(t, []uuid.UUID{actor}, resp.Data.TeamMembers)
	assert.NotEqual(t, uuid.Nil, resp.Data.ID)

	// The mutation leaves an activity trail.
	activity := svc.ListActivity(context.Background(), actor, 10)
	require.True(t, activity.Success)
	found := false
	for _, e := range *activity.Data {
		if e.Action == "created_project" && e.EntityID == resp.Data.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestUpdateProjectAppliesPatch(t *testing.T) {
	svc := newTestService()
	actor := uuid.New()

	created := svc.CreateProject(context.Background(), actor, CreateProjectInput{
		Title:     "Docs Overhaul",
		Status:    domain.ProjectStatusPlanning,
		Priority:  domain.PriorityLow,
		StartDate: time.Now(),
	})
	require.True(t, created.Success)

	progress := 40
	status := domain.ProjectStatusActive
	updated := svc.UpdateProject(context.Background(), actor, created.Data.ID, ProjectPatch{
		Progress: &progress,
		Status:   &status,
	})
	require.True(t, updated.Success)
	assert.Equal(t, 40, updated.Data.Progress)
	assert.Equal(t, domain.ProjectStatusActive, updated.Data.Status)
	assert.Equal(t, "Docs Overhaul", updated.Data.Title)
}

func TestUpdateMissingProjectFails(t *testing.T) {
	svc := newTestService()

	resp := svc.UpdateProject(context.Background(), uuid.New(), uuid.New(), ProjectPatch{})
	assert.False(t, resp.Success)
	assert.Equal(t, "Project not found", resp.ErrMessage())
}

func TestDeleteProject(t *testing.T) {
	svc := newTestService()
	actor := uuid.New()

	created := svc.CreateProject(context.Background(), actor, CreateProjectInput{
		Title:     "Throwaway",
		Status:    domain.ProjectStatusPlanning,
		Priority:  domain.PriorityLow,
		StartDate: time.Now(),
	})
	require.True(t, created.Success)

	deleted := svc.DeleteProject(context.Background(), actor, created.Data.ID)
	require.True(t, deleted.Success)
	assert.True(t, *deleted.Data)

	got := svc.GetProject(context.Background(), created.Data.ID)
	assert.False(t, got.Success)
}

func TestCreateTaskDefaults(t *testing.T) {
	svc := newTestService()
	actor := uuid.New()

	resp := svc.CreateTask(context.Background(), actor, CreateTaskInput{
		ProjectID:  demo.ProjectID,
		Title:      "Write release notes",
		Priority:   domain.PriorityMedium,
		AssignedTo: actor,
	})
	require.True(t, resp.Success)
	assert.Equal(t, domain.TaskStatusTodo, resp.Data.Status)
	assert.Equal(t, actor, resp.Data.CreatedBy)
}

func TestCreateMessageDefaultsAndNotifies(t *testing.T) {
	svc := newTestService()
	actor := uuid.New()

	var notified *domain.TeamMessage
	svc.SetNotifier(notifierFunc(func(m *domain.TeamMessage) { notified = m }))

	resp := svc.CreateMessage(context.Background(), actor, CreateMessageInput{
		ProjectID: &demo.ProjectID,
		Content:   "Standup moved to 10am",
	})
	require.True(t, resp.Success)
	assert.Equal(t, domain.MessageTypeText, resp.Data.MessageType)
	require.NotNil(t, notified)
	assert.Equal(t, resp.Data.ID, notified.ID)
}

func TestUpdateProfile(t *testing.T) {
	svc := newTestService()

	resp := svc.UpdateProfile(context.Background(), demo.TeamMemberID, ProfilePatch{
		FullName:   strPtr("Renamed Member"),
		Department: strPtr("Design"),
	})
	require.True(t, resp.Success)
	assert.Equal(t, "Renamed Member", resp.Data.FullName)
	require.NotNil(t, resp.Data.Department)
	assert.Equal(t, "Design", *resp.Data.Department)
}

func TestStoreFailuresBecomeEnvelopes(t *testing.T) {
	svc := NewService(failingStore(), zap.NewNop().Sugar())
	ctx := context.Background()

	assert.False(t, svc.ListProjects(ctx, repository.ProjectFilter{}).Success)
	assert.False(t, svc.ListTasks(ctx, repository.TaskFilter{}).Success)
	assert.False(t, svc.ListMessages(ctx, nil).Success)
	assert.False(t, svc.ListProfiles(ctx).Success)
	assert.False(t, svc.ListActivity(ctx, uuid.New(), 10).Success)

	resp := svc.CreateProject(ctx, uuid.New(), CreateProjectInput{Title: "x", StartDate: time.Now()})
	assert.False(t, resp.Success)
	assert.Equal(t, "store unavailable", resp.ErrMessage())
}

type notifierFunc func(*domain.TeamMessage)

func (f notifierFunc) NotifyNewMessage(m *domain.TeamMessage) { f(m) }

var errStore = errors.New("store unavailable")

// failingStore errors on every call, exercising the failure envelopes.
func failingStore() *repository.Store {
	return &repository.Store{
		Profiles: failProfiles{},
		Projects: failProjects{},
		Tasks:    failTasks{},
		Messages: failMessages{},
		Invites:  failInvites{},
		Activity: failActivity{},
	}
}

type failProfiles struct{}

func (failProfiles) Create(context.Context, *domain.Profile) error { return errStore }
func (failProfiles) GetByID(context.Context, uuid.UUID) (*domain.Profile, error) {
	return nil, errStore
}
func (failProfiles) GetByEmail(context.Context, string) (*domain.Profile, error) {
	return nil, errStore
}
func (failProfiles) List(context.Context) ([]domain.Profile, error) { return nil, errStore }
func (failProfiles) Update(context.Context, *domain.Profile) error  { return errStore }

type failProjects struct{}

func (failProjects) Create(context.Context, *domain.Project) error { return errStore }
func (failProjects) GetByID(context.Context, uuid.UUID) (*domain.Project, error) {
	return nil, errStore
}
func (failProjects) List(context.Context, repository.ProjectFilter) ([]domain.Project, error) {
	return nil, errStore
}
func (failProjects) Update(context.Context, *domain.Project) error { return errStore }
func (failProjects) Delete(context.Context, uuid.UUID) error       { return errStore }

type failTasks struct{}

func (failTasks) Create(context.Context, *domain.Task) error               { return errStore }
func (failTasks) GetByID(context.Context, uuid.UUID) (*domain.Task, error) { return nil, errStore }
func (failTasks) List(context.Context, repository.TaskFilter) ([]domain.Task, error) {
	return nil, errStore
}
func (failTasks) Update(context.Context, *domain.Task) error { return errStore }
func (failTasks) Delete(context.Context, uuid.UUID) error    { return errStore }

type failMessages struct{}

func (failMessages) Create(context.Context, *domain.TeamMessage) error { return errStore }
func (failMessages) GetByID(context.Context, uuid.UUID) (*domain.TeamMessage, error) {
	return nil, errStore
}
func (failMessages) List(context.Context, *uuid.UUID) ([]domain.TeamMessage, error) {
	return nil, errStore
}

type failInvites struct{}

func (failInvites) Create(context.Context, *domain.TeamInvitation) error { return errStore }
func (failInvites) GetByID(context.Context, uuid.UUID) (*domain.TeamInvitation, error) {
	return nil, errStore
}
func (failInvites) ListPending(context.Context) ([]domain.TeamInvitation, error) {
	return nil, errStore
}
func (failInvites) UpdateStatus(context.Context, uuid.UUID, string) error { return errStore }
func (failInvites) Delete(context.Context, uuid.UUID) error               { return errStore }

type failActivity struct{}

func (failActivity) Create(context.Context, *domain.ActivityLog) error { return errStore }
func (failActivity) ListByUser(context.Context, uuid.UUID, int) ([]domain.ActivityLog, error) {
	return nil, errStore
}
