package demo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synergysphere/synergy/internal/domain"
	"github.com/synergysphere/synergy/internal/repository"
)

func TestSeededProjectBelongsToViewer(t *testing.T) {
	store := NewStore()
	viewer := uuid.New()

	projects, err := store.Projects.List(context.Background(), repository.ProjectFilter{
		ViewerID:    viewer,
		ManagerView: true,
	})
	require.NoError(t, err)
	require.Len(t, projects, 1)

	p := projects[0]
	assert.Equal(t, "Website Redesign", p.Title)
	assert.Equal(t, domain.ProjectStatusActive, p.Status)
	assert.Equal(t, 65, p.Progress)
	assert.Equal(t, viewer, p.ManagerID)
	assert.True(t, p.HasMember(viewer))
}

func TestSeededProjectVisibleToTeamView(t *testing.T) {
	store := NewStore()
	viewer := uuid.New()

	// Non-manager views only see member projects; the seeded project is
	// stamped with the viewer before the membership check.
	projects, err := store.Projects.List(context.Background(), repository.ProjectFilter{
		ViewerID:    viewer,
		ManagerView: false,
	})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.True(t, projects[0].HasMember(viewer))
}

func TestListIsIdempotentAcrossViewers(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	first, err := store.Projects.List(ctx, repository.ProjectFilter{ViewerID: uuid.New(), ManagerView: true})
	require.NoError(t, err)
	second, err := store.Projects.List(ctx, repository.ProjectFilter{ViewerID: uuid.New(), ManagerView: true})
	require.NoError(t, err)

	// Stamping is applied on read, not persisted, so a second viewer
	// sees the same seed record stamped with their own identity.
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.NotEqual(t, first[0].ManagerID, second[0].ManagerID)
	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestUpdateClearsSeedStamping(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	owner := uuid.New()

	p, err := store.Projects.GetByID(ctx, ProjectID)
	require.NoError(t, err)
	require.NotNil(t, p)

	p.ManagerID = owner
	p.TeamMembers = []uuid.UUID{owner}
	require.NoError(t, store.Projects.Update(ctx, p))

	// Once edited, the record stops following the viewer around.
	other := uuid.New()
	projects, err := store.Projects.List(ctx, repository.ProjectFilter{ViewerID: other, ManagerView: true})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, owner, projects[0].ManagerID)
}

func TestUnknownProfileSynthesized(t *testing.T) {
	store := NewStore()

	p, err := store.Profiles.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Demo User", p.FullName)
	assert.Equal(t, domain.RoleManager, p.Role)

	// Repeated reads return identical timestamps.
	again, err := store.Profiles.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.CreatedAt, again.CreatedAt)
}

func TestGetByEmailMissReturnsNil(t *testing.T) {
	store := NewStore()

	p, err := store.Profiles.GetByEmail(context.Background(), "nobody@nowhere.com")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestTaskFilters(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	done := domain.Task{
		ID:        uuid.New(),
		ProjectID: ProjectID,
		Title:     "Ship the footer",
		Status:    domain.TaskStatusDone,
		Priority:  domain.PriorityLow,
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Tasks.Create(ctx, &done))

	byStatus, err := store.Tasks.List(ctx, repository.TaskFilter{Status: domain.TaskStatusDone})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, done.ID, byStatus[0].ID)

	bySearch, err := store.Tasks.List(ctx, repository.TaskFilter{Search: "homepage"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, TaskID, bySearch[0].ID)
}

func TestMessagesScopedByProject(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	teamWide := domain.TeamMessage{
		ID:          uuid.New(),
		SenderID:    ManagerID,
		Content:     "All hands at 3pm",
		MessageType: domain.MessageTypeText,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, store.Messages.Create(ctx, &teamWide))

	scoped, err := store.Messages.List(ctx, &ProjectID)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, MessageID, scoped[0].ID)

	all, err := store.Messages.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestActivityStampedWithRequestingUser(t *testing.T) {
	store := NewStore()
	viewer := uuid.New()

	entries, err := store.Activity.ListByUser(context.Background(), viewer, 20)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, viewer, entries[0].UserID)
	assert.Equal(t, "created_project", entries[0].Action)
}

func TestInviteLifecycle(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	pending, err := store.Invites.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, store.Invites.UpdateStatus(ctx, InviteID, domain.InviteStatusExpired))
	pending, err = store.Invites.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.NoError(t, store.Invites.Delete(ctx, InviteID))
	inv, err := store.Invites.GetByID(ctx, InviteID)
	require.NoError(t, err)
	assert.Nil(t, inv)
}
