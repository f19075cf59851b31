package team

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/synergysphere/synergy/internal/api"
	"github.com/synergysphere/synergy/internal/domain"
	"github.com/synergysphere/synergy/internal/repository"
	"github.com/synergysphere/synergy/internal/repository/demo"
)

func newTestService() (*Service, *repository.Store) {
	store := demo.NewStore()
	apiSvc := api.NewService(store, zap.NewNop().Sugar())
	return NewService(apiSvc, store.Invites, zap.NewNop().Sugar()), store
}

func TestMembersReshapesProfiles(t *testing.T) {
	svc, _ := newTestService()

	resp := svc.Members(context.Background())
	require.True(t, resp.Success)
	members := *resp.Data
	require.Len(t, members, 2)

	for _, m := range members {
		assert.Equal(t, domain.MemberStatusActive, m.Status)
		assert.Equal(t, m.CreatedAt, m.JoinedAt)
		assert.Equal(t, m.UpdatedAt, m.LastActive)
	}
}

func TestStats(t *testing.T) {
	svc, _ := newTestService()

	resp := svc.Stats(context.Background())
	require.True(t, resp.Success)

	s := *resp.Data
	assert.Equal(t, 2, s.TotalMembers)
	assert.Equal(t, 2, s.ActiveMembers)
	assert.Equal(t, 1, s.Managers)
	assert.Equal(t, 1, s.TeamMembers)
	assert.Equal(t, 1, s.PendingInvitations)
}

func TestPendingInvitationsExpiresStale(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	stale := &domain.TeamInvitation{
		ID:        uuid.New(),
		Email:     "late@company.com",
		Role:      domain.RoleTeam,
		Status:    domain.InviteStatusPending,
		ExpiresAt: time.Now().Add(-time.Hour),
		CreatedAt: time.Now().Add(-8 * 24 * time.Hour),
	}
	require.NoError(t, store.Invites.Create(ctx, stale))

	resp := svc.PendingInvitations(ctx)
	require.True(t, resp.Success)
	for _, inv := range *resp.Data {
		assert.NotEqual(t, stale.ID, inv.ID)
	}

	// The expiry is persisted, not just filtered out of the view.
	got, err := store.Invites.GetByID(ctx, stale.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.InviteStatusExpired, got.Status)
}

func TestCreateInvitation(t *testing.T) {
	svc, _ := newTestService()
	actor := uuid.New()

	resp := svc.CreateInvitation(context.Background(), actor, "hire@company.com", domain.RoleTeam, nil)
	require.True(t, resp.Success)

	inv := *resp.Data
	assert.Equal(t, domain.InviteStatusPending, inv.Status)
	assert.Equal(t, actor, inv.InvitedBy)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), inv.ExpiresAt, time.Minute)
}

func TestCancelInvitationDeletes(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	resp := svc.CancelInvitation(ctx, demo.InviteID)
	require.True(t, resp.Success)

	got, err := store.Invites.GetByID(ctx, demo.InviteID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateMemberRole(t *testing.T) {
	svc, _ := newTestService()

	resp := svc.UpdateMemberRole(context.Background(), demo.TeamMemberID, domain.RoleManager)
	require.True(t, resp.Success)
	assert.Equal(t, domain.RoleManager, resp.Data.Role)
	assert.Equal(t, demo.TeamMemberID, resp.Data.ID)
}

func TestRemoveMemberKeepsProfile(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	resp := svc.RemoveMember(ctx, demo.TeamMemberID)
	require.True(t, resp.Success)
	assert.True(t, *resp.Data)

	// The underlying profile survives removal.
	p, err := store.Profiles.GetByID(ctx, demo.TeamMemberID)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Demo Team Member", p.FullName)
}

func TestSearchMembers(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	byName := svc.SearchMembers(ctx, "Manager")
	require.True(t, byName.Success)
	require.Len(t, *byName.Data, 1)
	assert.Equal(t, "Demo Manager", (*byName.Data)[0].FullName)

	byDept := svc.SearchMembers(ctx, "engineering")
	require.True(t, byDept.Success)
	assert.Len(t, *byDept.Data, 2)

	miss := svc.SearchMembers(ctx, "nobody")
	require.True(t, miss.Success)
	assert.Empty(t, *miss.Data)
}
