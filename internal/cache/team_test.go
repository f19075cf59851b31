package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/synergysphere/synergy/internal/domain"
	"github.com/synergysphere/synergy/internal/policy"
	"github.com/synergysphere/synergy/internal/repository/demo"
	"github.com/synergysphere/synergy/internal/team"
)

func demoTeam() *team.Service {
	store := demo.NewStore()
	return team.NewService(demoAPIWith(store), store.Invites, zap.NewNop().Sugar())
}

func TestTeamRefreshLoadsRosterAndInvites(t *testing.T) {
	c := NewTeam(demoTeam(), managerSession())
	require.NoError(t, c.Refresh(context.Background()))

	assert.Len(t, c.Members(), 2)
	assert.Len(t, c.Invitations(), 1)
}

func TestTeamInviteManagerOnly(t *testing.T) {
	c := NewTeam(demoTeam(), teamSession())

	_, err := c.Invite(context.Background(), "new@company.com", domain.RoleTeam, nil)
	assert.ErrorIs(t, err, policy.ErrManagerOnly)
}

func TestTeamInvitePrepends(t *testing.T) {
	c := NewTeam(demoTeam(), managerSession())
	require.NoError(t, c.Refresh(context.Background()))

	inv, err := c.Invite(context.Background(), "new@company.com", domain.RoleTeam, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.InviteStatusPending, inv.Status)

	invites := c.Invitations()
	require.Len(t, invites, 2)
	assert.Equal(t, inv.ID, invites[0].ID)
}

func TestTeamCancelInvite(t *testing.T) {
	c := NewTeam(demoTeam(), managerSession())
	require.NoError(t, c.Refresh(context.Background()))

	require.NoError(t, c.CancelInvite(context.Background(), demo.InviteID))
	assert.Empty(t, c.Invitations())
}

func TestTeamUpdateRoleInPlace(t *testing.T) {
	c := NewTeam(demoTeam(), managerSession())
	require.NoError(t, c.Refresh(context.Background()))

	updated, err := c.UpdateRole(context.Background(), demo.TeamMemberID, domain.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleManager, updated.Role)

	var found bool
	for _, m := range c.Members() {
		if m.ID == demo.TeamMemberID {
			found = true
			assert.Equal(t, domain.RoleManager, m.Role)
		}
	}
	assert.True(t, found)
}

func TestTeamRemoveMemberGuarded(t *testing.T) {
	member := NewTeam(demoTeam(), teamSession())
	require.NoError(t, member.Refresh(context.Background()))

	err := member.Remove(context.Background(), demo.TeamMemberID)
	assert.ErrorIs(t, err, policy.ErrManagerOnly)
	assert.Len(t, member.Members(), 2)
}

func TestTeamRemoveMember(t *testing.T) {
	c := NewTeam(demoTeam(), managerSession())
	require.NoError(t, c.Refresh(context.Background()))

	require.NoError(t, c.Remove(context.Background(), demo.TeamMemberID))
	assert.Len(t, c.Members(), 1)
}

func TestTeamSearch(t *testing.T) {
	c := NewTeam(demoTeam(), managerSession())
	require.NoError(t, c.Refresh(context.Background()))

	assert.Len(t, c.Search("manager"), 1)
	assert.Len(t, c.Search("engineering"), 2)
	assert.Len(t, c.Search("  "), 2)
	assert.Empty(t, c.Search("zzz"))
}

func TestTeamStatsFromCache(t *testing.T) {
	c := NewTeam(demoTeam(), managerSession())
	require.NoError(t, c.Refresh(context.Background()))

	s := c.Stats()
	assert.Equal(t, 2, s.TotalMembers)
	assert.Equal(t, 2, s.ActiveMembers)
	assert.Equal(t, 1, s.Managers)
	assert.Equal(t, 1, s.TeamMembers)
	assert.Equal(t, 1, s.PendingInvitations)
}
