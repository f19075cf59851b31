package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/synergysphere/synergy/internal/domain"
)

func TestManagerOnlyGuards(t *testing.T) {
	assert.True(t, CanCreateProject(domain.RoleManager))
	assert.True(t, CanDeleteProject(domain.RoleManager))
	assert.True(t, CanManageTeam(domain.RoleManager))
	assert.True(t, CanInvite(domain.RoleManager))

	assert.False(t, CanCreateProject(domain.RoleTeam))
	assert.False(t, CanDeleteProject(domain.RoleTeam))
	assert.False(t, CanManageTeam(domain.RoleTeam))
	assert.False(t, CanInvite(domain.RoleTeam))

	assert.False(t, CanCreateProject(""))
}

func TestRequire(t *testing.T) {
	assert.NoError(t, Require(true))
	assert.ErrorIs(t, Require(false), ErrManagerOnly)
}
