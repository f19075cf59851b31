// Package policy is the single evaluation point for role-based guards.
// These are dashboard guards, not a security boundary on their own: the
// HTTP handlers apply the same checks server-side.
package policy

import (
	"errors"

	"github.com/synergysphere/synergy/internal/domain"
)

var ErrManagerOnly = errors.New("only managers can perform this action")

func CanCreateProject(role string) bool {
	return role == domain.RoleManager
}

func CanDeleteProject(role string) bool {
	return role == domain.RoleManager
}

func CanManageTeam(role string) bool {
	return role == domain.RoleManager
}

func CanInvite(role string) bool {
	return role == domain.RoleManager
}

// Require converts a guard decision into the sentinel error callers
// surface immediately, before any remote call is made.
func Require(allowed bool) error {
	if !allowed {
		return ErrManagerOnly
	}
	return nil
}
