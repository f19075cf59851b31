package cache

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/synergysphere/synergy/internal/auth"
	"github.com/synergysphere/synergy/internal/domain"
	"github.com/synergysphere/synergy/internal/policy"
	"github.com/synergysphere/synergy/internal/team"
)

// Team caches the member roster and pending invitations together,
// since the team views consume both.
type Team struct {
	svc     *team.Service
	session *auth.Session

	mu      sync.Mutex
	members []domain.TeamMember
	invites []domain.TeamInvitation
	lastErr string
	issued  uint64
}

func NewTeam(svc *team.Service, session *auth.Session) *Team {
	c := &Team{svc: svc, session: session}
	session.OnChange(func(*domain.Profile) { _ = c.Refresh(context.Background()) })
	return c
}

// Refresh refetches members and pending invitations; superseded
// responses are discarded.
func (c *Team) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.mu.Unlock()

	membersResp := c.svc.Members(ctx)
	invitesResp := c.svc.PendingInvitations(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.issued {
		return nil // superseded
	}
	if !membersResp.Success {
		c.lastErr = membersResp.ErrMessage()
		return errors.New(c.lastErr)
	}
	if !invitesResp.Success {
		c.lastErr = invitesResp.ErrMessage()
		return errors.New(c.lastErr)
	}
	c.members = *membersResp.Data
	c.invites = *invitesResp.Data
	c.lastErr = ""
	return nil
}

// Invite requires the manager role. On success the invitation is
// prepended to the cached pending list.
func (c *Team) Invite(ctx context.Context, email, role string, projectID *uuid.UUID) (*domain.TeamInvitation, error) {
	actorID := c.session.UserID()
	if actorID == uuid.Nil {
		return nil, ErrNotSignedIn
	}
	if err := policy.Require(policy.CanInvite(c.session.Role())); err != nil {
		return nil, err
	}

	resp := c.svc.CreateInvitation(ctx, actorID, email, role, projectID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !resp.Success {
		c.lastErr = resp.ErrMessage()
		return nil, errors.New(c.lastErr)
	}
	c.invites = prepend(c.invites, *resp.Data)
	c.lastErr = ""
	return resp.Data, nil
}

// CancelInvite requires the manager role and removes the invitation
// from the cached pending list.
func (c *Team) CancelInvite(ctx context.Context, id uuid.UUID) error {
	if c.session.UserID() == uuid.Nil {
		return ErrNotSignedIn
	}
	if err := policy.Require(policy.CanManageTeam(c.session.Role())); err != nil {
		return err
	}

	resp := c.svc.CancelInvitation(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !resp.Success {
		c.lastErr = resp.ErrMessage()
		return errors.New(c.lastErr)
	}
	c.invites = removeByID(c.invites, id, inviteID)
	c.lastErr = ""
	return nil
}

// UpdateRole requires the manager role and swaps the member in place.
func (c *Team) UpdateRole(ctx context.Context, memberID uuid.UUID, newRole string) (*domain.TeamMember, error) {
	if c.session.UserID() == uuid.Nil {
		return nil, ErrNotSignedIn
	}
	if err := policy.Require(policy.CanManageTeam(c.session.Role())); err != nil {
		return nil, err
	}

	resp := c.svc.UpdateMemberRole(ctx, memberID, newRole)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !resp.Success {
		c.lastErr = resp.ErrMessage()
		return nil, errors.New(c.lastErr)
	}
	c.members = replaceByID(c.members, memberID, *resp.Data, memberUUID)
	c.lastErr = ""
	return resp.Data, nil
}

// Remove requires the manager role and drops the member from the
// cached roster. The underlying profile is retained server-side.
func (c *Team) Remove(ctx context.Context, memberID uuid.UUID) error {
	if c.session.UserID() == uuid.Nil {
		return ErrNotSignedIn
	}
	if err := policy.Require(policy.CanManageTeam(c.session.Role())); err != nil {
		return err
	}

	resp := c.svc.RemoveMember(ctx, memberID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !resp.Success {
		c.lastErr = resp.ErrMessage()
		return errors.New(c.lastErr)
	}
	c.members = removeByID(c.members, memberID, memberUUID)
	c.lastErr = ""
	return nil
}

// Members returns a copy of the cached roster.
func (c *Team) Members() []domain.TeamMember {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshot(c.members)
}

// Invitations returns a copy of the cached pending invitations.
func (c *Team) Invitations() []domain.TeamInvitation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshot(c.invites)
}

// Err returns the message of the last failed operation, if any.
func (c *Team) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Search filters the cached roster by name, email or department.
func (c *Team) Search(query string) []domain.TeamMember {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Members()
	}
	return filter(c.Members(), func(m domain.TeamMember) bool {
		if strings.Contains(strings.ToLower(m.FullName), q) ||
			strings.Contains(strings.ToLower(m.Email), q) {
			return true
		}
		return m.Department != nil && strings.Contains(strings.ToLower(*m.Department), q)
	})
}

// Stats aggregates the cached roster and invitations.
func (c *Team) Stats() domain.TeamStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	var s domain.TeamStats
	s.TotalMembers = len(c.members)
	for _, m := range c.members {
		if m.Status == domain.MemberStatusActive {
			s.ActiveMembers++
		}
		switch m.Role {
		case domain.RoleManager:
			s.Managers++
		case domain.RoleTeam:
			s.TeamMembers++
		}
	}
	s.PendingInvitations = len(c.invites)
	return s
}

func inviteID(i domain.TeamInvitation) uuid.UUID { return i.ID }
func memberUUID(m domain.TeamMember) uuid.UUID   { return m.ID }
