package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MemberStatusActive   = "active"
	MemberStatusPending  = "pending"
	MemberStatusInactive = "inactive"
)

const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusDeclined = "declined"
	InviteStatusExpired  = "expired"
)

// TeamMember is a view over Profile with membership state attached.
type TeamMember struct {
	Profile
	Status     string    `json:"status"`
	JoinedAt   time.Time `json:"joined_at"`
	LastActive time.Time `json:"last_active"`
}

type TeamInvitation struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	InvitedBy uuid.UUID  `json:"invited_by"`
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
	Status    string     `json:"status"`
	ExpiresAt time.Time  `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// IsExpired reports whether the invitation's expiry has passed.
func (i *TeamInvitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

type TeamStats struct {
	TotalMembers       int `json:"total_members"`
	ActiveMembers      int `json:"active_members"`
	PendingInvitations int `json:"pending_invitations"`
	Managers           int `json:"managers"`
	TeamMembers        int `json:"team_members"`
}
