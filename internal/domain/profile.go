package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleManager = "manager"
	RoleTeam    = "team"
)

type Profile struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	Department   *string   `json:"department,omitempty"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsManager reports whether the profile carries the manager role.
func (p *Profile) IsManager() bool {
	return p.Role == RoleManager
}
