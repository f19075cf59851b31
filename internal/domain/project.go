package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProjectStatusPlanning  = "planning"
	ProjectStatusActive    = "active"
	ProjectStatusReview    = "review"
	ProjectStatusCompleted = "completed"
	ProjectStatusOnHold    = "on_hold"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

type Project struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority"`
	ManagerID   uuid.UUID   `json:"manager_id"`
	TeamMembers []uuid.UUID `json:"team_members"`
	Progress    int         `json:"progress"`
	StartDate   time.Time   `json:"start_date"`
	DueDate     *time.Time  `json:"due_date,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// HasMember reports whether userID is in the project's member set.
func (p *Project) HasMember(userID uuid.UUID) bool {
	for _, id := range p.TeamMembers {
		if id == userID {
			return true
		}
	}
	return false
}
