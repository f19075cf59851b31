package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	EntityProject = "project"
	EntityTask    = "task"
	EntityMessage = "message"
	EntityTeam    = "team"
)

type ActivityLog struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   uuid.UUID      `json:"entity_id"`
	Details    map[string]any `json:"details,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
