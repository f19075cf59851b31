package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/synergysphere/synergy/internal/domain"
)

// Event types - Client → Server
const (
	EventTypeProjectSubscribe   = "project.subscribe"
	EventTypeProjectUnsubscribe = "project.unsubscribe"
	EventTypeTypingStart        = "typing.start"
	EventTypeTypingStop         = "typing.stop"
	EventTypePing               = "ping"
)

// Event types - Server → Client
const (
	EventTypeMessageNew = "message.new"
	EventTypeTyping     = "typing"
	EventTypePresence   = "presence"
	EventTypePong       = "pong"
	EventTypeError      = "error"
)

// Event is the base envelope for all WebSocket messages. A nil
// ProjectID addresses the team-wide scope.
type Event struct {
	Type      string          `json:"type"`
	ProjectID *uuid.UUID      `json:"project_id,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"ts,omitempty"`
}

// --- Client → Server payloads ---

type ProjectPayload struct {
	ProjectID uuid.UUID `json:"project_id"`
}

// --- Server → Client payloads ---

type MessagePayload struct {
	domain.TeamMessage
}

type TypingPayload struct {
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
}

type PresencePayload struct {
	UserID uuid.UUID `json:"user_id"`
	Status string    `json:"status"` // "online" | "offline"
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewEvent creates a server→client event with the current timestamp.
func NewEvent(eventType string, projectID *uuid.UUID, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:      eventType,
		ProjectID: projectID,
		Payload:   data,
		Timestamp: time.Now().Unix(),
	}, nil
}
