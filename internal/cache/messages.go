package cache

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/synergysphere/synergy/internal/api"
	"github.com/synergysphere/synergy/internal/auth"
	"github.com/synergysphere/synergy/internal/domain"
)

// Event actions accepted by Messages.ApplyEvent, matching the change
// feed the websocket stream delivers.
const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"
)

// Messages caches the message feed for one project scope (nil means
// the team-wide feed). Besides the usual fetch path it merges change
// events pushed over the stream, so a message sent by another client
// appears without a refetch.
type Messages struct {
	svc       *api.Service
	session   *auth.Session
	projectID *uuid.UUID

	mu       sync.Mutex
	messages []domain.TeamMessage
	lastErr  string
	issued   uint64
}

type MessageStats struct {
	Total   int `json:"total"`
	Files   int `json:"files"`
	Replies int `json:"replies"`
	Senders int `json:"senders"`
}

func NewMessages(svc *api.Service, session *auth.Session, projectID *uuid.UUID) *Messages {
	c := &Messages{svc: svc, session: session, projectID: projectID}
	session.OnChange(func(*domain.Profile) { _ = c.Refresh(context.Background()) })
	return c
}

// Refresh refetches the feed; superseded responses are discarded.
func (c *Messages) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.mu.Unlock()

	resp := c.svc.ListMessages(ctx, c.projectID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.issued {
		return nil // superseded
	}
	if !resp.Success {
		c.lastErr = resp.ErrMessage()
		return errors.New(c.lastErr)
	}
	c.messages = *resp.Data
	c.lastErr = ""
	return nil
}

// Send posts a text message to the cached scope.
func (c *Messages) Send(ctx context.Context, content string) (*domain.TeamMessage, error) {
	return c.create(ctx, api.CreateMessageInput{
		ProjectID:   c.projectID,
		Content:     content,
		MessageType: domain.MessageTypeText,
	})
}

// SendFile posts a file message; content carries the file reference.
func (c *Messages) SendFile(ctx context.Context, content string) (*domain.TeamMessage, error) {
	return c.create(ctx, api.CreateMessageInput{
		ProjectID:   c.projectID,
		Content:     content,
		MessageType: domain.MessageTypeFile,
	})
}

// Reply posts a text message threaded under parentID.
func (c *Messages) Reply(ctx context.Context, parentID uuid.UUID, content string) (*domain.TeamMessage, error) {
	return c.create(ctx, api.CreateMessageInput{
		ProjectID:   c.projectID,
		Content:     content,
		MessageType: domain.MessageTypeText,
		ReplyTo:     &parentID,
	})
}

func (c *Messages) create(ctx context.Context, input api.CreateMessageInput) (*domain.TeamMessage, error) {
	actorID := c.session.UserID()
	if actorID == uuid.Nil {
		return nil, ErrNotSignedIn
	}

	resp := c.svc.CreateMessage(ctx, actorID, input)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !resp.Success {
		c.lastErr = resp.ErrMessage()
		return nil, errors.New(c.lastErr)
	}
	c.mergeLocked(*resp.Data)
	c.lastErr = ""
	return resp.Data, nil
}

// ApplyEvent merges one stream change into the cached feed. Inserts
// are deduplicated against messages the local client already sent.
func (c *Messages) ApplyEvent(action string, m domain.TeamMessage) {
	if !c.inScope(m) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	switch action {
	case EventInsert, EventUpdate:
		c.mergeLocked(m)
	case EventDelete:
		c.messages = removeByID(c.messages, m.ID, messageID)
	}
}

// mergeLocked replaces an existing entry in place or prepends a new one.
func (c *Messages) mergeLocked(m domain.TeamMessage) {
	for i := range c.messages {
		if c.messages[i].ID == m.ID {
			c.messages[i] = m
			return
		}
	}
	c.messages = prepend(c.messages, m)
}

func (c *Messages) inScope(m domain.TeamMessage) bool {
	if c.projectID == nil {
		return true // team-wide feed carries every message
	}
	return m.ProjectID != nil && *m.ProjectID == *c.projectID
}

// All returns a copy of the cached feed, most recent first.
func (c *Messages) All() []domain.TeamMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshot(c.messages)
}

// Err returns the message of the last failed operation, if any.
func (c *Messages) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Messages) BySender(senderID uuid.UUID) []domain.TeamMessage {
	return filter(c.All(), func(m domain.TeamMessage) bool { return m.SenderID == senderID })
}

// Replies returns the messages threaded under parentID.
func (c *Messages) Replies(parentID uuid.UUID) []domain.TeamMessage {
	return filter(c.All(), func(m domain.TeamMessage) bool {
		return m.ReplyTo != nil && *m.ReplyTo == parentID
	})
}

// Recent returns up to n of the newest messages.
func (c *Messages) Recent(n int) []domain.TeamMessage {
	all := c.All()
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// Stats aggregates the cached feed.
func (c *Messages) Stats() MessageStats {
	messages := c.All()

	var s MessageStats
	s.Total = len(messages)
	senders := make(map[uuid.UUID]struct{})
	for _, m := range messages {
		if m.MessageType == domain.MessageTypeFile {
			s.Files++
		}
		if m.ReplyTo != nil {
			s.Replies++
		}
		senders[m.SenderID] = struct{}{}
	}
	s.Senders = len(senders)
	return s
}

func messageID(m domain.TeamMessage) uuid.UUID { return m.ID }
