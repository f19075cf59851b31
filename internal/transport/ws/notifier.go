package ws

import (
	"log"

	"github.com/synergysphere/synergy/internal/domain"
)

// HubNotifier implements api.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyNewMessage(msg *domain.TeamMessage) {
	evt, err := NewEvent(EventTypeMessageNew, msg.ProjectID, MessagePayload{TeamMessage: *msg})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.BroadcastToProject(msg.ProjectID, evt, nil)
}
