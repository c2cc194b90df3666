package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type MatchesUpdatedEvent struct {
	Type          string `json:"type"`
	JobID         string `json:"job_id"`
	ApplicationID string `json:"application_id"`
	Overall       int    `json:"overall"`
	Timestamp     string `json:"timestamp"`
}

// Notifier broadcasts rescoring events over the hub.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) MatchesUpdated(jobID, applicationID uuid.UUID, overall int) {
	if n == nil || n.hub == nil {
		return
	}

	evt := MatchesUpdatedEvent{
		Type:          "matches_updated",
		JobID:         jobID.String(),
		ApplicationID: applicationID.String(),
		Overall:       overall,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
