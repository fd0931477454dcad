package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/roster-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered    EventType = "user_registered"
	EventUserSignedIn      EventType = "user_signed_in"
	EventPlayerAssigned    EventType = "player_assigned"
	EventPlayerTransferred EventType = "player_transferred"
	EventPlayerUnassigned  EventType = "player_unassigned"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Username  string      `json:"username,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps a fresh event envelope.
func NewEvent(eventType EventType, username string, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Username:  username,
		Timestamp: time.Now(),
		Payload:   payload,
	}
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Username string          `json:"username"`
	Role     domain.RoleName `json:"role"`
}

// UserSignedInPayload payload.
type UserSignedInPayload struct {
	Username string `json:"username"`
}

// RosterChangePayload describes an assign, transfer or unassign.
type RosterChangePayload struct {
	PlayerIDs  []int64 `json:"player_ids"`
	TeamID     *int64  `json:"team_id,omitempty"`
	FromTeamID *int64  `json:"from_team_id,omitempty"`
}
