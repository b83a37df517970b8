package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the kind of change the event announces
type EventType string

const (
	EventTypeUpdated EventType = "updated"
	EventTypeChanged EventType = "changed"
	EventTypeLocked  EventType = "locked"
)

// EntityType represents what the event is about
type EntityType string

const (
	EntityTypeView       EntityType = "view"
	EntityTypeStatus     EntityType = "status"
	EntityTypeNavigation EntityType = "navigation"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "view.updated"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "view"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// ViewUpdated creates a view.updated event carrying the full view model
func ViewUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeView, payload)
}

// StatusChanged creates a status.changed event
func StatusChanged(payload interface{}) Event {
	return NewEvent(EventTypeChanged, EntityTypeStatus, payload)
}

// NavigationLocked creates a navigation.locked event
func NavigationLocked(payload interface{}) Event {
	return NewEvent(EventTypeLocked, EntityTypeNavigation, payload)
}
