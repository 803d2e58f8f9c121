package queue

import (
	"github.com/MKhiriev/go-waitroom/internal/events"
	"github.com/MKhiriev/go-waitroom/models"
)

// Event names published by [Client].
const (
	EventEntered      events.Name = "entered"
	EventStatusUpdate events.Name = "statusUpdate"
	EventReady        events.Name = "ready"
	EventError        events.Name = "error"
	EventStateChanged events.Name = "stateChanged"
)

// StatusUpdate is the payload of the statusUpdate event: the session after
// the status response was merged, plus the position held before the merge.
type StatusUpdate struct {
	models.Session
	PreviousPosition *int64 `json:"previous_position,omitempty"`
	PositionChanged  bool   `json:"position_changed"`
}

// Snapshot is a consistent view of the client at one instant.
type Snapshot struct {
	State     State
	Session   *models.Session
	Retries   int
	Pending   bool
	Destroyed bool
}

type emission struct {
	name    events.Name
	payload any
}

func positionsDiffer(a, b *int64) bool {
	if a == nil || b == nil {
		return a != b
	}
	return *a != *b
}
