package models

import "time"

// ActivityStatus is the lifecycle stage of a queued activity.
type ActivityStatus string

const (
	ActivityDraft  ActivityStatus = "draft"
	ActivityActive ActivityStatus = "active"
	ActivityPaused ActivityStatus = "paused"
	ActivityEnded  ActivityStatus = "ended"
)

// Activity is an event users queue for on the server side.
type Activity struct {
	ID     string
	Name   string
	Status ActivityStatus

	// ReleaseRate is how many sessions the release worker admits per tick.
	ReleaseRate int64

	// PollIntervalMs is the upper bound for the poll interval suggested to
	// clients.
	PollIntervalMs int64

	StartAt   time.Time
	EndAt     time.Time
	CreatedAt time.Time
}

// IsOpen reports whether sessions can enter the activity's queue at now.
func (a Activity) IsOpen(now time.Time) bool {
	if a.Status != ActivityActive {
		return false
	}
	if !a.StartAt.IsZero() && now.Before(a.StartAt) {
		return false
	}
	if !a.EndAt.IsZero() && now.After(a.EndAt) {
		return false
	}
	return true
}

// QueueEntry is the persisted record of one accepted enqueue.
type QueueEntry struct {
	ActivityID       string
	SessionID        string
	UserIdentifier   string
	DeviceIdentifier string
	SequenceNumber   int64
	CreatedAt        time.Time
}
