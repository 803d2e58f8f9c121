// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the client-side record of one queue membership. It is created
// from the enter response and updated in place by every status response.
type Session struct {
	// SequenceNumber is the server-issued token of this enqueue attempt.
	// Status responses carrying a different value belong to another attempt.
	SequenceNumber int64 `json:"sequence_number"`

	// SessionID correlates every status request with the enqueue that
	// produced it.
	SessionID string `json:"session_id"`

	// Position is the current rank in the queue. Nil until the server has
	// reported one.
	Position *int64 `json:"position,omitempty"`

	// CanEnter reports that the session reached the front of the queue.
	// Once true the session is terminal.
	CanEnter bool `json:"can_enter"`

	// ETA carries the server's wait estimate and polling hint.
	ETA *ETA `json:"eta,omitempty"`

	// QueueLength is the number of sessions still waiting in the activity.
	QueueLength *int64 `json:"queue_length,omitempty"`
}

// ETA is the server's estimate for a waiting session.
type ETA struct {
	// EstimatedWaitSeconds is the expected time until CanEnter becomes true.
	EstimatedWaitSeconds *int64 `json:"estimated_wait_seconds,omitempty"`

	// NextPollIntervalMs is the interval the server wants the client to wait
	// before the next status request.
	NextPollIntervalMs *int64 `json:"next_poll_interval_ms,omitempty"`
}

// QueueStatus is the payload of a status response. Every field except the
// correlation pair is optional; absent fields leave the session untouched.
type QueueStatus struct {
	SequenceNumber int64  `json:"sequence_number,omitempty"`
	SessionID      string `json:"session_id,omitempty"`
	Position       *int64 `json:"position,omitempty"`
	CanEnter       *bool  `json:"can_enter,omitempty"`
	ETA            *ETA   `json:"eta,omitempty"`
	QueueLength    *int64 `json:"queue_length,omitempty"`
}

// Merge returns a copy of s with every field present in status applied on top.
// The ETA block is replaced as a whole when present.
func (s Session) Merge(status QueueStatus) Session {
	if status.SequenceNumber != 0 {
		s.SequenceNumber = status.SequenceNumber
	}
	if status.SessionID != "" {
		s.SessionID = status.SessionID
	}
	if status.Position != nil {
		s.Position = Int64(*status.Position)
	}
	if status.CanEnter != nil {
		s.CanEnter = *status.CanEnter
	}
	if status.ETA != nil {
		eta := *status.ETA
		s.ETA = &eta
	}
	if status.QueueLength != nil {
		s.QueueLength = Int64(*status.QueueLength)
	}
	return s
}

// Clone returns a deep copy of s so callers cannot mutate the client's state
// through the pointer fields.
func (s Session) Clone() Session {
	if s.Position != nil {
		s.Position = Int64(*s.Position)
	}
	if s.QueueLength != nil {
		s.QueueLength = Int64(*s.QueueLength)
	}
	if s.ETA != nil {
		eta := ETA{}
		if s.ETA.EstimatedWaitSeconds != nil {
			eta.EstimatedWaitSeconds = Int64(*s.ETA.EstimatedWaitSeconds)
		}
		if s.ETA.NextPollIntervalMs != nil {
			eta.NextPollIntervalMs = Int64(*s.ETA.NextPollIntervalMs)
		}
		s.ETA = &eta
	}
	return s
}

// NextPollInterval returns the server-suggested polling interval, or false
// when the server gave no positive hint.
func (e *ETA) NextPollInterval() (time.Duration, bool) {
	if e == nil || e.NextPollIntervalMs == nil || *e.NextPollIntervalMs <= 0 {
		return 0, false
	}
	return time.Duration(*e.NextPollIntervalMs) * time.Millisecond, true
}

// EstimatedWait returns the estimated wait, or false when unknown.
func (e *ETA) EstimatedWait() (time.Duration, bool) {
	if e == nil || e.EstimatedWaitSeconds == nil {
		return 0, false
	}
	return time.Duration(*e.EstimatedWaitSeconds) * time.Second, true
}

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
