package models

import "time"

// Defaults applied to activities created without an explicit policy.
const (
	DefaultActivityReleaseRate    int64 = 10
	DefaultActivityPollIntervalMs int64 = 2000
)

// Valid reports whether s is one of the known lifecycle stages.
func (s ActivityStatus) Valid() bool {
	switch s {
	case ActivityDraft, ActivityActive, ActivityPaused, ActivityEnded:
		return true
	}
	return false
}

// CreateActivityRequest is the body of POST /admin/activities. Zero
// numeric fields and an empty status take their defaults.
type CreateActivityRequest struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Status         ActivityStatus `json:"status,omitempty"`
	ReleaseRate    int64          `json:"release_rate,omitempty"`
	PollIntervalMs int64          `json:"poll_interval_ms,omitempty"`
	StartAt        *time.Time     `json:"start_at,omitempty"`
	EndAt          *time.Time     `json:"end_at,omitempty"`
}

// UpdateActivityRequest is the body of PUT /admin/activities/{id}. Nil
// fields keep their stored value.
type UpdateActivityRequest struct {
	Name           *string         `json:"name,omitempty"`
	Status         *ActivityStatus `json:"status,omitempty"`
	ReleaseRate    *int64          `json:"release_rate,omitempty"`
	PollIntervalMs *int64          `json:"poll_interval_ms,omitempty"`
	StartAt        *time.Time      `json:"start_at,omitempty"`
	EndAt          *time.Time      `json:"end_at,omitempty"`
}

// IsEmpty reports whether the request changes nothing.
func (r UpdateActivityRequest) IsEmpty() bool {
	return r.Name == nil && r.Status == nil && r.ReleaseRate == nil &&
		r.PollIntervalMs == nil && r.StartAt == nil && r.EndAt == nil
}

// Apply returns a copy of a with the request's non-nil fields set.
func (r UpdateActivityRequest) Apply(a Activity) Activity {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Status != nil {
		a.Status = *r.Status
	}
	if r.ReleaseRate != nil {
		a.ReleaseRate = *r.ReleaseRate
	}
	if r.PollIntervalMs != nil {
		a.PollIntervalMs = *r.PollIntervalMs
	}
	if r.StartAt != nil {
		a.StartAt = r.StartAt.UTC()
	}
	if r.EndAt != nil {
		a.EndAt = r.EndAt.UTC()
	}
	return a
}

// ActivityView is the wire form of an [Activity].
type ActivityView struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Status         ActivityStatus `json:"status"`
	ReleaseRate    int64          `json:"release_rate"`
	PollIntervalMs int64          `json:"poll_interval_ms"`
	StartAt        *time.Time     `json:"start_at,omitempty"`
	EndAt          *time.Time     `json:"end_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

func NewActivityView(a Activity) ActivityView {
	return ActivityView{
		ID:             a.ID,
		Name:           a.Name,
		Status:         a.Status,
		ReleaseRate:    a.ReleaseRate,
		PollIntervalMs: a.PollIntervalMs,
		StartAt:        timeOrNil(a.StartAt),
		EndAt:          timeOrNil(a.EndAt),
		CreatedAt:      a.CreatedAt,
	}
}

// QueueMetrics is the sequencer state of one activity.
type QueueMetrics struct {
	QueueSeq    int64 `json:"queue_seq"`
	ReleaseSeq  int64 `json:"release_seq"`
	QueueLength int64 `json:"queue_length"`
}

// ActivityStatusReport is the body of GET /admin/activities/{id}/status.
type ActivityStatusReport struct {
	Activity     ActivityView `json:"activity"`
	Open         bool         `json:"open"`
	QueueMetrics QueueMetrics `json:"queue_metrics"`
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
