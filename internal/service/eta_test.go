package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-waitroom/models"
)

func TestSessionID(t *testing.T) {
	// sha256("alice:demo")
	assert.Equal(t, "0b524a88048a8dcc", SessionID("alice", "demo"))
	assert.Len(t, SessionID("bob", "demo"), 16)
	assert.Equal(t, SessionID("bob", "demo"), SessionID("bob", "demo"))
	assert.NotEqual(t, SessionID("bob", "demo"), SessionID("bob", "other"))
}

func TestEstimateETA(t *testing.T) {
	tests := []struct {
		name         string
		activity     models.Activity
		position     int64
		wantWait     int64
		wantInterval int64
	}{
		{"eligible", models.Activity{ReleaseRate: 5}, 0, 0, 0},
		{"negative position", models.Activity{ReleaseRate: 5}, -3, 0, 0},
		{"rounds up", models.Activity{ReleaseRate: 5}, 3, 1, 1000},
		{"zero rate is one per second", models.Activity{}, 45, 45, 2000},
		{"five minutes band", models.Activity{ReleaseRate: 1}, 300, 300, 5000},
		{"ten minutes band", models.Activity{ReleaseRate: 1}, 601, 601, 30000},
		{"capped by activity", models.Activity{ReleaseRate: 1, PollIntervalMs: 3000}, 500, 500, 3000},
		{"cap above band is ignored", models.Activity{ReleaseRate: 1, PollIntervalMs: 60000}, 10, 10, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eta := estimateETA(tt.activity, tt.position)
			require.NotNil(t, eta)
			assert.Equal(t, tt.wantWait, *eta.EstimatedWaitSeconds)
			assert.Equal(t, tt.wantInterval, *eta.NextPollIntervalMs)
		})
	}
}

func TestPollInterval_Bands(t *testing.T) {
	tests := []struct {
		wait int64
		want time.Duration
	}{
		{1, time.Second},
		{30, time.Second},
		{31, 2 * time.Second},
		{120, 2 * time.Second},
		{121, 5 * time.Second},
		{600, 10 * time.Second},
		{601, 30 * time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pollInterval(tt.wait, 0), "wait=%d", tt.wait)
	}
}

func TestReleaseBatch(t *testing.T) {
	assert.Equal(t, int64(5), releaseBatch(5, time.Second))
	assert.Equal(t, int64(10), releaseBatch(5, 2*time.Second))
	assert.Equal(t, int64(1), releaseBatch(0, time.Second))
	assert.Equal(t, int64(1), releaseBatch(1, 100*time.Millisecond))
}
