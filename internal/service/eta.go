package service

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"time"

	"github.com/MKhiriev/go-waitroom/models"
)

// pollBands maps an upper ETA bound in seconds to the poll interval
// suggested to clients waiting that long.
var pollBands = []struct {
	maxWait  int64
	interval time.Duration
}{
	{30, time.Second},
	{120, 2 * time.Second},
	{300, 5 * time.Second},
	{600, 10 * time.Second},
}

const longWaitPollInterval = 30 * time.Second

// SessionID derives the session identifier of a user in an activity: the
// first 16 hex characters of SHA-256 over "user:activity".
func SessionID(userIdentifier, activityID string) string {
	sum := sha256.Sum256([]byte(userIdentifier + ":" + activityID))
	return hex.EncodeToString(sum[:])[:16]
}

// effectiveRate is the number of sessions released per second. Activities
// without a positive rate release one per second.
func effectiveRate(releaseRate int64) int64 {
	if releaseRate <= 0 {
		return 1
	}
	return releaseRate
}

// estimateETA returns the wait estimate for a session position places from
// the front. Eligible sessions get zero for both values.
func estimateETA(activity models.Activity, position int64) *models.ETA {
	if position <= 0 {
		return &models.ETA{
			EstimatedWaitSeconds: models.Int64(0),
			NextPollIntervalMs:   models.Int64(0),
		}
	}

	wait := int64(math.Ceil(float64(position) / float64(effectiveRate(activity.ReleaseRate))))
	return &models.ETA{
		EstimatedWaitSeconds: models.Int64(wait),
		NextPollIntervalMs:   models.Int64(pollInterval(wait, activity.PollIntervalMs).Milliseconds()),
	}
}

// pollInterval picks the band for waitSeconds, capped by the activity's
// configured interval when it has one.
func pollInterval(waitSeconds, capMs int64) time.Duration {
	interval := longWaitPollInterval
	for _, band := range pollBands {
		if waitSeconds <= band.maxWait {
			interval = band.interval
			break
		}
	}

	if capMs > 0 {
		interval = min(interval, time.Duration(capMs)*time.Millisecond)
	}
	return interval
}

// releaseBatch is how many sessions one release tick admits.
func releaseBatch(releaseRate int64, tick time.Duration) int64 {
	n := int64(math.Round(float64(effectiveRate(releaseRate)) * tick.Seconds()))
	return max(n, 1)
}
