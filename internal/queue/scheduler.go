package queue

import (
	"math"
	"time"
)

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer before it fired.
	Stop() bool
}

// Scheduler runs f once after d. Implementations may invoke f on any
// goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// pendingPoll is the content of the client's single timer slot. A fired
// callback only proceeds if its own handle is still in the slot.
type pendingPoll struct {
	timer Timer
}

// MaxBackoffDelay caps a single retry wait.
const MaxBackoffDelay = time.Hour

// backoffDelay returns base·2^(attempt-1) for attempt ≥ 1, saturating at
// MaxBackoffDelay.
func backoffDelay(base time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if base <= 0 {
		return 0
	}
	shift := attempt - 1
	if shift >= 63 || base > time.Duration(math.MaxInt64>>shift) {
		return MaxBackoffDelay
	}
	if d := base << shift; d < MaxBackoffDelay {
		return d
	}
	return MaxBackoffDelay
}
