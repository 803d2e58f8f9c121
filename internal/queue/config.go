package queue

import (
	"time"

	"github.com/MKhiriev/go-waitroom/internal/events"
	"github.com/MKhiriev/go-waitroom/internal/logger"
)

// Defaults used for zero-valued Config fields.
const (
	DefaultMaxRetries     = 3
	DefaultRetryBaseDelay = time.Second
	DefaultPollInterval   = 2 * time.Second
)

// Config is the polling and retry policy of a [Client].
type Config struct {
	// ActivityID is the activity whose queue the client joins. Required.
	ActivityID string
	// MaxRetries is the number of consecutive poll failures that ends
	// polling with StateError.
	MaxRetries int
	// RetryBaseDelay is the delay before the first retry; retry k waits
	// RetryBaseDelay·2^(k-1).
	RetryBaseDelay time.Duration
	// DefaultPollInterval is used when a status response has no positive
	// next-poll hint.
	DefaultPollInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.RetryBaseDelay <= 0 {
		c.RetryBaseDelay = DefaultRetryBaseDelay
	}
	if c.DefaultPollInterval <= 0 {
		c.DefaultPollInterval = DefaultPollInterval
	}
	return c
}

// Option customises a [Client].
type Option func(*Client)

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *Client) {
		if s != nil {
			c.sched = s
		}
	}
}

// WithLogger sets the client logger. The event bus logs through it too.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithBus makes the client publish on b instead of a private bus.
func WithBus(b *events.Bus) Option {
	return func(c *Client) {
		if b != nil {
			c.bus = b
		}
	}
}
