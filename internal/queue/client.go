// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-waitroom/internal/adapter"
	"github.com/MKhiriev/go-waitroom/internal/events"
	"github.com/MKhiriev/go-waitroom/internal/identity"
	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/models"
)

// Client joins a queue and follows the session until it may enter.
// All methods are safe for concurrent use.
type Client struct {
	transport adapter.Transport
	identity  identity.Provider
	cfg       Config
	sched     Scheduler
	bus       *events.Bus
	logger    *logger.Logger

	mu         sync.Mutex
	state      State
	session    *models.Session
	retries    int
	pending    *pendingPoll
	generation uint64
	destroyed  bool

	// base is cancelled by Destroy and aborts in-flight requests.
	base   context.Context
	cancel context.CancelFunc
}

// New constructs an idle client for cfg.ActivityID. Zero-valued policy
// fields take the package defaults.
func New(transport adapter.Transport, id identity.Provider, cfg Config, opts ...Option) (*Client, error) {
	switch {
	case transport == nil:
		return nil, validationError("new", errors.New("nil transport"))
	case id == nil:
		return nil, validationError("new", errors.New("nil identity provider"))
	case cfg.ActivityID == "":
		return nil, validationError("new", errors.New("empty activity id"))
	}

	c := &Client{
		transport: transport,
		identity:  id,
		cfg:       cfg.withDefaults(),
		sched:     wallClock{},
		logger:    logger.Nop(),
		state:     StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.bus == nil {
		c.bus = events.NewBus(c.logger)
	}
	c.logger = c.logger.WithComponent("queue")
	c.base, c.cancel = context.WithCancel(context.Background())

	return c, nil
}

// Subscribe registers h for the named event. Handlers added after Destroy
// are never called.
func (c *Client) Subscribe(name events.Name, h events.Handler) events.Token {
	c.mu.Lock()
	destroyed := c.destroyed
	c.mu.Unlock()
	if destroyed {
		return 0
	}
	return c.bus.Subscribe(name, h)
}

// Unsubscribe removes a subscription made with Subscribe.
func (c *Client) Unsubscribe(name events.Name, token events.Token) {
	c.bus.Unsubscribe(name, token)
}

// State returns the current lifecycle state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Session returns a copy of the held session, if any.
func (c *Client) Session() (models.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return models.Session{}, false
	}
	return c.session.Clone(), true
}

// Snapshot returns state, session, retry counter and timer slot together.
func (c *Client) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		State:     c.state,
		Retries:   c.retries,
		Pending:   c.pending != nil,
		Destroyed: c.destroyed,
	}
	if c.session != nil {
		s := c.session.Clone()
		snap.Session = &s
	}
	return snap
}

// Enter joins the queue. While the client is queuing with a session, Enter
// returns that session without contacting the server. On success the
// entered event is published and the first poll is scheduled immediately.
// On failure the client moves to StateError, publishes error and returns
// the same *Error.
func (c *Client) Enter(ctx context.Context) (models.Session, error) {
	var out []emission

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return models.Session{}, validationError("enter", ErrDestroyed)
	}
	if c.state == StateQueuing {
		defer c.mu.Unlock()
		if c.session == nil {
			return models.Session{}, validationError("enter", ErrEnterInProgress)
		}
		return c.session.Clone(), nil
	}

	c.stopPendingLocked()
	c.session = nil
	c.retries = 0
	c.generation++
	gen := c.generation
	c.setStateLocked(StateQueuing, &out)
	c.mu.Unlock()
	c.publish(out)

	reqCtx, done := c.requestContext(ctx)
	resp, err := c.transport.Do(reqCtx, enterRequest(c.cfg.ActivityID, c.identity.UserIdentifier(), c.identity.DeviceIdentifier()))
	done()
	session, err := decodeSession(resp, err)

	out = out[:0]
	c.mu.Lock()
	if c.destroyed || gen != c.generation {
		c.mu.Unlock()
		return models.Session{}, validationError("enter", ErrDestroyed)
	}
	if err != nil {
		qerr := transportError("enter", err)
		c.setStateLocked(StateError, &out)
		out = append(out, emission{EventError, qerr})
		c.mu.Unlock()

		c.logger.Warn().Err(err).Str("activity_id", c.cfg.ActivityID).Msg("enter failed")
		c.publish(out)
		return models.Session{}, qerr
	}

	c.session = &session
	out = append(out, emission{EventEntered, session.Clone()})
	c.mu.Unlock()

	c.logger.Info().
		Str("activity_id", c.cfg.ActivityID).
		Str("session_id", session.SessionID).
		Int64("sequence_number", session.SequenceNumber).
		Msg("entered queue")
	c.publish(out)

	c.mu.Lock()
	if !c.destroyed && gen == c.generation && c.state == StateQueuing {
		c.scheduleLocked(0, gen)
	}
	c.mu.Unlock()

	return session.Clone(), nil
}

// Refresh requests the session status now, outside the schedule. It fails
// with ErrNotInQueue unless the client is queuing with a session. A failed
// request is handled like any poll failure and is reported only through
// backoff and, eventually, the error event.
func (c *Client) Refresh(ctx context.Context) error {
	c.mu.Lock()
	gen := c.generation
	c.mu.Unlock()

	return c.poll(ctx, gen)
}

// Destroy stops polling, drops every subscription and the session, and
// returns the client to StateIdle for good. It is idempotent. Results of
// requests still in flight are discarded.
func (c *Client) Destroy() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.destroyed = true
	c.stopPendingLocked()
	c.session = nil
	c.retries = 0
	c.state = StateIdle
	c.generation++
	c.mu.Unlock()

	c.cancel()
	c.bus.Clear()
	c.logger.Debug().Str("activity_id", c.cfg.ActivityID).Msg("client destroyed")
}

// fire runs when the timer in handle elapses.
func (c *Client) fire(handle *pendingPoll, gen uint64) {
	c.mu.Lock()
	if c.destroyed || c.pending != handle || gen != c.generation {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	c.mu.Unlock()

	_ = c.poll(context.Background(), gen)
}

func (c *Client) poll(ctx context.Context, gen uint64) error {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return validationError("poll", ErrDestroyed)
	}
	if c.session == nil || c.state != StateQueuing || gen != c.generation {
		c.mu.Unlock()
		return validationError("poll", ErrNotInQueue)
	}
	held := c.session.Clone()
	c.mu.Unlock()

	reqCtx, done := c.requestContext(ctx)
	resp, err := c.transport.Do(reqCtx, statusRequest(models.StatusRequest{
		ActivityID:     c.cfg.ActivityID,
		SequenceNumber: held.SequenceNumber,
		SessionID:      held.SessionID,
	}))
	done()
	status, err := decodeStatus(resp, err, held)

	var out []emission
	c.mu.Lock()
	if c.destroyed || gen != c.generation || c.state != StateQueuing ||
		c.session == nil || c.session.SessionID != held.SessionID {
		c.mu.Unlock()
		c.logger.Debug().Str("session_id", held.SessionID).Msg("discarding stale status result")
		return nil
	}
	if err != nil {
		c.failLocked(transportError("poll", err), gen, &out)
	} else {
		c.applyLocked(status, gen, &out)
	}
	c.mu.Unlock()

	c.publish(out)
	return nil
}

func (c *Client) applyLocked(status models.QueueStatus, gen uint64, out *[]emission) {
	previous := c.session.Position
	merged := c.session.Merge(status)
	c.session = &merged
	c.retries = 0

	update := StatusUpdate{Session: merged.Clone(), PositionChanged: positionsDiffer(previous, merged.Position)}
	if previous != nil {
		update.PreviousPosition = models.Int64(*previous)
	}
	*out = append(*out, emission{EventStatusUpdate, update})

	if merged.CanEnter {
		c.stopPendingLocked()
		c.setStateLocked(StateReady, out)
		*out = append(*out, emission{EventReady, merged.Clone()})
		c.logger.Info().Str("session_id", merged.SessionID).Msg("session ready")
		return
	}

	next := c.cfg.DefaultPollInterval
	if hint, ok := status.ETA.NextPollInterval(); ok {
		next = hint
	}
	c.scheduleLocked(next, gen)
}

func (c *Client) failLocked(cause *Error, gen uint64, out *[]emission) {
	c.retries++
	if c.retries >= c.cfg.MaxRetries {
		c.stopPendingLocked()
		c.setStateLocked(StateError, out)
		*out = append(*out, emission{EventError, &Error{
			Op:   "poll",
			Kind: ErrRetryExhausted,
			Err:  fmt.Errorf("after %d consecutive failures: %w", c.retries, cause),
		}})
		c.logger.Warn().Err(cause).Int("retries", c.retries).Msg("polling stopped")
		return
	}

	delay := backoffDelay(c.cfg.RetryBaseDelay, c.retries)
	c.logger.Debug().Err(cause).
		Int("retry", c.retries).
		Dur("delay", delay).
		Msg("poll failed, backing off")
	c.scheduleLocked(delay, gen)
}

// scheduleLocked replaces the timer slot with a poll after d.
func (c *Client) scheduleLocked(d time.Duration, gen uint64) {
	c.stopPendingLocked()

	handle := &pendingPoll{}
	c.pending = handle
	handle.timer = c.sched.AfterFunc(d, func() { c.fire(handle, gen) })
}

func (c *Client) stopPendingLocked() {
	if c.pending == nil {
		return
	}
	c.pending.timer.Stop()
	c.pending = nil
}

func (c *Client) setStateLocked(next State, out *[]emission) {
	if c.state == next {
		return
	}
	prev := c.state
	c.state = next
	*out = append(*out, emission{EventStateChanged, StateChange{Old: prev, New: next}})
}

// publish delivers out in order, stopping if the client was destroyed by
// an earlier handler.
func (c *Client) publish(out []emission) {
	for _, e := range out {
		c.mu.Lock()
		destroyed := c.destroyed
		c.mu.Unlock()
		if destroyed {
			return
		}
		c.bus.Publish(e.name, e.payload)
	}
}

// requestContext derives a context from ctx that is also cancelled by
// Destroy.
func (c *Client) requestContext(ctx context.Context) (context.Context, func()) {
	if ctx == nil {
		ctx = context.Background()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(c.base, cancel)
	return reqCtx, func() {
		stop()
		cancel()
	}
}
