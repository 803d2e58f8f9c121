package events

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-waitroom/internal/logger"
)

// Name identifies an event stream.
type Name string

// Event is what a Handler receives.
type Event struct {
	Name    Name
	Payload any
	At      time.Time
}

// Handler consumes one event. A returned error is reported through the bus
// logger and otherwise ignored.
type Handler func(Event) error

// Token identifies a subscription so it can be removed later.
type Token uint64

type subscription struct {
	token   Token
	handler Handler
}

// Bus maps event names to ordered subscriber lists. It is safe for
// concurrent use.
type Bus struct {
	mu     sync.RWMutex
	subs   map[Name][]subscription
	nextID Token

	now    func() time.Time
	logger *logger.Logger
}

// NewBus creates an empty bus. Handler failures are logged to log.
func NewBus(log *logger.Logger) *Bus {
	if log == nil {
		log = logger.Nop()
	}
	return &Bus{
		subs:   make(map[Name][]subscription),
		now:    time.Now,
		logger: log.WithComponent("events"),
	}
}

// Subscribe appends h to the subscribers of name and returns its token.
func (b *Bus) Subscribe(name Name, h Handler) Token {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs[name] = append(b.subs[name], subscription{token: b.nextID, handler: h})
	return b.nextID
}

// Unsubscribe removes the subscription identified by token. Unknown tokens
// are ignored.
func (b *Bus) Unsubscribe(name Name, token Token) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.subs[name]
	for i, s := range list {
		if s.token != token {
			continue
		}
		next := make([]subscription, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(b.subs, name)
		} else {
			b.subs[name] = next
		}
		return
	}
}

// Publish delivers payload to every current subscriber of name.
// Subscriptions added or removed by a handler take effect for the next
// Publish.
func (b *Bus) Publish(name Name, payload any) {
	b.mu.RLock()
	list := b.subs[name]
	b.mu.RUnlock()

	if len(list) == 0 {
		return
	}

	ev := Event{Name: name, Payload: payload, At: b.now()}
	for _, s := range list {
		if err := b.deliver(s.handler, ev); err != nil {
			b.logger.Error().Err(err).
				Str("event", string(name)).
				Uint64("subscription", uint64(s.token)).
				Msg("event handler failed")
		}
	}
}

// Clear drops every subscription.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = make(map[Name][]subscription)
}

// Len returns the number of subscribers of name.
func (b *Bus) Len(name Name) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[name])
}

func (b *Bus) deliver(h Handler, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()
	return h(ev)
}
