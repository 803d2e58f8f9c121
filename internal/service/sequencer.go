package service

import (
	"context"
	"fmt"
	"sync"
)

// seedFunc returns the highest sequence number already issued for an
// activity.
type seedFunc func(ctx context.Context, activityID string) (int64, error)

type counters struct {
	issued   int64
	released int64
}

// sequencer hands out per-activity sequence numbers and tracks how far each
// queue has been released. Issued counters are seeded from storage on first
// use; release progress lives in memory only.
type sequencer struct {
	mu       sync.Mutex
	counters map[string]*counters
	seed     seedFunc
}

func newSequencer(seed seedFunc) *sequencer {
	return &sequencer{
		counters: make(map[string]*counters),
		seed:     seed,
	}
}

func (s *sequencer) loadLocked(ctx context.Context, activityID string) (*counters, error) {
	if c, ok := s.counters[activityID]; ok {
		return c, nil
	}

	issued, err := s.seed(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("error seeding sequence of activity %q: %w", activityID, err)
	}
	c := &counters{issued: issued}
	s.counters[activityID] = c
	return c, nil
}

// issue hands the following sequence number of the activity to commit and
// counts it as issued only when commit succeeds. A nil commit always
// succeeds. Commits of all activities run one at a time.
func (s *sequencer) issue(ctx context.Context, activityID string, commit func(seq int64) error) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.loadLocked(ctx, activityID)
	if err != nil {
		return 0, err
	}

	seq := c.issued + 1
	if commit != nil {
		if err = commit(seq); err != nil {
			return 0, err
		}
	}
	c.issued = seq
	return seq, nil
}

func (s *sequencer) snapshot(ctx context.Context, activityID string) (issued, released int64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.loadLocked(ctx, activityID)
	if err != nil {
		return 0, 0, err
	}
	return c.issued, c.released, nil
}

// advance moves the release sequence forward by at most n, never past the
// last issued number, and returns how far it moved.
func (s *sequencer) advance(ctx context.Context, activityID string, n int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.loadLocked(ctx, activityID)
	if err != nil {
		return 0, err
	}

	target := min(c.released+n, c.issued)
	if target <= c.released {
		return 0, nil
	}
	admitted := target - c.released
	c.released = target
	return admitted, nil
}
