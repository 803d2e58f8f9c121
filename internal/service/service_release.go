package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/internal/metrics"
	"github.com/MKhiriev/go-waitroom/internal/store"
)

type releaseService struct {
	activities store.ActivityRepository
	sequencer  *sequencer
	metrics    *metrics.Metrics
	tick       time.Duration
	now        func() time.Time

	logger *logger.Logger
}

// NewReleaseService returns a ReleaseService expected to be called once per
// tick; each call admits rate·tick sessions per activity.
func NewReleaseService(activities store.ActivityRepository, seq *sequencer, m *metrics.Metrics, tick time.Duration, logger *logger.Logger) ReleaseService {
	return &releaseService{
		activities: activities,
		sequencer:  seq,
		metrics:    m,
		tick:       tick,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *releaseService) ReleaseAll(ctx context.Context) (int64, error) {
	activities, err := s.activities.ListActiveActivities(ctx)
	if err != nil {
		return 0, fmt.Errorf("error listing active activities: %w", err)
	}

	now := s.now()
	var total int64
	for _, activity := range activities {
		if !activity.IsOpen(now) {
			continue
		}

		admitted, err := s.sequencer.advance(ctx, activity.ID, releaseBatch(activity.ReleaseRate, s.tick))
		if err != nil {
			return total, fmt.Errorf("error releasing activity %q: %w", activity.ID, err)
		}
		if admitted > 0 {
			s.logger.Debug().Str("activity_id", activity.ID).Int64("admitted", admitted).Msg("released sessions")
		}
		issued, released, err := s.sequencer.snapshot(ctx, activity.ID)
		if err != nil {
			return total, fmt.Errorf("error releasing activity %q: %w", activity.ID, err)
		}
		s.metrics.RecordRelease(activity.ID, admitted, max(issued-released, 0))
		total += admitted
	}

	return total, nil
}
