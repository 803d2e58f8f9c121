package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/internal/metrics"
	"github.com/MKhiriev/go-waitroom/internal/store"
	"github.com/MKhiriev/go-waitroom/models"
)

// unknownActivityLabel stands in for ids that match no activity so clients
// cannot grow the metric label set.
const unknownActivityLabel = "unknown"

type queueService struct {
	activities store.ActivityRepository
	entries    store.QueueEntryRepository
	sequencer  *sequencer
	metrics    *metrics.Metrics
	now        func() time.Time

	logger *logger.Logger
}

func NewQueueService(activities store.ActivityRepository, entries store.QueueEntryRepository, seq *sequencer, m *metrics.Metrics, logger *logger.Logger) QueueService {
	return &queueService{
		activities: activities,
		entries:    entries,
		sequencer:  seq,
		metrics:    m,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *queueService) Enter(ctx context.Context, req models.EnterRequest) (session models.Session, err error) {
	result := metrics.EnterNew
	defer func() {
		label := req.ActivityID
		switch {
		case errors.Is(err, ErrActivityNotFound):
			label, result = unknownActivityLabel, metrics.EnterFailed
		case err != nil:
			result = metrics.EnterFailed
		}
		s.metrics.RecordEnter(label, result)
	}()

	log := logger.FromContext(ctx)

	activity, err := s.getActivity(ctx, req.ActivityID)
	if err != nil {
		return models.Session{}, err
	}
	if !activity.IsOpen(s.now()) {
		return models.Session{}, ErrActivityNotActive
	}

	sessionID := SessionID(req.UserIdentifier, activity.ID)

	entry, err := s.entries.FindEntryBySession(ctx, activity.ID, sessionID)
	switch {
	case err == nil:
		log.Debug().Str("session_id", sessionID).Int64("sequence_number", entry.SequenceNumber).Msg("user already queued")
		result = metrics.EnterExisting
		return s.session(ctx, activity, entry)
	case !errors.Is(err, store.ErrEntryNotFound):
		return models.Session{}, fmt.Errorf("error looking up queue entry: %w", err)
	}

	entry = models.QueueEntry{
		ActivityID:       activity.ID,
		SessionID:        sessionID,
		UserIdentifier:   req.UserIdentifier,
		DeviceIdentifier: req.DeviceIdentifier,
		CreatedAt:        s.now().UTC(),
	}
	_, err = s.sequencer.issue(ctx, activity.ID, func(seq int64) error {
		entry.SequenceNumber = seq
		return s.entries.SaveEntry(ctx, entry)
	})
	if err != nil {
		if !errors.Is(err, store.ErrEntryAlreadyExists) {
			return models.Session{}, fmt.Errorf("error saving queue entry: %w", err)
		}

		// a concurrent enter of the same user got there first
		result = metrics.EnterExisting
		entry, err = s.entries.FindEntryBySession(ctx, activity.ID, sessionID)
		if err != nil {
			return models.Session{}, fmt.Errorf("error looking up queue entry: %w", err)
		}
	}

	log.Info().
		Str("activity_id", activity.ID).
		Str("session_id", sessionID).
		Int64("sequence_number", entry.SequenceNumber).
		Msg("session entered queue")

	return s.session(ctx, activity, entry)
}

func (s *queueService) Status(ctx context.Context, req models.StatusRequest) (models.QueueStatus, error) {
	activity, err := s.getActivity(ctx, req.ActivityID)
	if err != nil {
		return models.QueueStatus{}, err
	}

	entry, err := s.entries.FindEntryBySession(ctx, activity.ID, req.SessionID)
	switch {
	case errors.Is(err, store.ErrEntryNotFound):
		return models.QueueStatus{}, ErrInvalidSequence
	case err != nil:
		return models.QueueStatus{}, fmt.Errorf("error looking up queue entry: %w", err)
	case entry.SequenceNumber != req.SequenceNumber:
		return models.QueueStatus{}, ErrInvalidSequence
	}

	return s.status(ctx, activity, entry)
}

func (s *queueService) getActivity(ctx context.Context, activityID string) (models.Activity, error) {
	activity, err := s.activities.GetActivity(ctx, activityID)
	switch {
	case errors.Is(err, store.ErrActivityNotFound):
		return models.Activity{}, ErrActivityNotFound
	case err != nil:
		return models.Activity{}, fmt.Errorf("error getting activity: %w", err)
	}
	return activity, nil
}

func (s *queueService) status(ctx context.Context, activity models.Activity, entry models.QueueEntry) (models.QueueStatus, error) {
	issued, released, err := s.sequencer.snapshot(ctx, activity.ID)
	if err != nil {
		return models.QueueStatus{}, err
	}

	position := max(entry.SequenceNumber-released, 0)
	return models.QueueStatus{
		SequenceNumber: entry.SequenceNumber,
		SessionID:      entry.SessionID,
		Position:       models.Int64(position),
		CanEnter:       models.Bool(position <= 0),
		ETA:            estimateETA(activity, position),
		QueueLength:    models.Int64(max(issued-released, 0)),
	}, nil
}

func (s *queueService) session(ctx context.Context, activity models.Activity, entry models.QueueEntry) (models.Session, error) {
	status, err := s.status(ctx, activity, entry)
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{}.Merge(status), nil
}
