package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/internal/store"
	"github.com/MKhiriev/go-waitroom/internal/validators"
	"github.com/MKhiriev/go-waitroom/models"
)

type adminService struct {
	activities store.ActivityRepository
	sequencer  *sequencer
	now        func() time.Time

	logger *logger.Logger
}

func NewAdminService(activities store.ActivityRepository, seq *sequencer, logger *logger.Logger) AdminService {
	return &adminService{
		activities: activities,
		sequencer:  seq,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *adminService) CreateActivity(ctx context.Context, req models.CreateActivityRequest) (models.Activity, error) {
	activity := models.Activity{
		ID:             req.ID,
		Name:           req.Name,
		Status:         req.Status,
		ReleaseRate:    req.ReleaseRate,
		PollIntervalMs: req.PollIntervalMs,
		CreatedAt:      s.now().UTC(),
	}
	if activity.Status == "" {
		activity.Status = models.ActivityDraft
	}
	if activity.ReleaseRate == 0 {
		activity.ReleaseRate = models.DefaultActivityReleaseRate
	}
	if activity.PollIntervalMs == 0 {
		activity.PollIntervalMs = models.DefaultActivityPollIntervalMs
	}
	if req.StartAt != nil {
		activity.StartAt = req.StartAt.UTC()
	}
	if req.EndAt != nil {
		activity.EndAt = req.EndAt.UTC()
	}

	err := s.activities.CreateActivity(ctx, activity)
	switch {
	case errors.Is(err, store.ErrActivityAlreadyExists):
		return models.Activity{}, fmt.Errorf("%w: %q", ErrActivityAlreadyExists, activity.ID)
	case err != nil:
		return models.Activity{}, fmt.Errorf("error creating activity: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("activity_id", activity.ID).
		Str("status", string(activity.Status)).
		Int64("release_rate", activity.ReleaseRate).
		Msg("activity created")

	return activity, nil
}

func (s *adminService) ListActivities(ctx context.Context) ([]models.Activity, error) {
	activities, err := s.activities.ListActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing activities: %w", err)
	}
	return activities, nil
}

func (s *adminService) ActivityStatus(ctx context.Context, activityID string) (models.ActivityStatusReport, error) {
	activity, err := s.getActivity(ctx, activityID)
	if err != nil {
		return models.ActivityStatusReport{}, err
	}

	issued, released, err := s.sequencer.snapshot(ctx, activity.ID)
	if err != nil {
		return models.ActivityStatusReport{}, err
	}

	return models.ActivityStatusReport{
		Activity: models.NewActivityView(activity),
		Open:     activity.IsOpen(s.now()),
		QueueMetrics: models.QueueMetrics{
			QueueSeq:    issued,
			ReleaseSeq:  released,
			QueueLength: max(issued-released, 0),
		},
	}, nil
}

func (s *adminService) UpdateActivity(ctx context.Context, activityID string, req models.UpdateActivityRequest) (models.Activity, error) {
	current, err := s.getActivity(ctx, activityID)
	if err != nil {
		return models.Activity{}, err
	}

	updated := req.Apply(current)
	if err = validators.ValidTimeRange(updated.StartAt, updated.EndAt); err != nil {
		return models.Activity{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	err = s.activities.UpdateActivity(ctx, updated)
	switch {
	case errors.Is(err, store.ErrActivityNotFound):
		return models.Activity{}, ErrActivityNotFound
	case err != nil:
		return models.Activity{}, fmt.Errorf("error updating activity: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("activity_id", updated.ID).
		Str("from_status", string(current.Status)).
		Str("to_status", string(updated.Status)).
		Int64("release_rate", updated.ReleaseRate).
		Msg("activity updated")

	return updated, nil
}

func (s *adminService) getActivity(ctx context.Context, activityID string) (models.Activity, error) {
	activity, err := s.activities.GetActivity(ctx, activityID)
	switch {
	case errors.Is(err, store.ErrActivityNotFound):
		return models.Activity{}, ErrActivityNotFound
	case err != nil:
		return models.Activity{}, fmt.Errorf("error getting activity: %w", err)
	}
	return activity, nil
}
