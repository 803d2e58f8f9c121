package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/models"
)

// activityRepository reads and writes the activities table.
type activityRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	logger.Debug().Msg("creating activity repository")
	return &activityRepository{
		db:     db,
		logger: logger,
	}
}

// GetActivity returns [ErrActivityNotFound] when no row matches.
func (r *activityRepository) GetActivity(ctx context.Context, activityID string) (models.Activity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetActivity(r.db.builder(), activityID)
	if err != nil {
		return models.Activity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var activity models.Activity
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return scanActivity(r.db.QueryRowContext(ctx, query, args...), &activity)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Activity{}, ErrActivityNotFound
	case err != nil:
		log.Err(err).Str("func", "*activityRepository.GetActivity").Msg("error: scanning error")
		return models.Activity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return activity, nil
}

func (r *activityRepository) ListActiveActivities(ctx context.Context) ([]models.Activity, error) {
	query, args, err := buildListActiveActivities(r.db.builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.list(ctx, "*activityRepository.ListActiveActivities", query, args)
}

// ListActivities returns every activity regardless of status, ordered by id.
func (r *activityRepository) ListActivities(ctx context.Context) ([]models.Activity, error) {
	query, args, err := buildListActivities(r.db.builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.list(ctx, "*activityRepository.ListActivities", query, args)
}

// CreateActivity returns [ErrActivityAlreadyExists] when the id is taken.
func (r *activityRepository) CreateActivity(ctx context.Context, activity models.Activity) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateActivity(r.db.builder(), activity)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrActivityAlreadyExists
		}
		log.Err(err).Str("func", "*activityRepository.CreateActivity").Msg("error creating activity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpdateActivity returns [ErrActivityNotFound] when no row was changed.
func (r *activityRepository) UpdateActivity(ctx context.Context, activity models.Activity) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateActivity(r.db.builder(), activity)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.UpdateActivity").Msg("error updating activity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrActivityNotFound
	}

	return nil
}

func (r *activityRepository) list(ctx context.Context, fn, query string, args []any) ([]models.Activity, error) {
	log := logger.FromContext(ctx)

	var rows *sql.Rows
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		var qErr error
		rows, qErr = r.db.QueryContext(ctx, query, args...)
		return qErr
	})
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var activity models.Activity
		if err = scanActivity(rows, &activity); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		activities = append(activities, activity)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return activities, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner, activity *models.Activity) error {
	var (
		status         string
		startAt, endAt sql.NullTime
	)
	if err := row.Scan(
		&activity.ID,
		&activity.Name,
		&status,
		&activity.ReleaseRate,
		&activity.PollIntervalMs,
		&startAt,
		&endAt,
		&activity.CreatedAt,
	); err != nil {
		return err
	}

	activity.Status = models.ActivityStatus(status)
	activity.StartAt = startAt.Time
	activity.EndAt = endAt.Time
	return nil
}
