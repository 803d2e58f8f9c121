package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/models"
)

// queueEntryRepository persists accepted enqueues in the queue_entries
// table. (activity_id, session_id) and (activity_id, sequence_number) are
// both unique.
type queueEntryRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewQueueEntryRepository(db *DB, logger *logger.Logger) QueueEntryRepository {
	logger.Debug().Msg("creating queue entry repository")
	return &queueEntryRepository{
		db:     db,
		logger: logger,
	}
}

// SaveEntry inserts entry. A duplicate session or sequence number yields
// [ErrEntryAlreadyExists].
func (r *queueEntryRepository) SaveEntry(ctx context.Context, entry models.QueueEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveEntry(r.db.builder(), entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEntryAlreadyExists
		}
		log.Err(err).Str("func", "*queueEntryRepository.SaveEntry").Msg("error saving queue entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindEntryBySession returns [ErrEntryNotFound] when the session never
// entered the activity's queue.
func (r *queueEntryRepository) FindEntryBySession(ctx context.Context, activityID, sessionID string) (models.QueueEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindEntryBySession(r.db.builder(), activityID, sessionID)
	if err != nil {
		return models.QueueEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.QueueEntry
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&entry.ActivityID,
			&entry.SessionID,
			&entry.UserIdentifier,
			&entry.DeviceIdentifier,
			&entry.SequenceNumber,
			&entry.CreatedAt,
		)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.QueueEntry{}, ErrEntryNotFound
	case err != nil:
		log.Err(err).Str("func", "*queueEntryRepository.FindEntryBySession").Msg("error: scanning error")
		return models.QueueEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

func (r *queueEntryRepository) MaxSequence(ctx context.Context, activityID string) (int64, error) {
	query, args, err := buildMaxSequence(r.db.builder(), activityID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var maxSeq int64
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&maxSeq)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*queueEntryRepository.MaxSequence").Msg("error reading max sequence")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return maxSeq, nil
}
