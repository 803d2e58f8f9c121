package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		dialect:            DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var activityRowColumns = []string{"id", "name", "status", "release_rate", "poll_interval_ms", "start_at", "end_at", "created_at"}

// ── activities ──

func TestGetActivity_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db, logger.Nop())

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	start := created.Add(time.Hour)
	mock.ExpectQuery(`SELECT id, name, status, release_rate, poll_interval_ms, start_at, end_at, created_at FROM activities WHERE id = \$1`).
		WithArgs("demo").
		WillReturnRows(sqlmock.NewRows(activityRowColumns).
			AddRow("demo", "Demo", "active", int64(5), int64(5000), start, nil, created))

	activity, err := repo.GetActivity(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, models.Activity{
		ID:             "demo",
		Name:           "Demo",
		Status:         models.ActivityActive,
		ReleaseRate:    5,
		PollIntervalMs: 5000,
		StartAt:        start,
		CreatedAt:      created,
	}, activity)
	assert.True(t, activity.EndAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActivity_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db, logger.Nop())

	mock.ExpectQuery("FROM activities").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(activityRowColumns))

	_, err := repo.GetActivity(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestGetActivity_DriverError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db, logger.Nop())

	mock.ExpectQuery("FROM activities").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.GetActivity(context.Background(), "demo")
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActivity_RetriesTransientError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db, logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery("FROM activities").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("FROM activities").
		WillReturnRows(sqlmock.NewRows(activityRowColumns).
			AddRow("demo", "Demo", "active", int64(1), int64(1000), nil, nil, now))

	activity, err := repo.GetActivity(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", activity.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveActivities(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db, logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery(`FROM activities WHERE status = \$1 ORDER BY id`).
		WithArgs("active").
		WillReturnRows(sqlmock.NewRows(activityRowColumns).
			AddRow("a", "A", "active", int64(1), int64(1000), nil, nil, now).
			AddRow("b", "B", "active", int64(2), int64(2000), nil, nil, now))

	activities, err := repo.ListActiveActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "a", activities[0].ID)
	assert.Equal(t, int64(2), activities[1].ReleaseRate)
}

func TestListActiveActivities_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db, logger.Nop())

	mock.ExpectQuery("FROM activities").WillReturnError(errors.New("boom"))

	_, err := repo.ListActiveActivities(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListActiveActivities_ScanError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db, logger.Nop())

	mock.ExpectQuery("FROM activities").
		WillReturnRows(sqlmock.NewRows(activityRowColumns).
			AddRow("a", "A", "active", "not-a-number", int64(1000), nil, nil, time.Now()))

	_, err := repo.ListActiveActivities(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestListActivities_IncludesEveryStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db, logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, name, status, release_rate, poll_interval_ms, start_at, end_at, created_at FROM activities ORDER BY id`).
		WithoutArgs().
		WillReturnRows(sqlmock.NewRows(activityRowColumns).
			AddRow("concert", "Concert", "draft", int64(10), int64(2000), nil, nil, now).
			AddRow("demo", "Demo", "active", int64(1), int64(5000), nil, nil, now))

	activities, err := repo.ListActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, models.ActivityDraft, activities[0].Status)
	assert.Equal(t, models.ActivityActive, activities[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateActivity_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db, logger.Nop())

	created := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	end := created.Add(2 * time.Hour)
	activity := models.Activity{
		ID:             "concert",
		Name:           "Concert",
		Status:         models.ActivityDraft,
		ReleaseRate:    10,
		PollIntervalMs: 2000,
		EndAt:          end,
		CreatedAt:      created,
	}
	mock.ExpectExec(`INSERT INTO activities \(id,name,status,release_rate,poll_interval_ms,start_at,end_at,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8\)`).
		WithArgs("concert", "Concert", "draft", int64(10), int64(2000), nil, end, created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateActivity(context.Background(), activity))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateActivity_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"postgres duplicate id", pgError(pgerrcode.UniqueViolation), ErrActivityAlreadyExists},
		{"sqlite duplicate id", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, ErrActivityAlreadyExists},
		{"other error", errors.New("read-only database"), ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewActivityRepository(db, logger.Nop())

			mock.ExpectExec("INSERT INTO activities").WillReturnError(tt.err)

			err := repo.CreateActivity(context.Background(), models.Activity{ID: "demo", Name: "Demo"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateActivity_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db, logger.Nop())

	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	activity := models.Activity{
		ID:             "demo",
		Name:           "Demo",
		Status:         models.ActivityPaused,
		ReleaseRate:    3,
		PollIntervalMs: 4000,
		StartAt:        start,
	}
	mock.ExpectExec(`UPDATE activities SET end_at = \$1, name = \$2, poll_interval_ms = \$3, release_rate = \$4, start_at = \$5, status = \$6 WHERE id = \$7`).
		WithArgs(nil, "Demo", int64(4000), int64(3), start, "paused", "demo").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateActivity(context.Background(), activity))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateActivity_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db, logger.Nop())

	mock.ExpectExec("UPDATE activities").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateActivity(context.Background(), models.Activity{ID: "missing", Status: models.ActivityActive})
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestUpdateActivity_DriverError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db, logger.Nop())

	mock.ExpectExec("UPDATE activities").WillReturnError(errors.New("boom"))

	err := repo.UpdateActivity(context.Background(), models.Activity{ID: "demo"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── queue entries ──

func TestSaveEntry_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueueEntryRepository(db, logger.Nop())

	entry := models.QueueEntry{
		ActivityID:       "demo",
		SessionID:        "abc",
		UserIdentifier:   "user_1",
		DeviceIdentifier: "device_1",
		SequenceNumber:   7,
		CreatedAt:        time.Now().UTC(),
	}
	mock.ExpectExec(`INSERT INTO queue_entries \(activity_id,session_id,user_identifier,device_identifier,sequence_number,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\)`).
		WithArgs(entry.ActivityID, entry.SessionID, entry.UserIdentifier, entry.DeviceIdentifier, entry.SequenceNumber, entry.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveEntry(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveEntry_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"postgres unique violation", pgError(pgerrcode.UniqueViolation), ErrEntryAlreadyExists},
		{"sqlite unique violation", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, ErrEntryAlreadyExists},
		{"sqlite primary key violation", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, ErrEntryAlreadyExists},
		{"other error", errors.New("disk full"), ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewQueueEntryRepository(db, logger.Nop())

			mock.ExpectExec("INSERT INTO queue_entries").WillReturnError(tt.err)

			err := repo.SaveEntry(context.Background(), models.QueueEntry{ActivityID: "demo", SessionID: "abc"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFindEntryBySession(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueueEntryRepository(db, logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery(`FROM queue_entries WHERE activity_id = \$1 AND session_id = \$2`).
		WithArgs("demo", "abc").
		WillReturnRows(sqlmock.NewRows(queueEntryColumns).
			AddRow("demo", "abc", "user_1", "device_1", int64(3), now))

	entry, err := repo.FindEntryBySession(context.Background(), "demo", "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(3), entry.SequenceNumber)
	assert.Equal(t, "user_1", entry.UserIdentifier)
}

func TestFindEntryBySession_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueueEntryRepository(db, logger.Nop())

	mock.ExpectQuery("FROM queue_entries").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindEntryBySession(context.Background(), "demo", "nope")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestMaxSequence(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueueEntryRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT COALESCE\(MAX\(sequence_number\), 0\) FROM queue_entries WHERE activity_id = \$1`).
		WithArgs("demo").
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(int64(42)))

	got, err := repo.MaxSequence(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)
}

func TestMaxSequence_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueueEntryRepository(db, logger.Nop())

	mock.ExpectQuery("FROM queue_entries").WillReturnError(errors.New("boom"))

	_, err := repo.MaxSequence(context.Background(), "demo")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
