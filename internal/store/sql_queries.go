package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-waitroom/models"
)

const (
	activitiesTable   = "activities"
	queueEntriesTable = "queue_entries"
)

var (
	activityColumns = []string{
		"id", "name", "status", "release_rate", "poll_interval_ms", "start_at", "end_at", "created_at",
	}
	queueEntryColumns = []string{
		"activity_id", "session_id", "user_identifier", "device_identifier", "sequence_number", "created_at",
	}
)

func buildGetActivity(b sq.StatementBuilderType, activityID string) (string, []any, error) {
	return b.Select(activityColumns...).
		From(activitiesTable).
		Where(sq.Eq{"id": activityID}).
		ToSql()
}

func buildListActiveActivities(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(activityColumns...).
		From(activitiesTable).
		Where(sq.Eq{"status": string(models.ActivityActive)}).
		OrderBy("id").
		ToSql()
}

func buildListActivities(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(activityColumns...).
		From(activitiesTable).
		OrderBy("id").
		ToSql()
}

func buildCreateActivity(b sq.StatementBuilderType, a models.Activity) (string, []any, error) {
	return b.Insert(activitiesTable).
		Columns(activityColumns...).
		Values(a.ID, a.Name, string(a.Status), a.ReleaseRate, a.PollIntervalMs, nullTime(a.StartAt), nullTime(a.EndAt), a.CreatedAt).
		ToSql()
}

// buildUpdateActivity leaves id and created_at untouched.
func buildUpdateActivity(b sq.StatementBuilderType, a models.Activity) (string, []any, error) {
	return b.Update(activitiesTable).
		SetMap(map[string]any{
			"name":             a.Name,
			"status":           string(a.Status),
			"release_rate":     a.ReleaseRate,
			"poll_interval_ms": a.PollIntervalMs,
			"start_at":         nullTime(a.StartAt),
			"end_at":           nullTime(a.EndAt),
		}).
		Where(sq.Eq{"id": a.ID}).
		ToSql()
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func buildSaveEntry(b sq.StatementBuilderType, entry models.QueueEntry) (string, []any, error) {
	return b.Insert(queueEntriesTable).
		Columns(queueEntryColumns...).
		Values(entry.ActivityID, entry.SessionID, entry.UserIdentifier, entry.DeviceIdentifier, entry.SequenceNumber, entry.CreatedAt).
		ToSql()
}

func buildFindEntryBySession(b sq.StatementBuilderType, activityID, sessionID string) (string, []any, error) {
	return b.Select(queueEntryColumns...).
		From(queueEntriesTable).
		Where(sq.Eq{"activity_id": activityID, "session_id": sessionID}).
		ToSql()
}

func buildMaxSequence(b sq.StatementBuilderType, activityID string) (string, []any, error) {
	return b.Select("COALESCE(MAX(sequence_number), 0)").
		From(queueEntriesTable).
		Where(sq.Eq{"activity_id": activityID}).
		ToSql()
}
