package store

import (
	"context"

	"github.com/MKhiriev/go-waitroom/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type ActivityRepository interface {
	GetActivity(ctx context.Context, activityID string) (models.Activity, error)
	ListActiveActivities(ctx context.Context) ([]models.Activity, error)
	ListActivities(ctx context.Context) ([]models.Activity, error)
	CreateActivity(ctx context.Context, activity models.Activity) error
	// UpdateActivity overwrites every mutable column of the activity with
	// the same id.
	UpdateActivity(ctx context.Context, activity models.Activity) error
}

type QueueEntryRepository interface {
	SaveEntry(ctx context.Context, entry models.QueueEntry) error
	FindEntryBySession(ctx context.Context, activityID, sessionID string) (models.QueueEntry, error)
	// MaxSequence returns the highest sequence number issued for the
	// activity, or 0 when its queue is empty.
	MaxSequence(ctx context.Context, activityID string) (int64, error)
}
