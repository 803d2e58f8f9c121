package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-waitroom/models"
)

// QueueService admits sessions into activity queues and reports their
// progress.
type QueueService interface {
	// Enter issues a sequence number for the user, or returns the one
	// issued earlier for the same user and activity.
	Enter(ctx context.Context, req models.EnterRequest) (models.Session, error)
	// Status reports position, eligibility and ETA of an issued session.
	Status(ctx context.Context, req models.StatusRequest) (models.QueueStatus, error)
}

// ReleaseService moves the front of every active queue forward.
type ReleaseService interface {
	// ReleaseAll admits the next batch of each active activity and returns
	// how many sessions became eligible in total.
	ReleaseAll(ctx context.Context) (int64, error)
}

// AdminService manages activities on behalf of operators.
type AdminService interface {
	CreateActivity(ctx context.Context, req models.CreateActivityRequest) (models.Activity, error)
	ListActivities(ctx context.Context) ([]models.Activity, error)
	// ActivityStatus reports the activity with its live sequencer counters.
	ActivityStatus(ctx context.Context, activityID string) (models.ActivityStatusReport, error)
	// UpdateActivity changes the fields present in req. Release rate and
	// status changes take effect on the next release tick.
	UpdateActivity(ctx context.Context, activityID string, req models.UpdateActivityRequest) (models.Activity, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Uptime(ctx context.Context) time.Duration
}

// QueueServiceWrapper defines middleware composition for QueueService.
// Implementations wrap an existing QueueService to add behavior such as
// logging or validating.
type QueueServiceWrapper interface {
	Wrap(QueueService) QueueService
}

type AdminServiceWrapper interface {
	Wrap(AdminService) AdminService
}
