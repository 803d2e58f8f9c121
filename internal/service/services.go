package service

import (
	"errors"

	"github.com/MKhiriev/go-waitroom/internal/config"
	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/internal/metrics"
	"github.com/MKhiriev/go-waitroom/internal/store"
	"github.com/MKhiriev/go-waitroom/models"
)

var errNoStorages = errors.New("services need activity and queue entry repositories")

type Services struct {
	QueueService   QueueService
	ReleaseService ReleaseService
	AdminService   AdminService
	AppInfoService AppInfoService
}

// NewServices wires the simulator services over storages. The queue,
// release and admin services share one sequencer. m may be nil.
func NewServices(storages *store.Storages, cfg config.Workers, buildInfo models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	if storages == nil || storages.ActivityRepository == nil || storages.QueueEntryRepository == nil {
		return nil, errNoStorages
	}

	seq := newSequencer(storages.QueueEntryRepository.MaxSequence)
	queue := NewQueueService(storages.ActivityRepository, storages.QueueEntryRepository, seq, m, logger)
	admin := NewAdminService(storages.ActivityRepository, seq, logger)

	return &Services{
		QueueService:   NewQueueValidationService().Wrap(queue),
		ReleaseService: NewReleaseService(storages.ActivityRepository, seq, m, cfg.ReleaseInterval, logger),
		AdminService:   NewAdminValidationService().Wrap(admin),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}, nil
}
