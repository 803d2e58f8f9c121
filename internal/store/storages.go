package store

import "github.com/MKhiriev/go-waitroom/internal/logger"

type Storages struct {
	ActivityRepository   ActivityRepository
	QueueEntryRepository QueueEntryRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		ActivityRepository:   NewActivityRepository(db, log),
		QueueEntryRepository: NewQueueEntryRepository(db, log),
	}
}
