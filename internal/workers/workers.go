package workers

import (
	"context"

	"github.com/MKhiriev/go-waitroom/internal/config"
	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the simulator's worker set.
func NewWorkers(services *service.Services, cfg config.Workers, log *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		NewReleaseWorker(services.ReleaseService, cfg.ReleaseInterval, log),
	}}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
