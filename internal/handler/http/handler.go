package http

import (
	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/internal/metrics"
	"github.com/MKhiriev/go-waitroom/internal/service"
)

// Handler serves the queue simulator API over the services it was built
// with. Routes are assembled by [Handler.Init].
type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

// NewHandler builds the API handler. With nil metrics requests are not
// observed and /metrics answers 404.
func NewHandler(services *service.Services, m *metrics.Metrics, log *logger.Logger) *Handler {
	log = log.WithComponent("http")
	log.Debug().Msg("queue API handler created")

	return &Handler{services: services, metrics: m, logger: log}
}
