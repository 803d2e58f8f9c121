package handler

import (
	"github.com/MKhiriev/go-waitroom/internal/config"
	"github.com/MKhiriev/go-waitroom/internal/handler/http"
	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/internal/metrics"
	"github.com/MKhiriev/go-waitroom/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, m, logger)}, nil
}
