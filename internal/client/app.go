package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-waitroom/internal/adapter"
	"github.com/MKhiriev/go-waitroom/internal/config"
	"github.com/MKhiriev/go-waitroom/internal/identity"
	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/internal/queue"
	"github.com/MKhiriev/go-waitroom/internal/tui"
	"github.com/MKhiriev/go-waitroom/models"
)

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	ui     UI
	logger *logger.Logger
}

// NewApp wires identity, transport, queue client and TUI from cfg.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	id, err := newIdentity(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("create identity: %w", err)
	}

	transport, err := adapter.NewHTTPTransport(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	queueClient, err := queue.New(transport, id, queue.Config{
		ActivityID:          cfg.App.ActivityID,
		MaxRetries:          cfg.Queue.MaxRetries,
		RetryBaseDelay:      cfg.Queue.RetryBaseDelay,
		DefaultPollInterval: cfg.Queue.DefaultPollInterval,
	}, queue.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("create queue client: %w", err)
	}

	ui, err := tui.New(queueClient, cfg.App.ActivityID, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	log.Info().
		Str("activity_id", cfg.App.ActivityID).
		Str("server", cfg.Adapter.HTTPAddress).
		Msg("client app created")

	return &App{ui: ui, logger: log}, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// newIdentity uses the configured identifiers when both are set and falls
// back to the host-derived identity otherwise.
func newIdentity(cfg config.ClientApp) (identity.Provider, error) {
	if cfg.UserIdentifier != "" && cfg.DeviceIdentifier != "" {
		return identity.NewStatic(cfg.UserIdentifier, cfg.DeviceIdentifier)
	}
	return identity.NewHost(), nil
}
