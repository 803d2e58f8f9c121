package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-waitroom/internal/events"
	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/internal/queue"
	"github.com/MKhiriev/go-waitroom/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNilClient = errors.New("tui: nil queue client")

// QueueClient is the part of *queue.Client the widget drives.
type QueueClient interface {
	Enter(ctx context.Context) (models.Session, error)
	Refresh(ctx context.Context) error
	Snapshot() queue.Snapshot
	Subscribe(name events.Name, h events.Handler) events.Token
	Destroy()
}

type TUI struct {
	client     QueueClient
	activityID string
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
}

func New(client QueueClient, activityID string, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if client == nil {
		return nil, errNilClient
	}
	return &TUI{
		client:     client,
		activityID: activityID,
		buildInfo:  buildInfo,
		logger:     log.WithComponent("tui"),
	}, nil
}

// Run shows the widget until the user quits or ctx is cancelled. The queue
// client is destroyed on the way out.
func (t *TUI) Run(ctx context.Context) error {
	defer t.client.Destroy()

	model := newWidgetModel(ctx, t.client, t.activityID, t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	subscribe(t.client, program.Send)

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Error().Err(err).Msg("tui stopped with error")
		return err
	}

	t.logger.Info().Msg("tui closed")
	return nil
}

// subscribe forwards every client event to send as a tea message.
func subscribe(client QueueClient, send func(tea.Msg)) {
	client.Subscribe(queue.EventEntered, func(ev events.Event) error {
		if s, ok := ev.Payload.(models.Session); ok {
			send(enteredMsg{session: s})
		}
		return nil
	})
	client.Subscribe(queue.EventStatusUpdate, func(ev events.Event) error {
		if u, ok := ev.Payload.(queue.StatusUpdate); ok {
			send(statusMsg{update: u})
		}
		return nil
	})
	client.Subscribe(queue.EventReady, func(ev events.Event) error {
		if s, ok := ev.Payload.(models.Session); ok {
			send(readyMsg{session: s})
		}
		return nil
	})
	client.Subscribe(queue.EventError, func(ev events.Event) error {
		if err, ok := ev.Payload.(error); ok {
			send(errorMsg{err: err})
		}
		return nil
	})
	client.Subscribe(queue.EventStateChanged, func(ev events.Event) error {
		if c, ok := ev.Payload.(queue.StateChange); ok {
			send(stateMsg{change: c})
		}
		return nil
	})
}
