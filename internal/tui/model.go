package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-waitroom/internal/queue"
	"github.com/MKhiriev/go-waitroom/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultBarWidth = 40
	statusFlashTime = 2 * time.Second
)

// widgetModel renders the queue widget. It only mirrors what the client
// publishes; every queue decision stays in the client.
type widgetModel struct {
	ctx        context.Context
	client     QueueClient
	activityID string
	buildInfo  models.AppBuildInfo

	state         queue.State
	session       *models.Session
	firstPosition *int64
	errMsg        string
	status        string
	entering      bool

	spinner  spinner.Model
	progress progress.Model

	copyFn func(string) error
}

func newWidgetModel(ctx context.Context, client QueueClient, activityID string, buildInfo models.AppBuildInfo) widgetModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = defaultBarWidth

	m := widgetModel{
		ctx:        ctx,
		client:     client,
		activityID: activityID,
		buildInfo:  buildInfo,
		state:      queue.StateIdle,
		spinner:    s,
		progress:   bar,
		copyFn:     clipboard.WriteAll,
	}

	snap := client.Snapshot()
	m.state = snap.State
	if snap.Session != nil {
		m.setSession(*snap.Session)
	}
	return m
}

func (m widgetModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m widgetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case tea.WindowSizeMsg:
		m.progress.Width = min(max(msg.Width-12, 10), defaultBarWidth)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case enteredMsg:
		m.firstPosition = nil
		m.errMsg = ""
		m.setSession(msg.session)
		return m, nil
	case statusMsg:
		m.setSession(msg.update.Session)
		return m, nil
	case readyMsg:
		m.setSession(msg.session)
		return m, nil
	case errorMsg:
		m.errMsg = humanizeError(msg.err)
		return m, nil
	case stateMsg:
		m.state = msg.change.New
		if m.state == queue.StateQueuing {
			m.errMsg = ""
		}
		return m, nil

	case enterDoneMsg:
		m.entering = false
		if msg.err != nil && errors.Is(msg.err, queue.ErrValidation) {
			m.errMsg = msg.err.Error()
		}
		return m, nil
	case refreshDoneMsg:
		if msg.err != nil {
			m.status = "Not waiting in the queue"
			return m, cmdClearStatus()
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Copy failed: %v", msg.err)
		} else {
			m.status = "Session id copied"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

func (m widgetModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.enter):
		if m.entering || m.state == queue.StateQueuing {
			return m, nil
		}
		m.entering = true
		return m, m.cmdEnter()
	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.copy):
		if m.session == nil || m.session.SessionID == "" {
			return m, nil
		}
		return m, m.cmdCopy(m.session.SessionID)
	}
	return m, nil
}

func (m *widgetModel) setSession(s models.Session) {
	m.session = &s
	if m.firstPosition == nil && s.Position != nil {
		m.firstPosition = models.Int64(*s.Position)
	}
}

func (m widgetModel) cmdEnter() tea.Cmd {
	return func() tea.Msg {
		_, err := m.client.Enter(m.ctx)
		return enterDoneMsg{err: err}
	}
}

func (m widgetModel) cmdRefresh() tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{err: m.client.Refresh(m.ctx)}
	}
}

func (m widgetModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.copyFn
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusFlashTime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
