package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-waitroom/internal/queue"
	"github.com/MKhiriev/go-waitroom/models"
)

const uiDivider = "──────────────────────────────────────────────"

func (m widgetModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Activity:     %s\n", valueOrDash(m.activityID))
	fmt.Fprintf(&b, "Status:       %s\n", m.renderState())
	fmt.Fprintf(&b, "Position:     %s\n", formatOptional(m.position()))
	fmt.Fprintf(&b, "Queue length: %s\n", formatOptional(m.queueLength()))
	fmt.Fprintf(&b, "Wait:         %s\n", m.renderETA())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %3.0f%%\n", m.progress.ViewAs(m.progressFraction()), m.progressFraction()*100)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Session:      %s\n", m.sessionID())

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.status))
		b.WriteString("\n")
	}

	return appStyle.Render(renderPage("WAITING ROOM", b.String(), m.hotKeys()) + "\n" + renderBuildInfo(m.buildInfo))
}

func (m widgetModel) renderState() string {
	label := stateLabel(m.state)
	style, ok := stateStyles[m.state.String()]
	if !ok {
		return label
	}
	if m.state == queue.StateQueuing {
		return m.spinner.View() + " " + style.Render(label)
	}
	return "● " + style.Render(label)
}

func (m widgetModel) renderETA() string {
	if m.state == queue.StateReady {
		return "0m 0s"
	}
	if m.session == nil {
		return "-"
	}
	wait, ok := m.session.ETA.EstimatedWait()
	if !ok {
		return "-"
	}
	return formatETA(int64(wait.Seconds()))
}

func (m widgetModel) hotKeys() string {
	enterLabel := "e: enter"
	if m.state == queue.StateError || m.state == queue.StateReady {
		enterLabel = "e: retry"
	}
	return enterLabel + "  r: refresh  c: copy session id"
}

func (m widgetModel) position() *int64 {
	if m.session == nil {
		return nil
	}
	return m.session.Position
}

func (m widgetModel) queueLength() *int64 {
	if m.session == nil {
		return nil
	}
	return m.session.QueueLength
}

func (m widgetModel) sessionID() string {
	if m.session == nil {
		return "-"
	}
	return valueOrDash(m.session.SessionID)
}

// progressFraction is the share of the first observed position already
// behind the session.
func (m widgetModel) progressFraction() float64 {
	if m.state == queue.StateReady || (m.session != nil && m.session.CanEnter) {
		return 1
	}
	if m.firstPosition == nil || m.session == nil || m.session.Position == nil {
		return 0
	}
	first := *m.firstPosition
	if first <= 0 {
		return 1
	}
	done := float64(first-*m.session.Position) / float64(first)
	return min(max(done, 0), 1)
}

func stateLabel(s queue.State) string {
	switch s {
	case queue.StateIdle:
		return "Not in queue"
	case queue.StateQueuing:
		return "Waiting in queue"
	case queue.StateReady:
		return "You can enter now!"
	case queue.StateError:
		return "Something went wrong"
	default:
		return s.String()
	}
}

// formatETA renders seconds as "Xm Ys".
func formatETA(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}

func formatOptional(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimRight(data, "\n"))
	b.WriteString("\n\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("q / ctrl+c: quit"))

	return b.String()
}

func renderBuildInfo(info models.AppBuildInfo) string {
	return helpStyle.Render(info.String())
}
