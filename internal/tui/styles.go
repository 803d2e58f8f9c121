package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	stateStyles = map[string]lipgloss.Style{
		"idle":    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		"queuing": lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"ready":   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
)
