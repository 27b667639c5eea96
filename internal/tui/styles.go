package tui

import (
	"github.com/charmbracelet/lipgloss"

	"persondesk/internal/records/state"
)

var (
	colorPrimary = lipgloss.Color("#101F38")
	colorAccent  = lipgloss.Color("#8BC34A")
	colorMuted   = lipgloss.Color("#8a94a6")
	colorBorder  = lipgloss.Color("#2a3850")
	colorError   = lipgloss.Color("#e53935")
	colorWarning = lipgloss.Color("#FFC107")
	colorInfo    = lipgloss.Color("#2196F3")
)

// Styles holds every lipgloss style the screen renders with.
type Styles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Panel     lipgloss.Style
	Focused   lipgloss.Style
	Label     lipgloss.Style
	Cursor    lipgloss.Style
	Muted     lipgloss.Style
	Pending   lipgloss.Style
	Status    lipgloss.Style
	Prompt    lipgloss.Style

	toasts map[state.MessageKind]lipgloss.Style
}

func DefaultStyles() Styles {
	toast := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Tab:       lipgloss.NewStyle().Padding(0, 2).Foreground(colorMuted),
		ActiveTab: lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(colorPrimary),
		Panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1),
		Label:     lipgloss.NewStyle().Width(14).Foreground(colorMuted),
		Cursor:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Muted:     lipgloss.NewStyle().Foreground(colorMuted),
		Pending:   lipgloss.NewStyle().Foreground(colorWarning),
		Status:    lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(colorError),
		toasts: map[state.MessageKind]lipgloss.Style{
			state.MessageSuccess: toast.Foreground(lipgloss.Color("#ffffff")).Background(colorAccent),
			state.MessageWarning: toast.Foreground(colorPrimary).Background(colorWarning),
			state.MessageError:   toast.Foreground(lipgloss.Color("#ffffff")).Background(colorError),
			state.MessageInfo:    toast.Foreground(lipgloss.Color("#ffffff")).Background(colorInfo),
		},
	}
}

// Toast returns the style for a toast of the given kind.
func (s Styles) Toast(kind state.MessageKind) lipgloss.Style {
	if st, ok := s.toasts[kind]; ok {
		return st
	}
	return s.toasts[state.MessageInfo]
}
