package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used by the board
type Styles struct {
	App lipgloss.Style

	// Day tabs
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabCount    lipgloss.Style

	// Task list
	DayTitle     lipgloss.Style
	TaskTitle    lipgloss.Style
	TaskSelected lipgloss.Style
	TaskDate     lipgloss.Style
	TaskDesc     lipgloss.Style
	Empty        lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style
}

// NewStyles maps theme colors to board elements:
// purple for tabs and titles, cyan for keys and dates, bright black for
// muted text.
func NewStyles(r *tint.Registry) Styles {
	primary := r.Purple()
	secondary := r.Cyan()
	accent := r.BrightPurple()
	muted := r.BrightBlack()
	fg := r.Fg()
	bg := r.Bg()

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		TabCount: lipgloss.NewStyle().
			Foreground(accent),

		DayTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
		TaskTitle: lipgloss.NewStyle().
			Foreground(fg),
		TaskSelected: lipgloss.NewStyle().
			Foreground(fg).
			Background(muted).
			Bold(true),
		TaskDate: lipgloss.NewStyle().
			Foreground(secondary),
		TaskDesc: lipgloss.NewStyle().
			Foreground(muted).
			PaddingLeft(4),
		Empty: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),
	}
}
