// Package tui provides a read-only terminal board of the task file, one tab
// per day.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/homework/internal/cli"
	"github.com/xolan/homework/internal/day"
	"github.com/xolan/homework/internal/task"
	"github.com/xolan/homework/internal/tui/ui"
)

// Model is the board model
type Model struct {
	tasks  [day.Count][]task.Task
	source string
	now    func() time.Time

	active   day.Day
	cursor   int
	width    int
	height   int
	showHelp bool

	themes *ui.Themes
	styles ui.Styles
	keys   ui.KeyMap
}

// New creates a board over tasks. source is the file the tasks were read
// from, shown in the status bar. theme is a bubbletint id.
func New(tasks []task.Task, source, theme string) Model {
	themes := ui.NewThemes(theme)
	m := Model{
		tasks:  cli.GroupByDay(tasks),
		source: source,
		now:    time.Now,
		themes: themes,
		styles: themes.Styles(),
		keys:   ui.DefaultKeyMap(),
	}
	m.active = m.firstNonEmptyDay()
	return m
}

// WithClock returns a copy of the board that measures task ages from now.
func (m Model) WithClock(now func() time.Time) Model {
	if now != nil {
		m.now = now
	}
	return m
}

// ActiveDay returns the day whose tab is shown.
func (m Model) ActiveDay() day.Day {
	return m.active
}

// Cursor returns the index of the selected task within the active day.
func (m Model) Cursor() int {
	return m.cursor
}

// ThemeName returns the id of the current theme.
func (m Model) ThemeName() string {
	return m.themes.Name()
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp

		case key.Matches(msg, m.keys.NextDay):
			m.selectDay(day.Day((int(m.active) + 1) % day.Count))

		case key.Matches(msg, m.keys.PrevDay):
			m.selectDay(day.Day((int(m.active) - 1 + day.Count) % day.Count))

		case key.Matches(msg, m.keys.JumpDay):
			// JumpDay only binds "1".."8"
			m.selectDay(day.Day(msg.String()[0] - '1'))

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.tasks[m.active])-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Theme):
			m.themes.Next()
			m.styles = m.themes.Styles()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m *Model) selectDay(d day.Day) {
	m.active = d
	m.cursor = 0
}

func (m Model) firstNonEmptyDay() day.Day {
	for _, d := range day.All() {
		if len(m.tasks[d]) > 0 {
			return d
		}
	}
	return day.Saturday
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.renderHelp())
	} else {
		b.WriteString(m.renderDay())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return m.styles.App.Render(b.String())
}

func (m Model) renderTabs() string {
	var tabs []string
	for _, d := range day.All() {
		label := d.Label()
		if n := len(m.tasks[d]); n > 0 {
			label += " " + m.styles.TabCount.Render(fmt.Sprintf("%d", n))
		}
		if d == m.active {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(label))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) renderDay() string {
	var b strings.Builder
	b.WriteString(m.styles.DayTitle.Render(cli.FormatDayHeading(m.active)))
	b.WriteString("\n")

	tasks := m.tasks[m.active]
	if len(tasks) == 0 {
		b.WriteString(m.styles.Empty.Render("No tasks"))
		return b.String()
	}

	titleWidth := m.width - 20
	if titleWidth < 10 {
		titleWidth = 10
	}

	for i, t := range tasks {
		title := cli.Truncate(t.Title, titleWidth)
		if i == m.cursor {
			b.WriteString(m.styles.TaskSelected.Render("> " + title))
		} else {
			b.WriteString(m.styles.TaskTitle.Render("  " + title))
		}
		b.WriteString("  ")
		date := t.Date.String()
		if age := cli.FormatAge(t.Date, m.now()); age != "" {
			date += " (" + age + ")"
		}
		b.WriteString(m.styles.TaskDate.Render(date))
		b.WriteString("\n")

		if t.Description != "" {
			b.WriteString(m.styles.TaskDesc.Render(t.Description))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) renderHelp() string {
	var lines []string
	for _, binding := range m.keys.Bindings() {
		h := binding.Help()
		lines = append(lines, fmt.Sprintf("%s  %s",
			m.styles.StatusKey.Render(fmt.Sprintf("%-12s", h.Key)),
			m.styles.StatusHelp.Render(h.Desc)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatusBar() string {
	parts := []string{
		m.renderKeyHelp("tab", "day"),
		m.renderKeyHelp("t", m.themes.DisplayName()),
		m.renderKeyHelp("?", "help"),
		m.renderKeyHelp("q", "quit"),
	}
	if m.source != "" {
		parts = append(parts, m.styles.StatusHelp.Render(m.source))
	}

	content := strings.Join(parts, "  ")
	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}
	return m.styles.StatusBar.Render(content)
}

func (m Model) renderKeyHelp(k, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(k),
		m.styles.StatusHelp.Render(desc))
}

// Run starts the board in the alternate screen and blocks until it quits.
func Run(model Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
