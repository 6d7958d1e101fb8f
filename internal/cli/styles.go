package cli

import "github.com/charmbracelet/lipgloss"

// Styles holds the console styles used by the collector and list commands.
type Styles struct {
	Banner            lipgloss.Style
	DayPrompt         lipgloss.Style
	TitlePrompt       lipgloss.Style
	DescriptionPrompt lipgloss.Style
	Error             lipgloss.Style
	Success           lipgloss.Style
	Heading           lipgloss.Style
	Muted             lipgloss.Style
}

// DefaultStyles returns the colored console styles.
func DefaultStyles() Styles {
	cyan := lipgloss.Color("14")
	yellow := lipgloss.Color("11")
	green := lipgloss.Color("10")
	magenta := lipgloss.Color("13")
	red := lipgloss.Color("9")
	blue := lipgloss.Color("12")
	muted := lipgloss.Color("240")

	return Styles{
		Banner:            lipgloss.NewStyle().Foreground(cyan).Bold(true),
		DayPrompt:         lipgloss.NewStyle().Foreground(yellow),
		TitlePrompt:       lipgloss.NewStyle().Foreground(green),
		DescriptionPrompt: lipgloss.NewStyle().Foreground(magenta),
		Error:             lipgloss.NewStyle().Foreground(red),
		Success:           lipgloss.NewStyle().Foreground(blue),
		Heading:           lipgloss.NewStyle().Foreground(cyan).Bold(true),
		Muted:             lipgloss.NewStyle().Foreground(muted),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Banner:            plain,
		DayPrompt:         plain,
		TitlePrompt:       plain,
		DescriptionPrompt: plain,
		Error:             plain,
		Success:           plain,
		Heading:           plain,
		Muted:             plain,
	}
}

// StylesFor picks DefaultStyles or PlainStyles.
func StylesFor(color bool) Styles {
	if color {
		return DefaultStyles()
	}
	return PlainStyles()
}
