// Package cli provides the console presentation layer for the homework tool.
// It handles prompt styling and text formatting of tasks.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/xolan/homework/internal/day"
	"github.com/xolan/homework/internal/task"
)

// DayChoices returns the display labels joined for a prompt.
// Example: "Saturday/Sunday/.../Misc"
func DayChoices() string {
	return strings.Join(day.Labels(), "/")
}

// GroupByDay buckets tasks by day, keeping file order inside each bucket.
// Tasks with a day outside the enumeration go to Misc.
func GroupByDay(tasks []task.Task) [day.Count][]task.Task {
	var grouped [day.Count][]task.Task
	for _, t := range tasks {
		d := t.Day
		if !d.Valid() {
			d = day.Misc
		}
		grouped[d] = append(grouped[d], t)
	}
	return grouped
}

// FormatDayHeading formats a day heading as "Label (key)".
func FormatDayHeading(d day.Day) string {
	return fmt.Sprintf("%s (%s)", d.Label(), d.Key())
}

// FormatTask formats a task for list output: the title with its date on the
// first line and the description indented below it.
func FormatTask(index int, t task.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s  %s", index, t.Title, t.Date.String())
	if t.Description != "" {
		for _, line := range strings.Split(t.Description, "\n") {
			b.WriteString("\n      ")
			b.WriteString(line)
		}
	}
	return b.String()
}

// FormatAge describes how long ago d was relative to now, in whole
// calendar days: "today", "yesterday", "N days ago", then months (30 days)
// and years (365 days). Dates after now and unset dates give "".
func FormatAge(d task.Date, now time.Time) string {
	if d.IsZero() {
		return ""
	}
	today := task.DateOf(now)
	from := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	to := time.Date(today.Year, today.Month, today.Day, 0, 0, 0, 0, time.UTC)
	days := int(to.Sub(from).Hours() / 24)

	switch {
	case days < 0:
		return ""
	case days == 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days >= 365:
		return fmt.Sprintf("%d %s ago", days/365, Pluralize("year", days/365))
	case days >= 30:
		return fmt.Sprintf("%d %s ago", days/30, Pluralize("month", days/30))
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

// Truncate shortens s to at most max runes, marking the cut with "...".
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
