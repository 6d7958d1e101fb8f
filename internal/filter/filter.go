package filter

import (
	"strings"

	"github.com/xolan/homework/internal/day"
	"github.com/xolan/homework/internal/task"
)

// Filter represents search criteria for homework tasks.
// All filter fields are optional - empty values match all tasks.
type Filter struct {
	Keyword string    // Case-insensitive substring search in title and description
	Days    []day.Day // Task day must be one of these
}

// NewFilter creates a new Filter with the given criteria.
func NewFilter(keyword string, days []day.Day) *Filter {
	return &Filter{
		Keyword: keyword,
		Days:    days,
	}
}

// IsEmpty returns true if all filter fields are empty (matches all tasks)
func (f *Filter) IsEmpty() bool {
	return strings.TrimSpace(f.Keyword) == "" && len(f.Days) == 0
}

// FilterTasks returns the tasks that match f, in their original order.
// If the filter is empty, returns all tasks.
func FilterTasks(tasks []task.Task, f *Filter) []task.Task {
	if f.IsEmpty() {
		return tasks
	}

	filtered := make([]task.Task, 0)
	for _, t := range tasks {
		if f.Matches(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// MatchesKeyword returns true if the keyword is found in the title or the
// description (case-insensitive). An empty keyword matches all tasks.
func (f *Filter) MatchesKeyword(t task.Task) bool {
	keyword := strings.ToLower(strings.TrimSpace(f.Keyword))
	if keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), keyword) ||
		strings.Contains(strings.ToLower(t.Description), keyword)
}

// MatchesDay returns true if the task's day is one of the filter days.
// An empty day list matches all tasks.
func (f *Filter) MatchesDay(t task.Task) bool {
	if len(f.Days) == 0 {
		return true
	}
	for _, d := range f.Days {
		if t.Day == d {
			return true
		}
	}
	return false
}

// Matches returns true if the task passes every criterion
func (f *Filter) Matches(t task.Task) bool {
	return f.MatchesDay(t) && f.MatchesKeyword(t)
}
