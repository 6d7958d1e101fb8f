package filter

import (
	"testing"
	"time"

	"github.com/xolan/homework/internal/day"
	"github.com/xolan/homework/internal/task"
)

var now = time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

func makeTask(d day.Day, title, desc string) task.Task {
	return task.Task{Day: d, Title: title, Description: desc, Date: task.DateOf(now)}
}

func testTasks() []task.Task {
	return []task.Task{
		makeTask(day.Monday, "Read chapter 3", "Pages 10-20"),
		makeTask(day.Saturday, "Math worksheet", "Fractions"),
		makeTask(day.Monday, "Spelling", "Words from CHAPTER 4"),
		makeTask(day.Misc, "Bring scissors", ""),
	}
}

func titles(tasks []task.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		filter   *Filter
		expected bool
	}{
		{"no criteria", NewFilter("", nil), true},
		{"blank keyword", NewFilter("   ", nil), true},
		{"keyword", NewFilter("math", nil), false},
		{"days", NewFilter("", []day.Day{day.Monday}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.IsEmpty(); got != tt.expected {
				t.Errorf("IsEmpty() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestFilterTasks(t *testing.T) {
	tests := []struct {
		name     string
		filter   *Filter
		expected []string
	}{
		{
			name:     "empty filter returns all",
			filter:   NewFilter("", nil),
			expected: []string{"Read chapter 3", "Math worksheet", "Spelling", "Bring scissors"},
		},
		{
			name:     "keyword in title or description, any case",
			filter:   NewFilter("Chapter", nil),
			expected: []string{"Read chapter 3", "Spelling"},
		},
		{
			name:     "day only",
			filter:   NewFilter("", []day.Day{day.Monday}),
			expected: []string{"Read chapter 3", "Spelling"},
		},
		{
			name:     "several days",
			filter:   NewFilter("", []day.Day{day.Saturday, day.Misc}),
			expected: []string{"Math worksheet", "Bring scissors"},
		},
		{
			name:     "day and keyword",
			filter:   NewFilter("pages", []day.Day{day.Monday}),
			expected: []string{"Read chapter 3"},
		},
		{
			name:     "no match",
			filter:   NewFilter("history", nil),
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(FilterTasks(testTasks(), tt.filter))
			if !equalStringSlices(got, tt.expected) {
				t.Errorf("FilterTasks() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMatchesKeyword_TrimsSpace(t *testing.T) {
	f := NewFilter("  scissors ", nil)
	if !f.MatchesKeyword(makeTask(day.Misc, "Bring scissors", "")) {
		t.Error("Expected keyword with surrounding spaces to match")
	}
}
