// Package task defines the homework task record and its calendar date.
package task

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/xolan/homework/internal/day"
)

// DateLayout is the on-disk layout of Task.Date.
const DateLayout = "2006-01-02"

// Task represents a single homework item
type Task struct {
	Day         day.Day `json:"day"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        Date    `json:"date"`
}

// New assembles a task. Description lines are joined with "\n" in order and
// the date is the calendar date of now.
func New(d day.Day, title string, lines []string, now time.Time) Task {
	return Task{
		Day:         d,
		Title:       title,
		Description: JoinDescription(lines),
		Date:        DateOf(now),
	}
}

// JoinDescription joins description lines. No lines gives an empty string.
func JoinDescription(lines []string) string {
	return strings.Join(lines, "\n")
}

// Date is a calendar date without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in DateLayout.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String formats the date in DateLayout.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON writes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON reads a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
