// Package day defines the fixed set of days a homework task can be filed under.
//
// Each day has two names: the stored key, which is what gets persisted in
// data.json and what the web board groups by, and the English label that is
// shown on the console and typed by the user.
package day

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Day is one entry of the day enumeration.
type Day int

const (
	Saturday Day = iota
	Sunday
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Misc
)

// Count is the number of known days.
const Count = int(Misc) + 1

// ErrUnknownDay is returned when input matches no known day.
var ErrUnknownDay = errors.New("unknown day")

var keys = [Count]string{
	"شنبه",
	"یکشنبه",
	"دوشنبه",
	"سه‌شنبه",
	"چهارشنبه",
	"پنج‌شنبه",
	"جمعه",
	"متفرقه",
}

var labels = [Count]string{
	"Saturday",
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Misc",
}

// All returns every day in display order (Saturday first, Misc last).
func All() []Day {
	days := make([]Day, Count)
	for i := range days {
		days[i] = Day(i)
	}
	return days
}

// Labels returns the display labels in display order.
func Labels() []string {
	out := make([]string, Count)
	copy(out, labels[:])
	return out
}

// Keys returns the stored keys in display order.
func Keys() []string {
	out := make([]string, Count)
	copy(out, keys[:])
	return out
}

// Valid reports whether d is one of the known days.
func (d Day) Valid() bool {
	return d >= Saturday && d <= Misc
}

// Key returns the stored form of the day.
func (d Day) Key() string {
	if !d.Valid() {
		return ""
	}
	return keys[d]
}

// Label returns the English display label of the day.
func (d Day) Label() string {
	if !d.Valid() {
		return ""
	}
	return labels[d]
}

// String implements fmt.Stringer using the display label.
func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return labels[d]
}

// Parse matches user input against the display labels, ignoring case.
// The input is compared as typed; surrounding spaces do not match.
func Parse(input string) (Day, error) {
	s := strings.ToLower(input)
	for i, label := range labels {
		if s == strings.ToLower(label) {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDay, input)
}

// FromKey looks up a day by its stored key. The match is exact.
func FromKey(key string) (Day, error) {
	for i, k := range keys {
		if k == key {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDay, key)
}

// MarshalJSON writes the stored key.
func (d Day) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, int(d))
	}
	return json.Marshal(keys[d])
}

// UnmarshalJSON reads a stored key. Display labels are accepted too so that
// hand-edited files still load.
func (d *Day) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if v, err := FromKey(s); err == nil {
		*d = v
		return nil
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
