// Package trip defines the domain types for the itinerary.
package trip

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UntimedOffset is the minute offset assigned to events without a parseable
// time so they sort after every timed event on the same day.
const UntimedOffset = 9999

// Event is one normalized itinerary entry.
type Event struct {
	ID       string `json:"id"`
	Day      string `json:"day"`
	Time     string `json:"time,omitempty"`
	Category string `json:"category,omitempty"`
	Title    string `json:"title"`
	Notes    string `json:"notes,omitempty"`
	Area     string `json:"area,omitempty"`
	MapURL   string `json:"mapUrl,omitempty"`
	SortKey  int64  `json:"sortKey"`
}

// Data is the persisted artifact shape: the ordered event sequence.
type Data struct {
	Events []Event `json:"events"`
}

// SplitTitle splits a title of the form "Prefix_Main" into its display
// parts. The prefix is empty when the title carries no separator.
func SplitTitle(title string) (prefix, main string) {
	if i := strings.Index(title, "_"); i >= 0 {
		return title[:i], title[i+1:]
	}
	return "", title
}

// DayDate resolves a "M/D" day label against the reference year to a local
// midnight time. ok is false when the label is not parseable.
func DayDate(day string, year int) (time.Time, bool) {
	parts := strings.SplitN(day, "/", 2)
	if len(parts) != 2 {
		return time.Time{}, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || m <= 0 {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || d <= 0 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(m), d, 0, 0, 0, 0, time.Local), true
}

// DayKey returns the epoch-millisecond value of the day's local midnight,
// or 0 when the day label is not parseable.
func DayKey(day string, year int) int64 {
	t, ok := DayDate(day, year)
	if !ok {
		return 0
	}
	return t.UnixMilli()
}

// ParseTimeMinutes parses a "HH:MM" label into minutes since midnight.
// An empty string, a bare hyphen, or a malformed component all report
// ok false ("all day").
func ParseTimeMinutes(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0, false
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

// FormatRange renders the chronological span of the given day labels as
// "M/D - M/D". Unparseable labels are skipped; the result is empty when
// nothing parses.
func FormatRange(days []string, year int) string {
	var first, last time.Time
	for _, day := range days {
		t, ok := DayDate(day, year)
		if !ok {
			continue
		}
		if first.IsZero() || t.Before(first) {
			first = t
		}
		if last.IsZero() || t.After(last) {
			last = t
		}
	}
	if first.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d/%d - %d/%d", int(first.Month()), first.Day(), int(last.Month()), last.Day())
}
