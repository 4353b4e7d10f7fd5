// Package ical exports the normalized event sequence as an iCalendar file
// for phone calendar import.
package ical

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/starford/shiori/internal/trip"
)

// defaultDuration is assumed for timed events; the source carries no end
// times.
const defaultDuration = time.Hour

// Export renders events as an iCalendar document. Timed events become
// one-hour entries at local time, untimed events become all-day entries.
// Events whose day label cannot be resolved are skipped.
func Export(events []trip.Event, year int) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//shiori//trip//JA")

	for _, e := range events {
		day, ok := trip.DayDate(e.Day, year)
		if !ok {
			continue
		}

		ev := cal.AddEvent(fmt.Sprintf("%s@shiori", e.ID))
		if minutes, timed := trip.ParseTimeMinutes(e.Time); timed {
			start := day.Add(time.Duration(minutes) * time.Minute)
			ev.SetStartAt(start)
			ev.SetEndAt(start.Add(defaultDuration))
			ev.SetDtStampTime(start)
		} else {
			ev.SetAllDayStartAt(day)
			ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
			ev.SetDtStampTime(day)
		}

		ev.SetSummary(summary(e))
		if e.Notes != "" {
			ev.SetDescription(e.Notes)
		}
		if e.Area != "" {
			ev.SetLocation(e.Area)
		}
		if e.MapURL != "" {
			ev.SetURL(e.MapURL)
		}
	}

	return cal.Serialize(), nil
}

// summary renders the display title: "Prefix: Main" when the title carries
// a prefix, the bare title otherwise.
func summary(e trip.Event) string {
	prefix, main := trip.SplitTitle(e.Title)
	if prefix == "" {
		return main
	}
	return fmt.Sprintf("%s: %s", prefix, main)
}

// WriteFile exports events to path, creating intermediate directories.
func WriteFile(path string, events []trip.Event, year int) error {
	body, err := Export(events, year)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ical: mkdir: %w", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("ical: write %s: %w", path, err)
	}
	return nil
}
