// Package ingest converts the spreadsheet-exported CSV into the normalized
// trip artifact consumed by the view layer.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/starford/shiori/internal/trip"
)

// Row is one raw source row, untyped and possibly sparse.
type Row struct {
	Day      string
	Time     string
	Category string
	Content  string
	Notes    string
	Area     string
	MapURL   string
}

// Source column labels. Matching is label-sensitive; unrecognized columns
// are ignored and missing columns resolve to empty fields.
const (
	colDay      = "day"
	colTime     = "time"
	colCategory = "category"
	colContent  = "content"
	colNotes    = "notes"
	colArea     = "area"
	colMapURL   = "google maps"
)

// ReadRows parses a delimited source with a header row. It is tolerant of
// ragged column counts and unescaped quotes; individual malformed records
// are skipped rather than failing the whole read.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("ingest: read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	field := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				continue
			}
			return nil, fmt.Errorf("ingest: read record: %w", err)
		}
		rows = append(rows, Row{
			Day:      field(rec, colDay),
			Time:     field(rec, colTime),
			Category: field(rec, colCategory),
			Content:  field(rec, colContent),
			Notes:    field(rec, colNotes),
			Area:     field(rec, colArea),
			MapURL:   field(rec, colMapURL),
		})
	}
	return rows, nil
}

// Normalize turns raw rows into the ordered event sequence. Rows without an
// explicit day inherit the most recent day seen earlier in source order;
// rows that cannot be dated at all are dropped. The result is sorted
// ascending by sort key, stable on ties.
func Normalize(rows []Row, year int) []trip.Event {
	lastDay := ""
	events := make([]trip.Event, 0, len(rows))

	for i, row := range rows {
		day := strings.TrimSpace(row.Day)
		if day != "" {
			lastDay = day
		} else {
			day = lastDay
		}
		if day == "" {
			continue
		}

		timeLabel := strings.TrimSpace(row.Time)
		minutes, timed := trip.ParseTimeMinutes(timeLabel)
		if !timed {
			timeLabel = ""
			minutes = trip.UntimedOffset
		}

		events = append(events, trip.Event{
			ID:       eventID(day, timeLabel, i),
			Day:      day,
			Time:     timeLabel,
			Category: strings.TrimSpace(row.Category),
			Title:    strings.TrimSpace(row.Content),
			Notes:    strings.TrimSpace(row.Notes),
			Area:     strings.TrimSpace(row.Area),
			MapURL:   strings.TrimSpace(row.MapURL),
			SortKey:  trip.DayKey(day, year) + int64(minutes),
		})
	}

	sort.SliceStable(events, func(a, b int) bool {
		return events[a].SortKey < events[b].SortKey
	})
	return events
}

func eventID(day, timeLabel string, index int) string {
	if timeLabel == "" {
		timeLabel = "na"
	}
	return fmt.Sprintf("%s-%s-%d", day, timeLabel, index)
}

// Run reads the source CSV, normalizes it, and writes the artifact.
// It returns the number of emitted events. Only an unreadable source is
// fatal; malformed fields degrade per the normalization rules.
func Run(sourcePath, dataPath string, year int) (int, error) {
	f, err := os.Open(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("ingest: open source: %w", err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return 0, err
	}

	events := Normalize(rows, year)
	if err := WriteArtifact(dataPath, trip.Data{Events: events}); err != nil {
		return 0, err
	}
	return len(events), nil
}
