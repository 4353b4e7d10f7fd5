// Package view derives facets, filtered lists, and area groupings from the
// normalized event sequence. Every function here is a pure derivation over
// (events, state); nothing mutates the sequence itself.
package view

import (
	"sort"

	"github.com/starford/shiori/internal/trip"
)

// AreaAll is the sentinel area value meaning "no area filter".
const AreaAll = "all"

// State is the current filter selection. The zero value of Area means
// AreaAll; an empty Categories slice means "no category filter".
type State struct {
	Day        string
	Categories []string
	Area       string
	MapOnly    bool
}

// NewState returns the initial filter state for the given events: the
// chronologically earliest day active, no other filters.
func NewState(events []trip.Event, year int) State {
	s := State{Area: AreaAll}
	if days := Days(events, year); len(days) > 0 {
		s.Day = days[0]
	}
	return s
}

// HasCategory reports whether category is in the inclusion set.
func (s State) HasCategory(category string) bool {
	for _, c := range s.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ToggleCategory returns a copy of the state with the category's membership
// in the inclusion set flipped.
func (s State) ToggleCategory(category string) State {
	out := make([]string, 0, len(s.Categories)+1)
	found := false
	for _, c := range s.Categories {
		if c == category {
			found = true
			continue
		}
		out = append(out, c)
	}
	if !found {
		out = append(out, category)
	}
	s.Categories = out
	return s
}

// Days returns the distinct day values sorted chronologically. Unparseable
// days sort as if dated at the reference epoch.
func Days(events []trip.Event, year int) []string {
	out := distinct(events, func(e trip.Event) string { return e.Day })
	sort.SliceStable(out, func(a, b int) bool {
		return trip.DayKey(out[a], year) < trip.DayKey(out[b], year)
	})
	return out
}

// Categories returns the distinct non-empty categories, sorted lexically.
func Categories(events []trip.Event) []string {
	out := distinct(events, func(e trip.Event) string { return e.Category })
	sort.Strings(out)
	return out
}

// Areas returns the distinct non-empty areas, sorted lexically.
func Areas(events []trip.Event) []string {
	out := distinct(events, func(e trip.Event) string { return e.Area })
	sort.Strings(out)
	return out
}

// RangeLabel renders the "M/D - M/D" span of all days present.
func RangeLabel(events []trip.Event, year int) string {
	return trip.FormatRange(Days(events, year), year)
}

func distinct(events []trip.Event, key func(trip.Event) string) []string {
	seen := make(map[string]struct{}, len(events))
	var out []string
	for _, e := range events {
		k := key(e)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// Filter applies the predicate chain: active day, category inclusion set,
// area, map-only. All predicates are independent conjunctions; events with
// no category are excluded once any category filter is active.
func Filter(events []trip.Event, s State) []trip.Event {
	out := make([]trip.Event, 0, len(events))
	for _, e := range events {
		if e.Day != s.Day {
			continue
		}
		if len(s.Categories) > 0 && !s.HasCategory(e.Category) {
			continue
		}
		if s.Area != "" && s.Area != AreaAll && e.Area != s.Area {
			continue
		}
		if s.MapOnly && e.MapURL == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

// AreaGroup is one area's map-linked events, in filtered order.
type AreaGroup struct {
	Area   string
	Events []trip.Event
}

// GroupByArea groups events that carry both an area and a map link by area,
// preserving first-seen area order. Events lacking either field are left
// out of the grouping entirely.
func GroupByArea(events []trip.Event) []AreaGroup {
	index := make(map[string]int)
	var groups []AreaGroup
	for _, e := range events {
		if e.Area == "" || e.MapURL == "" {
			continue
		}
		i, ok := index[e.Area]
		if !ok {
			i = len(groups)
			index[e.Area] = i
			groups = append(groups, AreaGroup{Area: e.Area})
		}
		groups[i].Events = append(groups[i].Events, e)
	}
	return groups
}
