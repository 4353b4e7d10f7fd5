package api

import (
	"net/url"

	"github.com/starford/shiori/internal/store"
	"github.com/starford/shiori/internal/trip"
	"github.com/starford/shiori/internal/view"
)

// Service derives API responses from the trip snapshot. All derivations are
// pure functions of (events, state); the snapshot itself is never mutated.
type Service struct {
	store *store.Store
	year  int
}

// NewService creates a new API service.
func NewService(st *store.Store, year int) *Service {
	return &Service{store: st, year: year}
}

// Year returns the reference year day labels resolve against.
func (s *Service) Year() int {
	return s.year
}

// Events returns the full normalized event sequence.
func (s *Service) Events() []trip.Event {
	return s.store.Events()
}

// Trip returns the full event sequence with its derived facets.
func (s *Service) Trip() TripResponse {
	events := s.store.Events()
	return TripResponse{
		Events:     emptyIfNil(events),
		Days:       emptyStrings(view.Days(events, s.year)),
		Categories: emptyStrings(view.Categories(events)),
		Areas:      emptyStrings(view.Areas(events)),
		Range:      view.RangeLabel(events, s.year),
	}
}

// DefaultState returns the initial filter state for the current snapshot.
func (s *Service) DefaultState() view.State {
	return view.NewState(s.store.Events(), s.year)
}

// StateFromQuery builds a filter state from URL query parameters, falling
// back to the initial state for anything unspecified. Re-selecting the
// active day is idempotent by construction: the same query yields the same
// state.
func (s *Service) StateFromQuery(q url.Values) view.State {
	state := s.DefaultState()
	if day := q.Get("day"); day != "" {
		state.Day = day
	}
	state.Categories = q["category"]
	if area := q.Get("area"); area != "" {
		state.Area = area
	}
	switch q.Get("map_only") {
	case "1", "true", "on":
		state.MapOnly = true
	}
	return state
}

// View applies the filter predicate chain and the area grouping.
func (s *Service) View(state view.State) ViewResponse {
	filtered := view.Filter(s.store.Events(), state)
	groups := view.GroupByArea(filtered)

	links := make([]AreaLinkGroup, len(groups))
	for i, g := range groups {
		links[i] = AreaLinkGroup{Area: g.Area, Events: g.Events}
	}

	return ViewResponse{
		Day:        state.Day,
		Categories: emptyStrings(state.Categories),
		Area:       state.Area,
		MapOnly:    state.MapOnly,
		Events:     emptyIfNil(filtered),
		AreaLinks:  links,
	}
}

func emptyIfNil(events []trip.Event) []trip.Event {
	if events == nil {
		return []trip.Event{}
	}
	return events
}

func emptyStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
