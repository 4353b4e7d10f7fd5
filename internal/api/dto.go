package api

import "github.com/starford/shiori/internal/trip"

// TripResponse is the full event sequence plus derived facets.
type TripResponse struct {
	Events     []trip.Event `json:"events"`
	Days       []string     `json:"days"`
	Categories []string     `json:"categories"`
	Areas      []string     `json:"areas"`
	Range      string       `json:"range"`
}

// ViewResponse is the filtered view for one filter state.
type ViewResponse struct {
	Day        string          `json:"day"`
	Categories []string        `json:"categories"`
	Area       string          `json:"area"`
	MapOnly    bool            `json:"mapOnly"`
	Events     []trip.Event    `json:"events"`
	AreaLinks  []AreaLinkGroup `json:"areaLinks"`
}

// AreaLinkGroup is one area's map-linked events in the secondary view.
type AreaLinkGroup struct {
	Area   string       `json:"area"`
	Events []trip.Event `json:"events"`
}
