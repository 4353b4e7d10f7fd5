// Package web renders the itinerary page. Filter state travels in query
// parameters, so every chip and control is a plain link or GET form and the
// server recomputes the derived view on each request.
package web

import (
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/starford/shiori/internal/api"
	"github.com/starford/shiori/internal/trip"
	"github.com/starford/shiori/internal/view"
)

// Handler renders the itinerary page.
type Handler struct {
	svc   *api.Service
	title string
	tmpl  *template.Template
}

// NewHandler creates the page handler. The template is parsed once; a parse
// failure is a programming error and panics at startup.
func NewHandler(svc *api.Service, title string) *Handler {
	tmpl := template.Must(template.New("page").Funcs(funcMap).Parse(tmplPage))
	return &Handler{svc: svc, title: title, tmpl: tmpl}
}

var funcMap = template.FuncMap{
	"areaLabel": func(area string) string {
		return strings.ReplaceAll(area, "_", " ")
	},
}

// Chip is one day or category selector.
type Chip struct {
	Label  string
	URL    string
	Active bool
}

// Card is one timeline entry prepared for display.
type Card struct {
	Event       trip.Event
	TimeLabel   string
	TitlePrefix string
	TitleMain   string
}

// AreaLinks is one area's map links in the secondary section.
type AreaLinks struct {
	Area   string
	Events []trip.Event
}

// PageData is everything the page template binds to.
type PageData struct {
	Title      string
	Range      string
	DayChips   []Chip
	CatChips   []Chip
	Areas      []string
	State      view.State
	Cards      []Card
	AreaGroups []AreaLinks
	AreaAll    string
}

// ServeHTTP handles GET /.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	state := h.svc.StateFromQuery(r.URL.Query())
	data := h.buildPage(state)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		slog.Error("page render failed", slog.String("error", err.Error()))
	}
}

func (h *Handler) buildPage(state view.State) PageData {
	events := h.svc.Events()
	year := h.svc.Year()
	resp := h.svc.View(state)

	days := view.Days(events, year)
	dayChips := make([]Chip, len(days))
	for i, day := range days {
		next := state
		next.Day = day
		dayChips[i] = Chip{Label: day, URL: stateURL(next), Active: day == state.Day}
	}

	categories := view.Categories(events)
	catChips := make([]Chip, len(categories))
	for i, c := range categories {
		catChips[i] = Chip{Label: c, URL: stateURL(state.ToggleCategory(c)), Active: state.HasCategory(c)}
	}

	cards := make([]Card, len(resp.Events))
	for i, e := range resp.Events {
		prefix, main := trip.SplitTitle(e.Title)
		timeLabel := e.Time
		if timeLabel == "" {
			timeLabel = "All day"
		}
		cards[i] = Card{Event: e, TimeLabel: timeLabel, TitlePrefix: prefix, TitleMain: main}
	}

	groups := make([]AreaLinks, len(resp.AreaLinks))
	for i, g := range resp.AreaLinks {
		groups[i] = AreaLinks{Area: g.Area, Events: g.Events}
	}

	return PageData{
		Title:      h.title,
		Range:      view.RangeLabel(events, year),
		DayChips:   dayChips,
		CatChips:   catChips,
		Areas:      view.Areas(events),
		State:      state,
		Cards:      cards,
		AreaGroups: groups,
		AreaAll:    view.AreaAll,
	}
}

// stateURL encodes a filter state as a page URL. Defaults are left out so
// the initial page keeps a clean address.
func stateURL(s view.State) string {
	q := url.Values{}
	if s.Day != "" {
		q.Set("day", s.Day)
	}
	for _, c := range s.Categories {
		q.Add("category", c)
	}
	if s.Area != "" && s.Area != view.AreaAll {
		q.Set("area", s.Area)
	}
	if s.MapOnly {
		q.Set("map_only", "1")
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}
