package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/starford/shiori/internal/api"
	"github.com/starford/shiori/internal/testutil"
	"github.com/starford/shiori/internal/trip"
)

const year = 2026

func renderPage(t *testing.T, events []trip.Event, url string) string {
	t.Helper()
	st := testutil.TestStore(t, events)
	h := NewHandler(api.NewService(st, year), "OKINAWA GOLF TRIP 2026")

	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s = %d", url, w.Code)
	}
	return w.Body.String()
}

func sampleEvents() []trip.Event {
	return []trip.Event{
		{ID: "1", Day: "3/1", Time: "09:00", Category: "Golf", Title: "Golf_Round 1", Area: "Onna_Village", MapURL: "http://maps/x", SortKey: 540},
		{ID: "2", Day: "3/1", Title: "Free evening", Notes: "Walk on the beach", SortKey: 9999},
		{ID: "3", Day: "3/2", Category: "Food", Title: "Dinner", Area: "Naha", SortKey: 840},
	}
}

func TestPage_RendersHeaderAndRange(t *testing.T) {
	body := renderPage(t, sampleEvents(), "/")
	if !strings.Contains(body, "OKINAWA GOLF TRIP 2026") {
		t.Error("missing title")
	}
	if !strings.Contains(body, "3/1 - 3/2") {
		t.Error("missing range label")
	}
}

func TestPage_DayChipsAndActiveDay(t *testing.T) {
	body := renderPage(t, sampleEvents(), "/")
	if !strings.Contains(body, `class="chip active"`) {
		t.Error("no active day chip")
	}
	// Earliest day is active by default, so its events render.
	if !strings.Contains(body, "Round 1") {
		t.Error("missing first day's event")
	}
	if strings.Contains(body, ">Dinner<") {
		t.Error("second day's event should not render on the first day")
	}
}

func TestPage_SplitTitleAndAllDay(t *testing.T) {
	body := renderPage(t, sampleEvents(), "/")
	if !strings.Contains(body, `<span class="prefix">Golf</span>Round 1`) {
		t.Errorf("title prefix not split:\n%s", body)
	}
	if !strings.Contains(body, "All day") {
		t.Error("untimed event should show All day")
	}
}

func TestPage_AreaUnderscoresDisplayAsSpaces(t *testing.T) {
	body := renderPage(t, sampleEvents(), "/")
	if !strings.Contains(body, "Onna Village") {
		t.Error("area label should replace underscores with spaces")
	}
}

func TestPage_MapOnlyFilter(t *testing.T) {
	body := renderPage(t, sampleEvents(), "/?day=3%2F1&map_only=1")
	if !strings.Contains(body, "Round 1") {
		t.Error("mapped event should remain")
	}
	if strings.Contains(body, "Free evening") {
		t.Error("unmapped event should be filtered out")
	}
}

func TestPage_AreaGroupSection(t *testing.T) {
	body := renderPage(t, sampleEvents(), "/")
	if !strings.Contains(body, `href="http://maps/x"`) {
		t.Error("missing area map link")
	}

	// Day 3/2 has an area but no map link, so the section shows the
	// empty-state message.
	body = renderPage(t, sampleEvents(), "/?day=3%2F2")
	if !strings.Contains(body, "この日の地図リンクはまだありません。") {
		t.Error("missing empty map-links message")
	}
}

func TestPage_CategoryToggleLinks(t *testing.T) {
	body := renderPage(t, sampleEvents(), "/?day=3%2F1&category=Golf")
	if !strings.Contains(body, `class="cat active"`) {
		t.Error("selected category chip should be active")
	}
	// The active chip links back to a state without the category.
	if !strings.Contains(body, `href="/?day=3%2F1"`) {
		t.Errorf("toggle link should drop the category:\n%s", body)
	}
}

func TestPage_EmptyData(t *testing.T) {
	body := renderPage(t, nil, "/")
	if !strings.Contains(body, "この日の地図リンクはまだありません。") {
		t.Error("empty data should render the empty map-links message")
	}
	if strings.Contains(body, `<a class="chip`) {
		t.Error("no day chips expected for empty data")
	}
}

func TestPage_EscapesEventContent(t *testing.T) {
	events := []trip.Event{
		{ID: "1", Day: "3/1", Title: "<script>alert(1)</script>", SortKey: 1},
	}
	body := renderPage(t, events, "/")
	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Error("event content must be HTML-escaped")
	}
}
