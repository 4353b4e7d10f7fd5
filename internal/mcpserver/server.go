// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the itinerary to LLM clients via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/shiori/internal/store"
	"github.com/starford/shiori/internal/view"
)

// Server wraps the MCP server with itinerary tools.
type Server struct {
	mcp   *server.MCPServer
	store *store.Store
	title string
	year  int
}

// New creates a new MCP server with all itinerary tools registered.
func New(st *store.Store, title string, year int) *Server {
	s := &Server{store: st, title: title, year: year}

	s.mcp = server.NewMCPServer(
		"Shiori",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("trip_summary",
		mcp.WithDescription("Trip title, date range, and per-day event counts."),
	), s.tripSummary)

	s.mcp.AddTool(mcp.NewTool("list_days",
		mcp.WithDescription("List the distinct trip days in chronological order."),
	), s.listDays)

	s.mcp.AddTool(mcp.NewTool("list_events",
		mcp.WithDescription("List the events for one day, optionally filtered by "+
			"category, area, or presence of a map link. Defaults to the first day."),
		mcp.WithString("day", mcp.Description("Day label in M/D form (e.g. 3/1)")),
		mcp.WithString("category", mcp.Description("Only events with this category")),
		mcp.WithString("area", mcp.Description("Only events in this area")),
		mcp.WithBoolean("map_only", mcp.Description("Only events carrying a map link")),
	), s.listEvents)

	s.mcp.AddTool(mcp.NewTool("area_map_links",
		mcp.WithDescription("Map links for one day grouped by area. Defaults to the first day."),
		mcp.WithString("day", mcp.Description("Day label in M/D form (e.g. 3/1)")),
	), s.areaMapLinks)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) tripSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	events := s.store.Events()
	days := view.Days(events, s.year)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.title)
	if r := view.RangeLabel(events, s.year); r != "" {
		fmt.Fprintf(&b, "%s\n", r)
	}
	fmt.Fprintf(&b, "%d events across %d days\n", len(events), len(days))
	for _, day := range days {
		n := len(view.Filter(events, view.State{Day: day, Area: view.AreaAll}))
		fmt.Fprintf(&b, "  %s: %d events\n", day, n)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) listDays(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days := view.Days(s.store.Events(), s.year)
	if len(days) == 0 {
		return mcp.NewToolResultText("no trip data"), nil
	}
	return mcp.NewToolResultText(strings.Join(days, "\n")), nil
}

func (s *Server) listEvents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	events := s.store.Events()
	state := view.NewState(events, s.year)
	if day := req.GetString("day", ""); day != "" {
		state.Day = day
	}
	if category := req.GetString("category", ""); category != "" {
		state.Categories = []string{category}
	}
	if area := req.GetString("area", ""); area != "" {
		state.Area = area
	}
	state.MapOnly = req.GetBool("map_only", false)

	filtered := view.Filter(events, state)
	out, err := json.MarshalIndent(filtered, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) areaMapLinks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	events := s.store.Events()
	state := view.NewState(events, s.year)
	if day := req.GetString("day", ""); day != "" {
		state.Day = day
	}

	groups := view.GroupByArea(view.Filter(events, state))
	if len(groups) == 0 {
		return mcp.NewToolResultText("no map links for this day"), nil
	}

	var b strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&b, "%s\n", strings.ReplaceAll(g.Area, "_", " "))
		for _, e := range g.Events {
			fmt.Fprintf(&b, "  %s: %s\n", e.Title, e.MapURL)
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}
