// Package testutil provides shared test helpers for building trip fixtures.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/starford/shiori/internal/ingest"
	"github.com/starford/shiori/internal/store"
	"github.com/starford/shiori/internal/trip"
)

// TestStore writes the given events as a temporary artifact and returns a
// loaded store over it.
func TestStore(t *testing.T, events []trip.Event) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trip.json")
	if err := ingest.WriteArtifact(path, trip.Data{Events: events}); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	s := store.New(path)
	if err := s.Load(); err != nil {
		t.Fatalf("load artifact: %v", err)
	}
	return s
}
