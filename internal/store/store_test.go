package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/starford/shiori/internal/apperr"
	"github.com/starford/shiori/internal/ingest"
	"github.com/starford/shiori/internal/trip"
)

func writeArtifact(t *testing.T, path string, events []trip.Event) {
	t.Helper()
	if err := ingest.WriteArtifact(path, trip.Data{Events: events}); err != nil {
		t.Fatalf("WriteArtifact: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.json")
	writeArtifact(t, path, []trip.Event{{ID: "1", Day: "3/1", Title: "Golf"}})

	s := New(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	events := s.Events()
	if len(events) != 1 || events[0].Title != "Golf" {
		t.Errorf("events = %+v", events)
	}
}

func TestLoad_MissingArtifact(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "trip.json"))
	err := s.Load()
	if !errors.Is(err, apperr.ErrNoData) {
		t.Errorf("err = %v, want ErrNoData", err)
	}
}

func TestLoad_EmptyEventsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.json")
	writeArtifact(t, path, nil)

	s := New(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if events := s.Events(); events == nil || len(events) != 0 {
		t.Errorf("events = %#v, want empty non-nil slice", events)
	}
}

func TestReload_ChangeDetection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.json")
	writeArtifact(t, path, []trip.Event{{ID: "1", Day: "3/1", Title: "a"}})

	s := New(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Unchanged artifact is a no-op.
	changed, err := s.Reload()
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if changed {
		t.Error("identical artifact should not report a change")
	}

	writeArtifact(t, path, []trip.Event{{ID: "1", Day: "3/1", Title: "a"}, {ID: "2", Day: "3/2", Title: "b"}})
	changed, err = s.Reload()
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if !changed {
		t.Error("rewritten artifact should report a change")
	}
	if len(s.Events()) != 2 {
		t.Errorf("len(events) = %d, want 2", len(s.Events()))
	}
}

func TestWatch_ReloadsOnRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trip.json")
	writeArtifact(t, path, []trip.Event{{ID: "1", Day: "3/1", Title: "a"}})

	s := New(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reloaded := make(chan string, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = Watch(ctx, s, logger, func(p string) {
			select {
			case reloaded <- p:
			default:
			}
		})
	}()

	// Give the watcher a moment to register before rewriting.
	time.Sleep(100 * time.Millisecond)
	writeArtifact(t, path, []trip.Event{{ID: "1", Day: "3/1", Title: "a"}, {ID: "2", Day: "3/1", Title: "b"}})

	select {
	case p := <-reloaded:
		if p != path {
			t.Errorf("callback path = %q, want %q", p, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload callback")
	}

	if len(s.Events()) != 2 {
		t.Errorf("len(events) = %d, want 2", len(s.Events()))
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}
