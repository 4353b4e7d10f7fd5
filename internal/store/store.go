// Package store loads the normalized trip artifact and holds it as an
// immutable in-memory snapshot that can be swapped on reload.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/starford/shiori/internal/apperr"
	"github.com/starford/shiori/internal/trip"
)

// Store holds the current trip snapshot. The event sequence is never
// mutated after load; readers get the shared slice and must treat it as
// read-only.
type Store struct {
	path string

	mu   sync.RWMutex
	data trip.Data
	sum  string
}

// New creates a Store for the artifact at path without loading it.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the artifact from disk and replaces the snapshot. A missing
// artifact reports apperr.ErrNoData.
func (s *Store) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("store: %s: %w", s.path, apperr.ErrNoData)
		}
		return fmt.Errorf("store: read artifact: %w", err)
	}

	var data trip.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("store: parse artifact: %w", err)
	}
	if data.Events == nil {
		data.Events = []trip.Event{}
	}

	s.mu.Lock()
	s.data = data
	s.sum = sha256sum(raw)
	s.mu.Unlock()
	return nil
}

// Reload re-reads the artifact and reports whether the snapshot actually
// changed. A byte-identical artifact is a no-op, so spurious file-watcher
// events do not fan out to clients.
func (s *Store) Reload() (bool, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, fmt.Errorf("store: %s: %w", s.path, apperr.ErrNoData)
		}
		return false, fmt.Errorf("store: read artifact: %w", err)
	}

	sum := sha256sum(raw)
	s.mu.RLock()
	unchanged := sum == s.sum
	s.mu.RUnlock()
	if unchanged {
		return false, nil
	}

	var data trip.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return false, fmt.Errorf("store: parse artifact: %w", err)
	}
	if data.Events == nil {
		data.Events = []trip.Event{}
	}

	s.mu.Lock()
	s.data = data
	s.sum = sum
	s.mu.Unlock()
	return true, nil
}

// Events returns the current event sequence.
func (s *Store) Events() []trip.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Events
}

// Path returns the artifact path this store reads from.
func (s *Store) Path() string {
	return s.path
}

func sha256sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
