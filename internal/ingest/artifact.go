package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/starford/shiori/internal/trip"
)

// WriteArtifact serializes data as indented JSON and atomically replaces
// the artifact at path: tmp file in the same directory, fsync, rename.
// Intermediate directories are created as needed.
func WriteArtifact(path string, data trip.Data) error {
	if data.Events == nil {
		data.Events = []trip.Event{}
	}
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("ingest: marshal artifact: %w", err)
	}
	payload = append(payload, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ingest: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".shiori-tmp-*")
	if err != nil {
		return fmt.Errorf("ingest: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(payload); err != nil {
		return fmt.Errorf("ingest: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("ingest: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("ingest: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("ingest: rename: %w", err)
	}
	success = true
	return nil
}
