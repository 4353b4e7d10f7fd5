package store

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/shiori/internal/apperr"
)

// ReloadCallback is called after a watcher-driven snapshot change.
type ReloadCallback func(path string)

// Watch starts an fsnotify watcher on the artifact's directory and reloads
// the store whenever the artifact is rewritten, until ctx is cancelled.
// It calls cb (if non-nil) after each snapshot change.
//
// The directory is watched rather than the file itself because ingest
// replaces the artifact via rename, which would invalidate a file-level
// watch. Events are debounced so a rewrite burst triggers one reload.
func Watch(ctx context.Context, s *Store, logger *slog.Logger, cb ReloadCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dir := filepath.Dir(s.Path())
	target := filepath.Base(s.Path())
	if err := w.Add(dir); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("dir", dir), slog.String("artifact", target))

	var reloadTimer *time.Timer
	var reloadCh <-chan time.Time

	scheduleReload := func() {
		if reloadTimer == nil {
			reloadTimer = time.NewTimer(200 * time.Millisecond)
			reloadCh = reloadTimer.C
		} else {
			reloadTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-reloadCh:
			changed, err := s.Reload()
			switch {
			case errors.Is(err, apperr.ErrNoData):
				logger.Warn("watcher: artifact removed", slog.String("path", s.Path()))
			case err != nil:
				logger.Warn("watcher: reload failed", slog.String("error", err.Error()))
			case changed:
				logger.Info("watcher: snapshot reloaded", slog.String("path", s.Path()))
				if cb != nil {
					cb(s.Path())
				}
			default:
				logger.Debug("watcher: artifact unchanged")
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				scheduleReload()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
