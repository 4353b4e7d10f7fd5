// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/shiori/internal/api"
	"github.com/starford/shiori/internal/apperr"
	"github.com/starford/shiori/internal/sse"
	"github.com/starford/shiori/internal/store"
	"github.com/starford/shiori/internal/web"
)

// Run starts the itinerary server with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("data_path", cfg.Trip.DataPath),
		slog.Int("year", cfg.Trip.Year),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Ensure the data directory exists so the artifact watcher has
	// something to attach to even before the first convert run.
	if err := os.MkdirAll(filepath.Dir(cfg.Trip.DataPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// Load the trip snapshot. A missing artifact is not fatal: the server
	// starts empty and picks the data up once convert has run.
	st := store.New(cfg.Trip.DataPath)
	if err := st.Load(); err != nil {
		if !errors.Is(err, apperr.ErrNoData) {
			return fmt.Errorf("load trip data: %w", err)
		}
		logger.Warn("trip artifact not found, serving empty itinerary",
			slog.String("path", cfg.Trip.DataPath))
	} else {
		logger.Info("trip data loaded", slog.Int("events", len(st.Events())))
	}

	// SSE broker.
	broker := sse.NewBroker()
	defer broker.Close()

	// Build API service and page handler.
	svc := api.NewService(st, cfg.Trip.Year)
	apiRouter := api.NewRouter(svc, broker)
	page := web.NewHandler(svc, cfg.Trip.Title)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints.
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Rendered itinerary page.
	r.Get("/", page.ServeHTTP)

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the artifact so a convert run refreshes connected pages.
	g.Go(func() error {
		if err := store.Watch(gCtx, st, logger, func(path string) {
			broker.PublishReload(path)
		}); err != nil {
			logger.Warn("artifact watcher unavailable", slog.String("error", err.Error()))
		}
		return nil
	})

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
