package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/shiori/internal"
	"github.com/starford/shiori/internal/apperr"
	"github.com/starford/shiori/internal/ical"
	"github.com/starford/shiori/internal/ingest"
	"github.com/starford/shiori/internal/mcpserver"
	"github.com/starford/shiori/internal/store"
	pkgconfig "github.com/starford/shiori/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadIfExists(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func runConvert(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	n, err := ingest.Run(cfg.Trip.SourcePath, cfg.Trip.DataPath, cfg.Trip.Year)
	if err != nil {
		return err
	}

	fmt.Printf("Generated %d events -> %s\n", n, cfg.Trip.DataPath)
	return nil
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func runICal(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := store.New(cfg.Trip.DataPath)
	if err := st.Load(); err != nil {
		if errors.Is(err, apperr.ErrNoData) {
			return fmt.Errorf("no trip artifact at %s, run convert first", cfg.Trip.DataPath)
		}
		return err
	}

	if err := ical.WriteFile(cfg.Trip.ICalPath, st.Events(), cfg.Trip.Year); err != nil {
		return err
	}

	fmt.Printf("Exported %d events -> %s\n", len(st.Events()), cfg.Trip.ICalPath)
	return nil
}

func runMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Stdout carries the MCP transport, so logs go to stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	st := store.New(cfg.Trip.DataPath)
	if err := st.Load(); err != nil {
		if !errors.Is(err, apperr.ErrNoData) {
			return err
		}
		logger.Warn("trip artifact not found, serving empty itinerary",
			slog.String("path", cfg.Trip.DataPath))
	}

	return mcpserver.New(st, cfg.Trip.Title, cfg.Trip.Year).ServeStdio()
}

func main() {
	cmd := &cli.Command{
		Name:  "shiori",
		Usage: "Travel itinerary: CSV ingest, filterable schedule page, calendar export",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "convert",
				Usage:  "Convert the source CSV into the normalized trip artifact",
				Action: runConvert,
			},
			{
				Name:   "serve",
				Usage:  "Serve the filterable itinerary page and JSON API",
				Action: runServe,
			},
			{
				Name:   "ical",
				Usage:  "Export the trip artifact as an iCalendar file",
				Action: runICal,
			},
			{
				Name:   "mcp",
				Usage:  "Expose the itinerary over MCP on stdio",
				Action: runMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
