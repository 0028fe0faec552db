package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lmittmann/tint"

	v1 "github.com/vmunix/macflix/internal/api/v1"
	"github.com/vmunix/macflix/internal/catalog"
	"github.com/vmunix/macflix/internal/config"
	"github.com/vmunix/macflix/internal/media"
	"github.com/vmunix/macflix/internal/omdb"
	"github.com/vmunix/macflix/internal/server"
	"github.com/vmunix/macflix/internal/tmdb"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger builds the process logger: tint for terminals, JSON for
// collectors.
func newLogger(cfg config.ServerConfig, w io.Writer) *slog.Logger {
	level := parseLogLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{Level: level}))
}

// app is the wired daemon, ready to run.
type app struct {
	holder  *catalog.Holder
	handler http.Handler
	runner  *server.Runner
}

func buildApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	// === Catalog ===
	initial, err := catalog.LoadFiles(cfg.Catalog.Content, cfg.Catalog.Categories)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	holder := catalog.NewHolder(
		initial,
		catalog.FileLoader(cfg.Catalog.Content, cfg.Catalog.Categories),
		logger.With("component", "catalog"),
	)

	// === Delivery ===
	deliverer := media.NewDeliverer(
		media.WithProbeTimeout(cfg.Delivery.ProbeTimeout),
		media.WithMediaRoot(cfg.Delivery.MediaRoot),
		media.WithLogger(logger.With("component", "media")),
	)

	deps := v1.ServerDeps{
		Catalog:  holder,
		Delivery: deliverer,
		Logger:   logger,
	}

	// === Clients (optional - nil if not configured) ===
	if t := cfg.Metadata.TMDB; t != nil {
		deps.TMDB = tmdb.NewClient(t.APIKey, tmdb.WithBaseURL(t.BaseURL), tmdb.WithCacheTTL(t.CacheTTL))
	}
	if o := cfg.Metadata.OMDB; o != nil {
		deps.OMDB = omdb.NewClient(o.APIKey, omdb.WithBaseURL(o.BaseURL))
	}

	api, err := v1.New(deps)
	if err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}
	handler := api.Handler(cfg.Server.RateLimit)

	var watch []string
	if cfg.Catalog.Watch {
		watch = []string{cfg.Catalog.Content}
		if cfg.Catalog.Categories != "" {
			watch = append(watch, cfg.Catalog.Categories)
		}
	}
	runner := server.NewRunner(server.Config{
		Addr:       cfg.Addr(),
		WatchPaths: watch,
	}, handler, holder, logger.With("component", "server"))

	return &app{holder: holder, handler: handler, runner: runner}, nil
}

func runServer(configPath string) error {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := newLogger(cfg.Server, os.Stderr)
	slog.SetDefault(logger)

	a, err := buildApp(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("server starting",
		"addr", cfg.Addr(),
		"config", configPath,
		"records", a.holder.Current().Len(),
		"watch", cfg.Catalog.Watch,
		"tmdb", cfg.Metadata.TMDB != nil,
		"omdb", cfg.Metadata.OMDB != nil,
		"rate_limit", cfg.Server.RateLimit,
		"log_level", cfg.Server.LogLevel,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go reloadOnHangup(ctx, a.holder, logger)

	return a.runner.Run(ctx)
}

// reloadOnHangup rebuilds the catalog on SIGHUP.
func reloadOnHangup(ctx context.Context, holder *catalog.Holder, logger *slog.Logger) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			logger.Info("received SIGHUP, reloading catalog")
			_ = holder.Reload() // failure is logged by the holder
		}
	}
}

// checkConfig validates config and catalog without serving.
func checkConfig(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cat, err := catalog.LoadFiles(cfg.Catalog.Content, cfg.Catalog.Categories)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	fmt.Printf("%s: ok (%d records, %d categories)\n", configPath, cat.Len(), len(cat.Categories()))
	return nil
}
