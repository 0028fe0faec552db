// Package server runs the HTTP API and the catalog watcher as one unit.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultShutdownTimeout   = 30 * time.Second
	defaultReadHeaderTimeout = 10 * time.Second
)

// Config for the server runner.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	// WatchPaths are the catalog files to watch; empty disables reloads.
	WatchPaths []string
}

// Watcher reloads the catalog when its files change. It blocks until ctx
// is done.
type Watcher interface {
	Watch(ctx context.Context, paths ...string) error
}

// Runner manages the HTTP server and catalog watcher lifecycle.
type Runner struct {
	config  Config
	handler http.Handler
	watcher Watcher
	logger  *slog.Logger
}

// NewRunner creates a new runner. watcher may be nil.
func NewRunner(cfg Config, handler http.Handler, watcher Watcher, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	return &Runner{
		config:  cfg,
		handler: handler,
		watcher: watcher,
		logger:  logger,
	}
}

// Run listens on the configured address and serves until ctx is canceled
// or a component fails.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", r.config.Addr, err)
	}
	return r.Serve(ctx, ln)
}

// Serve is Run on an existing listener. It takes ownership of ln.
func (r *Runner) Serve(ctx context.Context, ln net.Listener) error {
	// Streams in flight get the shutdown grace period, then their
	// request contexts are canceled.
	baseCtx, cancelStreams := context.WithCancel(context.Background())
	defer cancelStreams()

	srv := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	// Use errgroup to manage component lifecycle
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("http server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		r.logger.Info("shutting down http server", "timeout", r.config.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			r.logger.Warn("graceful shutdown timed out, closing streams", "error", err)
			cancelStreams()
			_ = srv.Close()
		}
		return nil
	})

	if r.watcher != nil && len(r.config.WatchPaths) > 0 {
		g.Go(func() error {
			if err := r.watcher.Watch(ctx, r.config.WatchPaths...); err != nil {
				return fmt.Errorf("catalog watcher: %w", err)
			}
			return nil
		})
	}

	err := g.Wait()
	r.logger.Info("server stopped")
	return err
}
