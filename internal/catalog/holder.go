package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vmunix/macflix/internal/metrics"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 500 * time.Millisecond

// Loader builds a complete replacement catalog.
type Loader func() (*Catalog, error)

// FileLoader returns a Loader reading the given content and categories files.
func FileLoader(contentPath, categoriesPath string) Loader {
	return func() (*Catalog, error) {
		return LoadFiles(contentPath, categoriesPath)
	}
}

// Holder publishes the live catalog. Readers take a snapshot with Current
// and keep using it for the whole request; a reload swaps the pointer and
// never touches a published Catalog.
type Holder struct {
	current  atomic.Pointer[Catalog]
	load     Loader
	logger   *slog.Logger
	debounce time.Duration
}

// NewHolder creates a holder serving initial. load may be nil when the
// catalog is never reloaded.
func NewHolder(initial *Catalog, load Loader, logger *slog.Logger) *Holder {
	if initial == nil {
		initial = Empty()
	}
	if logger == nil {
		logger = slog.Default()
	}
	h := &Holder{load: load, logger: logger, debounce: DefaultDebounce}
	h.current.Store(initial)
	metrics.CatalogRecords.Set(float64(initial.Len()))
	return h
}

// Current returns the catalog snapshot to serve from.
func (h *Holder) Current() *Catalog {
	return h.current.Load()
}

// Reload builds a new catalog and swaps it in. On failure the previous
// catalog keeps serving.
func (h *Holder) Reload() error {
	if h.load == nil {
		return fmt.Errorf("reload: no loader configured")
	}
	next, err := h.load()
	metrics.ObserveCatalogReload(lenOf(next), err)
	if err != nil {
		h.logger.Error("catalog reload failed, keeping previous catalog", "error", err)
		return fmt.Errorf("reload: %w", err)
	}

	prev := h.current.Swap(next)
	h.logger.Info("catalog reloaded", "records", next.Len(), "previous", prev.Len())
	return nil
}

func lenOf(c *Catalog) int {
	if c == nil {
		return 0
	}
	return c.Len()
}

// Watch reloads the catalog whenever one of paths changes. It watches the
// parent directories so editors that replace files by rename are seen.
// Watch blocks until ctx is canceled.
func (h *Holder) Watch(ctx context.Context, paths ...string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	files := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", p, err)
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	h.logger.Info("watching catalog files", "paths", paths)

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("catalog watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !files[name] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			h.logger.Debug("catalog file changed", "path", name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(h.debounce)
			} else {
				timer.Reset(h.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			_ = h.Reload() // logged; old catalog stays live

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			h.logger.Error("catalog watcher error", "error", err)
		}
	}
}
