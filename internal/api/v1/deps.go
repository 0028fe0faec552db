package v1

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vmunix/macflix/internal/catalog"
	"github.com/vmunix/macflix/internal/media"
	"github.com/vmunix/macflix/internal/omdb"
	"github.com/vmunix/macflix/internal/tmdb"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . CatalogSource,Deliverer,TMDBClient,OMDBClient

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// CatalogSource hands out the live catalog snapshot.
type CatalogSource interface {
	Current() *catalog.Catalog
}

// Deliverer opens the media behind a resolved locator.
type Deliverer interface {
	Deliver(ctx context.Context, res *media.Resolved) (media.Response, error)
	CheckLocal(locator string) error
}

// TMDBClient defines the TMDB lookups the API passes through.
type TMDBClient interface {
	Search(ctx context.Context, query string, mediaType tmdb.MediaType) ([]tmdb.SearchResult, error)
	Details(ctx context.Context, mediaType tmdb.MediaType, id int64) (*tmdb.Details, error)
}

// OMDBClient defines the OMDB lookups the API passes through.
type OMDBClient interface {
	Search(ctx context.Context, title string) ([]omdb.SearchResult, error)
	Details(ctx context.Context, imdbID string) (*omdb.Details, error)
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required dependencies
	Catalog  CatalogSource
	Delivery Deliverer

	// Optional dependencies (nil if not configured)
	TMDB   TMDBClient
	OMDB   OMDBClient
	Logger *slog.Logger
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Catalog == nil {
		return fmt.Errorf("%w: catalog source", ErrMissingDependency)
	}
	if d.Delivery == nil {
		return fmt.Errorf("%w: deliverer", ErrMissingDependency)
	}
	return nil
}
