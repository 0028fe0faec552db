package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCategoryNotFound indicates the category name is not defined.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDuplicateID indicates two records share an id.
	ErrDuplicateID = errors.New("duplicate content id")

	// ErrMovieSeasons indicates a movie record carries seasons.
	ErrMovieSeasons = errors.New("movie cannot have seasons")
)

// ValidationError aggregates problems found in catalog config files.
type ValidationError struct {
	Path     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid catalog %s:\n  - %s", e.Path, strings.Join(e.Problems, "\n  - "))
}
