package catalog

import (
	"strconv"

	"github.com/vmunix/macflix/pkg/title"
)

// FilterType selects which record field a Filter tests.
type FilterType string

const (
	FilterGenre  FilterType = "genre"
	FilterYear   FilterType = "year"
	FilterRating FilterType = "rating"
)

// Filter is one rule of a Category. Value holds the scalar as written in
// the config; year and rating values are numeric strings.
type Filter struct {
	Name  string
	Type  FilterType
	Value string
}

// Category is a named browse row. A record belongs to the category when any
// of its filters matches.
type Category struct {
	Name    string
	Filters []Filter
}

// Matches reports whether r satisfies the filter. Genre comparison ignores
// case and accents, year is exact and rating is a lower bound.
func (f Filter) Matches(r *Record) bool {
	switch f.Type {
	case FilterGenre:
		want := title.Fold(f.Value)
		for _, g := range r.Genres {
			if title.Fold(g) == want {
				return true
			}
		}
	case FilterYear:
		y, err := strconv.Atoi(f.Value)
		return err == nil && r.Year == y
	case FilterRating:
		floor, err := strconv.ParseFloat(f.Value, 64)
		return err == nil && r.Rating != nil && *r.Rating >= floor
	}
	return false
}

// Matches reports whether any filter of c matches r.
func (c *Category) Matches(r *Record) bool {
	for _, f := range c.Filters {
		if f.Matches(r) {
			return true
		}
	}
	return false
}
