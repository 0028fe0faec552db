package catalog

import (
	"fmt"

	"github.com/vmunix/macflix/pkg/title"
)

// Catalog is an immutable snapshot of all content and categories. It is
// safe for concurrent readers; a reload builds a new Catalog.
type Catalog struct {
	records    []*Record
	byID       map[string]*Record
	categories []Category
	byName     map[string]*Category
	titles     []string // record titles, parallel to records
	version    string
}

// New builds a catalog, taking ownership of records and categories.
// It rejects duplicate ids and movies that carry seasons.
func New(records []Record, categories []Category) (*Catalog, error) {
	c := &Catalog{
		records:    make([]*Record, 0, len(records)),
		byID:       make(map[string]*Record, len(records)),
		categories: categories,
		byName:     make(map[string]*Category, len(categories)),
		titles:     make([]string, 0, len(records)),
	}

	for i := range records {
		r := &records[i]
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, r.ID)
		}
		if r.Kind == KindMovie && len(r.Seasons) > 0 {
			return nil, fmt.Errorf("%w: %q", ErrMovieSeasons, r.ID)
		}
		c.records = append(c.records, r)
		c.byID[r.ID] = r
		c.titles = append(c.titles, r.Title)
	}

	for i := range c.categories {
		cat := &c.categories[i]
		if _, ok := c.byName[cat.Name]; !ok {
			c.byName[cat.Name] = cat
		}
	}

	return c, nil
}

// Empty returns a catalog with no content.
func Empty() *Catalog {
	c, _ := New(nil, nil)
	return c
}

// Version fingerprints the documents the catalog was parsed from. It is
// empty for catalogs built directly with New.
func (c *Catalog) Version() string { return c.version }

// Len returns the number of records.
func (c *Catalog) Len() int { return len(c.records) }

// All returns every record in catalog order.
func (c *Catalog) All() []*Record {
	out := make([]*Record, len(c.records))
	copy(out, c.records)
	return out
}

// Get looks up a record by id.
func (c *Catalog) Get(id string) (*Record, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// Categories returns the category definitions in config order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category looks up a category by exact name.
// Returns ErrCategoryNotFound if it is not defined.
func (c *Catalog) Category(name string) (*Category, error) {
	cat, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, name)
	}
	return cat, nil
}

// SearchHit is a record matched by title search.
type SearchHit struct {
	Record *Record
	Score  float64
}

// Search fuzzy-matches query against record titles, best match first.
// limit <= 0 returns every hit.
func (c *Catalog) Search(query string, limit int) []SearchHit {
	ranked := title.Rank(query, c.titles)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	hits := make([]SearchHit, len(ranked))
	for i, h := range ranked {
		hits[i] = SearchHit{Record: c.records[h.Index], Score: h.Score}
	}
	return hits
}
