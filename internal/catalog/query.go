package catalog

// ByYear returns the records released in year y, in catalog order.
// The result is empty, never nil, when nothing matches.
func (c *Catalog) ByYear(y int) []*Record {
	return c.filter(func(r *Record) bool { return r.Year == y })
}

// ByKind returns the records of the given kind, in catalog order.
func (c *Catalog) ByKind(k Kind) []*Record {
	return c.filter(func(r *Record) bool { return r.Kind == k })
}

// ByCategory returns the records matching any filter of the named category.
// A known category with no matches yields an empty slice; an unknown name
// yields ErrCategoryNotFound.
func (c *Catalog) ByCategory(name string) ([]*Record, error) {
	cat, err := c.Category(name)
	if err != nil {
		return nil, err
	}
	return c.filter(cat.Matches), nil
}

func (c *Catalog) filter(keep func(*Record) bool) []*Record {
	out := make([]*Record, 0)
	for _, r := range c.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
