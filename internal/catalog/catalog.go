// Package catalog holds the in-memory media catalog (movies, series,
// seasons, episodes) and the named categories used to browse it.
package catalog

// Kind distinguishes movies from series.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindSeries Kind = "series"
)

// Record is one movie or one series. A Record reachable from a Catalog is
// shared between requests and must not be modified.
type Record struct {
	ID          string
	Kind        Kind
	Title       string
	Description string
	Director    string
	Language    string
	Year        int
	Genres      []string
	Rating      *float64
	PosterURL   string
	TrailerURL  string
	Cast        []string
	Duration    *int // minutes; nominal episode runtime for series
	VideoURL    string
	DownloadURL string   // empty means use VideoURL
	Seasons     []Season // always empty for movies
}

// Season is one season of a series.
type Season struct {
	Number   int
	Episodes []Episode
}

// Episode is a single episode within a season.
type Episode struct {
	Number      int
	Title       string
	Description string
	PosterURL   string
	VideoURL    string // empty means use the series VideoURL
}

// Season returns the first season numbered n.
func (r *Record) Season(n int) (*Season, bool) {
	for i := range r.Seasons {
		if r.Seasons[i].Number == n {
			return &r.Seasons[i], true
		}
	}
	return nil, false
}

// Episode returns the first episode numbered n.
func (s *Season) Episode(n int) (*Episode, bool) {
	for i := range s.Episodes {
		if s.Episodes[i].Number == n {
			return &s.Episodes[i], true
		}
	}
	return nil, false
}
