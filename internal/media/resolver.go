package media

import "github.com/vmunix/macflix/internal/catalog"

// Intent is what the client wants to do with the media.
type Intent int

const (
	Stream Intent = iota
	Download
)

func (i Intent) String() string {
	if i == Download {
		return "download"
	}
	return "stream"
}

// Lookup finds a record by id. *catalog.Catalog satisfies it.
type Lookup interface {
	Get(id string) (*catalog.Record, bool)
}

// EpisodeRef addresses one episode of a series.
type EpisodeRef struct {
	Season  int
	Episode int
}

// Request asks for the media of a whole item, or of one episode when
// Episode is set.
type Request struct {
	ID      string
	Intent  Intent
	Episode *EpisodeRef
}

// Resolved is a concrete, classified locator ready for delivery.
type Resolved struct {
	ContentID string
	Kind      catalog.Kind
	Intent    Intent
	Episode   *EpisodeRef
	Locator   string
	Locality  Locality

	// HeadOnly is set by callers answering HEAD. Remote streams are then
	// described from the probe without opening the origin body.
	HeadOnly bool
}

// Resolve turns a request into a locator. It returns a *NotFoundError for
// every miss and never touches the network or the filesystem.
func Resolve(src Lookup, req Request) (*Resolved, error) {
	rec, ok := src.Get(req.ID)
	if !ok {
		return nil, &NotFoundError{Reason: ReasonContentNotFound, ID: req.ID}
	}

	var locator string
	if req.Episode == nil {
		locator = rec.VideoURL
		if req.Intent == Download && rec.DownloadURL != "" {
			locator = rec.DownloadURL
		}
	} else {
		if rec.Kind != catalog.KindSeries {
			return nil, &NotFoundError{Reason: ReasonContentNotFound, ID: req.ID}
		}
		season, ok := rec.Season(req.Episode.Season)
		if !ok {
			return nil, &NotFoundError{Reason: ReasonSeasonNotFound, ID: req.ID, Season: req.Episode.Season}
		}
		ep, ok := season.Episode(req.Episode.Episode)
		if !ok {
			return nil, &NotFoundError{
				Reason:  ReasonEpisodeNotFound,
				ID:      req.ID,
				Season:  req.Episode.Season,
				Episode: req.Episode.Episode,
			}
		}
		locator = ep.VideoURL
		if locator == "" {
			locator = rec.VideoURL
		}
	}

	if locator == "" {
		return nil, &NotFoundError{Reason: ReasonLocatorNotFound, ID: req.ID}
	}

	return &Resolved{
		ContentID: rec.ID,
		Kind:      rec.Kind,
		Intent:    req.Intent,
		Episode:   req.Episode,
		Locator:   locator,
		Locality:  Classify(locator),
	}, nil
}
