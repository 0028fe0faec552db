// internal/api/v1/types.go
package v1

import (
	"strconv"

	"github.com/vmunix/macflix/internal/catalog"
)

// contentResponse is the API representation of a movie or series.
type contentResponse struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	Title       string           `json:"title"`
	Year        int              `json:"year"`
	Genres      []string         `json:"genres"`
	Description string           `json:"description"`
	Rating      *float64         `json:"rating,omitempty"`
	PosterURL   string           `json:"poster_url,omitempty"`
	TrailerURL  string           `json:"trailer_url,omitempty"`
	Cast        []string         `json:"cast,omitempty"`
	Director    string           `json:"director,omitempty"`
	Duration    *int             `json:"duration,omitempty"`
	Language    string           `json:"language,omitempty"`
	VideoURL    string           `json:"video_url"`
	DownloadURL string           `json:"download_url,omitempty"`
	Seasons     []seasonResponse `json:"seasons,omitempty"`
}

type seasonResponse struct {
	SeasonNumber int               `json:"season_number"`
	Episodes     []episodeResponse `json:"episodes"`
}

type episodeResponse struct {
	EpisodeNumber int    `json:"episode_number"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	PosterURL     string `json:"poster_url,omitempty"`
	VideoURL      string `json:"video_url,omitempty"`
}

// categoryResponse mirrors the categories config. Filter values keep their
// config type: string genres, integer years, float ratings.
type categoryResponse struct {
	Name    string           `json:"name"`
	Filters []filterResponse `json:"filters"`
}

type filterResponse struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// listCategoriesResponse is the response for GET /categories.
type listCategoriesResponse struct {
	Categories []categoryResponse `json:"categories"`
}

// searchHitResponse is one local title search hit.
type searchHitResponse struct {
	Score float64 `json:"score"`
	contentResponse
}

type searchResponse struct {
	Query   string              `json:"query"`
	Results []searchHitResponse `json:"results"`
}

func contentToResponse(r *catalog.Record) contentResponse {
	resp := contentResponse{
		ID:          r.ID,
		Type:        string(r.Kind),
		Title:       r.Title,
		Year:        r.Year,
		Genres:      r.Genres,
		Description: r.Description,
		Rating:      r.Rating,
		PosterURL:   r.PosterURL,
		TrailerURL:  r.TrailerURL,
		Cast:        r.Cast,
		Director:    r.Director,
		Duration:    r.Duration,
		Language:    r.Language,
		VideoURL:    r.VideoURL,
		DownloadURL: r.DownloadURL,
	}
	if resp.Genres == nil {
		resp.Genres = []string{}
	}
	for _, s := range r.Seasons {
		sr := seasonResponse{SeasonNumber: s.Number, Episodes: make([]episodeResponse, len(s.Episodes))}
		for i, ep := range s.Episodes {
			sr.Episodes[i] = episodeResponse{
				EpisodeNumber: ep.Number,
				Title:         ep.Title,
				Description:   ep.Description,
				PosterURL:     ep.PosterURL,
				VideoURL:      ep.VideoURL,
			}
		}
		resp.Seasons = append(resp.Seasons, sr)
	}
	return resp
}

func contentListResponse(records []*catalog.Record) []contentResponse {
	out := make([]contentResponse, len(records))
	for i, r := range records {
		out[i] = contentToResponse(r)
	}
	return out
}

func categoryToResponse(c *catalog.Category) categoryResponse {
	resp := categoryResponse{Name: c.Name, Filters: make([]filterResponse, len(c.Filters))}
	for i, f := range c.Filters {
		resp.Filters[i] = filterResponse{Name: f.Name, Type: string(f.Type), Value: filterValue(f)}
	}
	return resp
}

func filterValue(f catalog.Filter) any {
	switch f.Type {
	case catalog.FilterYear:
		if y, err := strconv.Atoi(f.Value); err == nil {
			return y
		}
	case catalog.FilterRating:
		if v, err := strconv.ParseFloat(f.Value, 64); err == nil {
			return v
		}
	}
	return f.Value
}
