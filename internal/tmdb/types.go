// Package tmdb provides a client for The Movie Database API.
package tmdb

import "strconv"

// MediaType selects the TMDB collection to query.
type MediaType string

const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
)

// Valid reports whether t is a collection TMDB serves.
func (t MediaType) Valid() bool {
	return t == MediaMovie || t == MediaTV
}

const imageBaseURL = "https://image.tmdb.org/t/p/w500"

// SearchResult is one hit from /search/{type}. Movies carry Title and
// ReleaseDate, shows carry Name and FirstAirDate.
type SearchResult struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date,omitempty"`   // "2024-03-01"
	FirstAirDate string  `json:"first_air_date,omitempty"` // shows only
	PosterPath   string  `json:"poster_path"`              // "/abc123.jpg"
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids,omitempty"`
}

// DisplayTitle returns the title of a movie or the name of a show.
func (r *SearchResult) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// Year extracts the year from the release or first air date.
func (r *SearchResult) Year() int {
	if r.ReleaseDate != "" {
		return yearOf(r.ReleaseDate)
	}
	return yearOf(r.FirstAirDate)
}

type searchResponse struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalResults int            `json:"total_results"`
}

// Details is the full record for one movie or show, with videos and
// images appended.
type Details struct {
	ID             int64   `json:"id"`
	IMDBID         string  `json:"imdb_id,omitempty"` // e.g., "tt0133093"
	Title          string  `json:"title,omitempty"`
	Name           string  `json:"name,omitempty"`
	Overview       string  `json:"overview"`
	ReleaseDate    string  `json:"release_date,omitempty"`
	FirstAirDate   string  `json:"first_air_date,omitempty"`
	PosterPath     string  `json:"poster_path"`
	BackdropPath   string  `json:"backdrop_path"`
	VoteAverage    float64 `json:"vote_average"`
	VoteCount      int     `json:"vote_count"`
	Runtime        int     `json:"runtime,omitempty"` // minutes
	EpisodeRunTime []int   `json:"episode_run_time,omitempty"`
	Genres         []Genre `json:"genres"`
	Videos         struct {
		Results []Video `json:"results"`
	} `json:"videos"`
}

// Genre represents a TMDB genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Video is an attached clip, usually hosted on YouTube.
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"` // Trailer, Teaser, Clip...
}

// DisplayTitle returns the title of a movie or the name of a show.
func (d *Details) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Name
}

// Year extracts the year from the release or first air date.
func (d *Details) Year() int {
	if d.ReleaseDate != "" {
		return yearOf(d.ReleaseDate)
	}
	return yearOf(d.FirstAirDate)
}

// PosterURL returns the full w500 poster URL for a poster path.
func PosterURL(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	return imageBaseURL + posterPath
}

// TrailerURL returns the first YouTube trailer, or "" when there is none.
func TrailerURL(d *Details) string {
	for _, v := range d.Videos.Results {
		if v.Site == "YouTube" && v.Type == "Trailer" && v.Key != "" {
			return "https://www.youtube.com/watch?v=" + v.Key
		}
	}
	return ""
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
