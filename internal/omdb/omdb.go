// Package omdb provides a client for the Open Movie Database API.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/vmunix/macflix/internal/metrics"
)

const defaultBaseURL = "https://www.omdbapi.com/"

// ErrNotFound is returned when OMDB has no title for an IMDb id.
var ErrNotFound = errors.New("title not found")

// SearchResult is one hit from a title search.
type SearchResult struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"` // "1999" or "2011–2019" for series
	IMDBID string `json:"imdbID"`
	Type   string `json:"Type"` // movie, series, episode
	Poster string `json:"Poster"`
}

// Details is the full OMDB record for one title.
type Details struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Poster     string `json:"Poster"`
	IMDBRating string `json:"imdbRating"`
	IMDBID     string `json:"imdbID"`
	Type       string `json:"Type"`
}

// envelope carries OMDB's in-band status. A failed lookup still answers
// 200 with Response "False".
type envelope struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// Client is an OMDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new OMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search finds titles matching title. No match is an empty result, not an
// error.
func (c *Client) Search(ctx context.Context, title string) (results []SearchResult, err error) {
	defer func() { metrics.ObserveMetadata("omdb", err) }()

	var resp struct {
		envelope
		Search []SearchResult `json:"Search"`
	}
	if err := c.get(ctx, url.Values{"s": {title}}, &resp); err != nil {
		return nil, err
	}
	if resp.Response == "False" || resp.Search == nil {
		return []SearchResult{}, nil
	}
	return resp.Search, nil
}

// Details fetches the full record for an IMDb id.
func (c *Client) Details(ctx context.Context, imdbID string) (details *Details, err error) {
	defer func() { metrics.ObserveMetadata("omdb", err) }()

	var resp struct {
		envelope
		Details
	}
	if err := c.get(ctx, url.Values{"i": {imdbID}, "plot": {"full"}}, &resp); err != nil {
		return nil, err
	}
	if resp.Response == "False" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, resp.Error)
	}
	return &resp.Details, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var env envelope
		if json.NewDecoder(resp.Body).Decode(&env) == nil && env.Error != "" {
			return fmt.Errorf("OMDB API error: %s: %s", resp.Status, env.Error)
		}
		return fmt.Errorf("OMDB API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
