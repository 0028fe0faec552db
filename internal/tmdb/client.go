package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vmunix/macflix/internal/metrics"
)

const defaultBaseURL = "https://api.themoviedb.org"

var (
	// ErrNotFound is returned when a title doesn't exist in TMDB.
	ErrNotFound = errors.New("title not found")
	// ErrInvalidMediaType is returned for anything other than movie or tv.
	ErrInvalidMediaType = errors.New("media type must be movie or tv")
)

// APIError is a non-success answer from TMDB.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("TMDB API error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("TMDB API error: %d %s", e.StatusCode, e.Message)
}

// Client is a TMDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *cache // nil unless WithCacheTTL enabled it
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

// WithCacheTTL caches Details lookups for ttl. Zero or negative leaves
// caching off, which is the default.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl <= 0 {
			c.cache = nil
			return
		}
		c.cache = newCache(ttl, defaultCacheEntries)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search finds movies or shows matching query.
func (c *Client) Search(ctx context.Context, query string, mediaType MediaType) (results []SearchResult, err error) {
	if !mediaType.Valid() {
		return nil, ErrInvalidMediaType
	}
	defer func() { metrics.ObserveMetadata("tmdb", err) }()

	params := url.Values{"query": {query}}
	var resp searchResponse
	if err := c.get(ctx, "/3/search/"+string(mediaType), params, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		resp.Results = []SearchResult{}
	}
	return resp.Results, nil
}

// Details fetches one movie or show by TMDB ID, with videos and images.
func (c *Client) Details(ctx context.Context, mediaType MediaType, id int64) (details *Details, err error) {
	if !mediaType.Valid() {
		return nil, ErrInvalidMediaType
	}

	key := string(mediaType) + ":" + strconv.FormatInt(id, 10)
	if c.cache != nil {
		if d, ok := c.cache.get(key); ok {
			return d, nil
		}
	}
	defer func() { metrics.ObserveMetadata("tmdb", err) }()

	params := url.Values{"append_to_response": {"videos,images"}}
	var d Details
	if err := c.get(ctx, fmt.Sprintf("/3/%s/%d", mediaType, id), params, &d); err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.set(key, &d)
	}
	return &d, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("api_key", c.apiKey)

	// Build request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	// Execute
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	// Handle errors
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	// Decode
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func apiError(resp *http.Response) error {
	var body struct {
		StatusMessage string `json:"status_message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if json.Unmarshal(data, &body) != nil || body.StatusMessage == "" {
		body.StatusMessage = string(data)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: body.StatusMessage}
}
