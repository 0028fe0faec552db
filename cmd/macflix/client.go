package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vmunix/macflix/internal/media"
	"github.com/vmunix/macflix/internal/omdb"
	"github.com/vmunix/macflix/internal/tmdb"
)

// Client wraps HTTP calls to the macflix server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new macflix API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("server error %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{Status: resp.StatusCode, Message: string(body)}
		var e struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			apiErr.Code, apiErr.Message = e.Code, e.Error
		}
		return apiErr
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

// API response types (mirror server types)

type HealthResponse struct {
	Status     string `json:"status"`
	Records    int    `json:"records"`
	Categories int    `json:"categories"`
	Version    string `json:"version"`
}

type ContentResponse struct {
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
	Seasons     []SeasonResponse `json:"seasons,omitempty"`
}

type SeasonResponse struct {
	SeasonNumber int               `json:"season_number"`
	Episodes     []EpisodeResponse `json:"episodes"`
}

type EpisodeResponse struct {
	EpisodeNumber int    `json:"episode_number"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	VideoURL      string `json:"video_url,omitempty"`
}

type CategoryResponse struct {
	Name    string `json:"name"`
	Filters []struct {
		Name  string `json:"name"`
		Type  string `json:"type"`
		Value any    `json:"value"`
	} `json:"filters"`
}

type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type SearchHit struct {
	Score float64 `json:"score"`
	ContentResponse
}

type SearchResponse struct {
	Query   string      `json:"query"`
	Results []SearchHit `json:"results"`
}

// VerifyResponse is the server's audit of local locators.
type VerifyResponse = media.Report

// API methods

func (c *Client) Health() (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.get("/healthz", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Content lists the catalog, optionally limited to one type.
func (c *Client) Content(contentType string) ([]ContentResponse, error) {
	path := "/content"
	if contentType != "" {
		path += "?type=" + url.QueryEscape(contentType)
	}
	var resp []ContentResponse
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) ContentByID(id string) (*ContentResponse, error) {
	var resp ContentResponse
	if err := c.get("/content/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ContentByYear(year int) ([]ContentResponse, error) {
	var resp []ContentResponse
	if err := c.get("/content/year/"+strconv.Itoa(year), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) ContentByCategory(name string) ([]ContentResponse, error) {
	var resp []ContentResponse
	if err := c.get("/content/category/"+url.PathEscape(name), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Categories() (*CategoriesResponse, error) {
	var resp CategoriesResponse
	if err := c.get("/categories", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Category(name string) (*CategoryResponse, error) {
	var resp CategoryResponse
	if err := c.get("/categories/"+url.PathEscape(name), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Search(query string, limit int) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var resp SearchResponse
	if err := c.get("/content/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TMDBSearch searches TMDB through the server. mediaType may be empty.
func (c *Client) TMDBSearch(query, mediaType string) ([]tmdb.SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	if mediaType != "" {
		params.Set("type", mediaType)
	}
	var resp []tmdb.SearchResult
	if err := c.get("/metadata/tmdb/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// OMDBSearch searches OMDB through the server.
func (c *Client) OMDBSearch(query string) ([]omdb.SearchResult, error) {
	var resp []omdb.SearchResult
	if err := c.get("/metadata/omdb/search?query="+url.QueryEscape(query), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Verify() (*VerifyResponse, error) {
	var resp VerifyResponse
	if err := c.get("/verify", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
