package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestClient_Health(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/healthz").
		ExpectGET().
		RespondJSON(HealthResponse{Status: "ok", Records: 3, Categories: 2, Version: "00ff00ff00ff00ff"}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	h, err := client.Health()
	require.NoError(t, err)
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, 3, h.Records)
	assert.Equal(t, 2, h.Categories)
	assert.Equal(t, "00ff00ff00ff00ff", h.Version)
}

func TestClient_Content_TypeFilter(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/content").
		ExpectQuery("type=series").
		RespondJSON([]ContentResponse{{ID: "tt0944947", Type: "series", Title: "Game of Thrones"}}).
		Build()
	defer srv.Close()

	items, err := NewClient(srv.URL).Content("series")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Game of Thrones", items[0].Title)
}

func TestClient_ContentByID_EscapesPath(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/content/a%2Fb", r.URL.EscapedPath())
			respondJSON(t, w, ContentResponse{ID: "a/b"})
		}).
		Build()
	defer srv.Close()

	item, err := NewClient(srv.URL).ContentByID("a/b")
	require.NoError(t, err)
	assert.Equal(t, "a/b", item.ID)
}

func TestClient_APIError(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Content x not found","code":"CONTENT_NOT_FOUND"}`))
		}).
		Build()
	defer srv.Close()

	_, err := NewClient(srv.URL).ContentByID("x")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "CONTENT_NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Content x not found", apiErr.Message)
	assert.Contains(t, err.Error(), "404")
}

func TestClient_PlainTextError(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusInternalServerError, "internal server error").
		Build()
	defer srv.Close()

	_, err := NewClient(srv.URL).Health()
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "internal server error")
}

func TestClient_ConnectionError(t *testing.T) {
	// Create a server and immediately close it to simulate connection error
	srv := newMockServer(t).Build()
	srv.Close()

	_, err := NewClient(srv.URL).Health()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestClient_Search(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/content/search").
		ExpectQuery("limit=5&q=game+of").
		RespondJSON(SearchResponse{
			Query:   "game of",
			Results: []SearchHit{{Score: 0.9, ContentResponse: ContentResponse{ID: "tt0944947", Title: "Game of Thrones"}}},
		}).
		Build()
	defer srv.Close()

	resp, err := NewClient(srv.URL).Search("game of", 5)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.InDelta(t, 0.9, resp.Results[0].Score, 0.001)
	assert.Equal(t, "tt0944947", resp.Results[0].ID)
}

func TestClient_MetadataSearch(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/metadata/tmdb/search":
				assert.Equal(t, "query=The+Wire&type=tv", r.URL.RawQuery)
				_, _ = w.Write([]byte(`[{"id":1438,"name":"The Wire","first_air_date":"2002-06-02"}]`))
			case "/metadata/omdb/search":
				assert.Equal(t, "Heat", r.URL.Query().Get("query"))
				_, _ = w.Write([]byte(`[{"Title":"Heat","Year":"1995","imdbID":"tt0113277","Type":"movie"}]`))
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)

	tm, err := client.TMDBSearch("The Wire", "tv")
	require.NoError(t, err)
	require.Len(t, tm, 1)
	assert.Equal(t, "The Wire", tm[0].DisplayTitle())
	assert.Equal(t, 2002, tm[0].Year())

	om, err := client.OMDBSearch("Heat")
	require.NoError(t, err)
	require.Len(t, om, 1)
	assert.Equal(t, "tt0113277", om[0].IMDBID)
}

func TestClient_Verify(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/verify").
		Handler(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"records":2,"checked":3,"passed":2,"remote":1,"problems":[
				{"content_id":"s1","title":"Show","season":1,"episode":2,"field":"video_url","locator":"/m/x.mp4","issue":"missing"}]}`))
		}).
		Build()
	defer srv.Close()

	rep, err := NewClient(srv.URL).Verify()
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Checked)
	require.Len(t, rep.Problems, 1)
	assert.Equal(t, 2, rep.Problems[0].Episode)
}
