package media

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/macflix/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Record{
		{
			ID:          "movie-both",
			Kind:        catalog.KindMovie,
			Title:       "Both Locators",
			VideoURL:    "https://cdn.example.com/both.mp4",
			DownloadURL: "https://dl.example.com/both.mkv",
		},
		{
			ID:       "movie-video",
			Kind:     catalog.KindMovie,
			Title:    "Video Only",
			VideoURL: "/var/media/video.mp4",
		},
		{
			ID:    "movie-none",
			Kind:  catalog.KindMovie,
			Title: "No Locator",
		},
		{
			ID:       "series",
			Kind:     catalog.KindSeries,
			Title:    "A Series",
			VideoURL: "https://cdn.example.com/series.mp4",
			Seasons: []catalog.Season{
				{Number: 1, Episodes: []catalog.Episode{
					{Number: 1, VideoURL: "/var/media/s01e01.mp4"},
					{Number: 2},
				}},
				{Number: 2, Episodes: []catalog.Episode{
					{Number: 1, VideoURL: "https://cdn.example.com/s02e01.mp4"},
					{Number: 1, VideoURL: "https://cdn.example.com/s02e01-dup.mp4"},
				}},
			},
		},
		{
			ID:    "series-bare",
			Kind:  catalog.KindSeries,
			Title: "No Series Locator",
			Seasons: []catalog.Season{
				{Number: 1, Episodes: []catalog.Episode{{Number: 1}}},
			},
		},
	}, nil)
	require.NoError(t, err)
	return c
}

func episode(season, ep int) *EpisodeRef {
	return &EpisodeRef{Season: season, Episode: ep}
}

func TestResolve_UnknownID(t *testing.T) {
	c := testCatalog(t)

	for _, req := range []Request{
		{ID: "missing"},
		{ID: "missing", Intent: Download},
		{ID: "missing", Episode: episode(1, 1)},
		{ID: "missing", Episode: episode(99, 99)},
	} {
		_, err := Resolve(c, req)
		assert.ErrorIs(t, err, ErrContentNotFound)
	}
}

func TestResolve_WholeItem(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name     string
		req      Request
		locator  string
		locality Locality
	}{
		{"stream uses video", Request{ID: "movie-both"}, "https://cdn.example.com/both.mp4", Remote},
		{"download prefers download url", Request{ID: "movie-both", Intent: Download}, "https://dl.example.com/both.mkv", Remote},
		{"download falls back to video", Request{ID: "movie-video", Intent: Download}, "/var/media/video.mp4", Local},
		{"series whole item", Request{ID: "series"}, "https://cdn.example.com/series.mp4", Remote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(c, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.locator, res.Locator)
			assert.Equal(t, tt.locality, res.Locality)
			assert.Equal(t, tt.req.Intent, res.Intent)
			assert.Equal(t, tt.req.ID, res.ContentID)
		})
	}
}

func TestResolve_LocatorNotFound(t *testing.T) {
	c := testCatalog(t)

	_, err := Resolve(c, Request{ID: "movie-none"})
	assert.ErrorIs(t, err, ErrLocatorNotFound)

	_, err = Resolve(c, Request{ID: "movie-none", Intent: Download})
	assert.ErrorIs(t, err, ErrLocatorNotFound)

	_, err = Resolve(c, Request{ID: "series-bare", Episode: episode(1, 1)})
	assert.ErrorIs(t, err, ErrLocatorNotFound)
}

func TestResolve_Episode(t *testing.T) {
	c := testCatalog(t)

	res, err := Resolve(c, Request{ID: "series", Episode: episode(1, 1)})
	require.NoError(t, err)
	assert.Equal(t, "/var/media/s01e01.mp4", res.Locator)
	assert.Equal(t, Local, res.Locality)
	assert.Equal(t, catalog.KindSeries, res.Kind)
	assert.Equal(t, episode(1, 1), res.Episode)

	// no episode locator: falls back to the series
	res, err = Resolve(c, Request{ID: "series", Episode: episode(1, 2)})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/series.mp4", res.Locator)
}

func TestResolve_EpisodeMisses(t *testing.T) {
	c := testCatalog(t)

	_, err := Resolve(c, Request{ID: "series", Episode: episode(3, 1)})
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, ReasonSeasonNotFound, nf.Reason)
	assert.Equal(t, 3, nf.Season)
	assert.Equal(t, "Season 3 not found", err.Error())

	_, err = Resolve(c, Request{ID: "series", Episode: episode(1, 9)})
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, ReasonEpisodeNotFound, nf.Reason)
	assert.Equal(t, 1, nf.Season)
	assert.Equal(t, 9, nf.Episode)
	assert.Equal(t, "Episode 9 not found in season 1", err.Error())
}

func TestResolve_EpisodeOnMovie(t *testing.T) {
	c := testCatalog(t)

	_, err := Resolve(c, Request{ID: "movie-both", Episode: episode(1, 1)})
	assert.ErrorIs(t, err, ErrContentNotFound)
	assert.NotErrorIs(t, err, ErrSeasonNotFound)
}

func TestResolve_DuplicateEpisodeTakesFirst(t *testing.T) {
	c := testCatalog(t)

	res, err := Resolve(c, Request{ID: "series", Episode: episode(2, 1)})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/s02e01.mp4", res.Locator)
}

func TestReasonOf(t *testing.T) {
	reason, ok := ReasonOf(&NotFoundError{Reason: ReasonSeasonNotFound, Season: 2})
	assert.True(t, ok)
	assert.Equal(t, ReasonSeasonNotFound, reason)

	reason, ok = ReasonOf(fileNotFound("/x", errors.New("boom")))
	assert.True(t, ok)
	assert.Equal(t, ReasonFileNotFound, reason)

	_, ok = ReasonOf(errors.New("plain"))
	assert.False(t, ok)
}
