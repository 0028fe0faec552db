package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmptyDocuments(t *testing.T) {
	c, err := Parse([]byte(""), nil)
	require.NoError(t, err)
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Categories())
}

func TestParse_EpisodeFields(t *testing.T) {
	c, err := Parse([]byte(`
movies:
  - id: s1
    title: Show
    type: series
    year: 2020
    video_url: /media/show.mp4
    seasons:
      - season_number: 3
        episodes:
          - episode_number: 7
            title: Seven
            description: The seventh
            poster_url: https://example.com/p.jpg
            video_url: /media/s3e7.mp4
`), nil)
	require.NoError(t, err)

	r, ok := c.Get("s1")
	require.True(t, ok)
	s, ok := r.Season(3)
	require.True(t, ok)
	ep, ok := s.Episode(7)
	require.True(t, ok)
	assert.Equal(t, Episode{
		Number:      7,
		Title:       "Seven",
		Description: "The seventh",
		PosterURL:   "https://example.com/p.jpg",
		VideoURL:    "/media/s3e7.mp4",
	}, *ep)
}

func TestParse_ValidationProblems(t *testing.T) {
	_, err := Parse([]byte(`
movies:
  - id: a
    title: ""
    type: movie
    video_url: a.mp4
  - id: a
    title: Dup
    type: movie
    video_url: b.mp4
  - id: b
    title: Bad type
    type: documentary
    video_url: c.mp4
  - id: c
    title: Movie with seasons
    type: movie
    video_url: d.mp4
    seasons:
      - season_number: 1
  - id: d
    title: Broken show
    type: tv
    seasons:
      - season_number: 0
      - season_number: 2
        episodes:
          - episode_number: 1
          - episode_number: 1
      - season_number: 2
`), nil)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)

	msg := strings.Join(verr.Problems, "\n")
	assert.Contains(t, msg, "movies[0] (a): title: required")
	assert.Contains(t, msg, "movies[1] (a): duplicate id, first defined at movies[0] (a)")
	assert.Contains(t, msg, `type: must be movie or tv, got "documentary"`)
	assert.Contains(t, msg, "movies[3] (c): seasons: not allowed for a movie")
	assert.Contains(t, msg, "movies[4] (d): video_url: required")
	assert.Contains(t, msg, "season_number: must be positive, got 0")
	assert.Contains(t, msg, "season 2: episode 1 defined twice")
	assert.Contains(t, msg, "season 2: defined twice")
}

func TestParse_MissingType(t *testing.T) {
	_, err := Parse([]byte(`
movies:
  - id: a
    title: A
    video_url: a.mp4
`), nil)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Error(), `type: must be movie or tv, got ""`)
}

func TestParse_Categories(t *testing.T) {
	c, err := Parse([]byte("movies: []\n"), []byte(`
categories:
  - name: Classics
    filters:
      - name: Old
        type: year
        value: 1994
      - name: Good
        type: Rating
        value: 8.5
`))
	require.NoError(t, err)

	cat, err := c.Category("Classics")
	require.NoError(t, err)
	require.Len(t, cat.Filters, 2)
	assert.Equal(t, Filter{Name: "Old", Type: FilterYear, Value: "1994"}, cat.Filters[0])
	assert.Equal(t, Filter{Name: "Good", Type: FilterRating, Value: "8.5"}, cat.Filters[1])
}

func TestParse_CategoryProblems(t *testing.T) {
	_, err := Parse([]byte("movies: []\n"), []byte(`
categories:
  - name: A
    filters:
      - name: bad year
        type: year
        value: nineteen
      - name: bad type
        type: mood
        value: happy
      - name: list value
        type: genre
        value: [a, b]
  - name: A
  - filters: []
`))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)

	msg := strings.Join(verr.Problems, "\n")
	assert.Contains(t, msg, `year must be an integer, got "nineteen"`)
	assert.Contains(t, msg, `type: must be genre, year or rating, got "mood"`)
	assert.Contains(t, msg, "value: must be a non-empty scalar")
	assert.Contains(t, msg, `category "A" defined twice`)
	assert.Contains(t, msg, "categories[2]: name: required")
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("movies: [\n"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse content")
}

func TestLoadFiles_MissingFile(t *testing.T) {
	_, err := LoadFiles(filepath.Join(t.TempDir(), "none.yaml"), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFiles_NoCategories(t *testing.T) {
	c, err := LoadFiles(filepath.Join("testdata", "content.yaml"), "")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Empty(t, c.Categories())
}

func TestParse_Version(t *testing.T) {
	a, err := Parse([]byte("movies: []\n"), nil)
	require.NoError(t, err)
	b, err := Parse([]byte("movies: []\n"), nil)
	require.NoError(t, err)
	c, err := Parse([]byte("movies: []\n"), []byte("categories: []\n"))
	require.NoError(t, err)

	assert.Len(t, a.Version(), 16)
	assert.Equal(t, a.Version(), b.Version(), "same documents, same version")
	assert.NotEqual(t, a.Version(), c.Version())
	assert.Empty(t, Empty().Version())
}
