package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"
	"gopkg.in/yaml.v3"
)

// contentFile is the shape of content.yaml. Both lists may hold either
// kind; entries under shows default to series.
type contentFile struct {
	Movies []contentEntry `yaml:"movies"`
	Shows  []contentEntry `yaml:"shows"`
}

type contentEntry struct {
	ID          string        `yaml:"id"`
	Title       string        `yaml:"title"`
	Type        string        `yaml:"type"`
	Year        int           `yaml:"year"`
	Genres      []string      `yaml:"genres"`
	Description string        `yaml:"description"`
	Rating      *float64      `yaml:"rating"`
	PosterURL   string        `yaml:"poster_url"`
	TrailerURL  string        `yaml:"trailer_url"`
	Cast        []string      `yaml:"cast"`
	Director    string        `yaml:"director"`
	Duration    *int          `yaml:"duration"`
	Language    string        `yaml:"language"`
	VideoURL    string        `yaml:"video_url"`
	DownloadURL string        `yaml:"download_url"`
	Seasons     []seasonEntry `yaml:"seasons"`
}

type seasonEntry struct {
	Number   int            `yaml:"season_number"`
	Episodes []episodeEntry `yaml:"episodes"`
}

type episodeEntry struct {
	Number      int    `yaml:"episode_number"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	PosterURL   string `yaml:"poster_url"`
	VideoURL    string `yaml:"video_url"`
}

type categoriesFile struct {
	Categories []categoryEntry `yaml:"categories"`
}

type categoryEntry struct {
	Name    string        `yaml:"name"`
	Filters []filterEntry `yaml:"filters"`
}

type filterEntry struct {
	Name  string    `yaml:"name"`
	Type  string    `yaml:"type"`
	Value yaml.Node `yaml:"value"`
}

// LoadFiles reads and validates the content and categories files and
// builds a Catalog. An empty categoriesPath means no categories.
func LoadFiles(contentPath, categoriesPath string) (*Catalog, error) {
	content, err := os.ReadFile(contentPath)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}

	records, err := parseContent(contentPath, content)
	if err != nil {
		return nil, err
	}

	var (
		categories []Category
		catData    []byte
	)
	if categoriesPath != "" {
		if catData, err = os.ReadFile(categoriesPath); err != nil {
			return nil, fmt.Errorf("read categories: %w", err)
		}
		if categories, err = parseCategories(categoriesPath, catData); err != nil {
			return nil, err
		}
	}

	return newVersioned(records, categories, content, catData)
}

// Parse builds a Catalog from in-memory YAML documents. categories may be nil.
func Parse(content, categories []byte) (*Catalog, error) {
	records, err := parseContent("content", content)
	if err != nil {
		return nil, err
	}
	var cats []Category
	if categories != nil {
		if cats, err = parseCategories("categories", categories); err != nil {
			return nil, err
		}
	}
	return newVersioned(records, cats, content, categories)
}

func newVersioned(records []Record, categories []Category, content, catData []byte) (*Catalog, error) {
	c, err := New(records, categories)
	if err != nil {
		return nil, err
	}
	c.version = fingerprint(content, catData)
	return c, nil
}

// fingerprint hashes the source documents. The separator keeps bytes
// moving between the two files from producing the same version.
func fingerprint(content, categories []byte) string {
	h := xxh3.New()
	_, _ = h.Write(content)
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(categories)
	return fmt.Sprintf("%016x", h.Sum64())
}

func decodeYAML(data []byte, v any) error {
	err := yaml.NewDecoder(bytes.NewReader(data)).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil // empty document
	}
	return err
}

func parseContent(path string, data []byte) ([]Record, error) {
	var file contentFile
	if err := decodeYAML(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var problems []string
	records := make([]Record, 0, len(file.Movies)+len(file.Shows))
	seen := make(map[string]string)

	convert := func(list string, defaultKind Kind, entries []contentEntry) {
		for i, e := range entries {
			where := fmt.Sprintf("%s[%d]", list, i)
			if e.ID != "" {
				where += " (" + e.ID + ")"
			}
			r, errs := e.toRecord(defaultKind)
			for _, msg := range errs {
				problems = append(problems, where+": "+msg)
			}
			if e.ID != "" {
				if first, dup := seen[e.ID]; dup {
					problems = append(problems, fmt.Sprintf("%s: duplicate id, first defined at %s", where, first))
				} else {
					seen[e.ID] = where
				}
			}
			records = append(records, r)
		}
	}
	convert("movies", "", file.Movies)
	convert("shows", KindSeries, file.Shows)

	if len(problems) > 0 {
		return nil, &ValidationError{Path: path, Problems: problems}
	}
	return records, nil
}

func parseKind(s string, def Kind) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie":
		return KindMovie, true
	case "tv", "series", "show":
		return KindSeries, true
	case "":
		return def, def != ""
	}
	return "", false
}

func (e contentEntry) toRecord(defaultKind Kind) (Record, []string) {
	var errs []string
	if e.ID == "" {
		errs = append(errs, "id: required")
	}
	if e.Title == "" {
		errs = append(errs, "title: required")
	}
	if e.VideoURL == "" {
		errs = append(errs, "video_url: required")
	}
	kind, ok := parseKind(e.Type, defaultKind)
	if !ok {
		errs = append(errs, fmt.Sprintf("type: must be movie or tv, got %q", e.Type))
	}
	if kind == KindMovie && len(e.Seasons) > 0 {
		errs = append(errs, "seasons: not allowed for a movie")
	}

	r := Record{
		ID:          e.ID,
		Kind:        kind,
		Title:       e.Title,
		Description: e.Description,
		Director:    e.Director,
		Language:    e.Language,
		Year:        e.Year,
		Genres:      e.Genres,
		Rating:      e.Rating,
		PosterURL:   e.PosterURL,
		TrailerURL:  e.TrailerURL,
		Cast:        e.Cast,
		Duration:    e.Duration,
		VideoURL:    e.VideoURL,
		DownloadURL: e.DownloadURL,
	}

	seasons := make(map[int]bool)
	for _, s := range e.Seasons {
		if s.Number < 1 {
			errs = append(errs, fmt.Sprintf("season_number: must be positive, got %d", s.Number))
		} else if seasons[s.Number] {
			errs = append(errs, fmt.Sprintf("season %d: defined twice", s.Number))
		}
		seasons[s.Number] = true

		season := Season{Number: s.Number, Episodes: make([]Episode, 0, len(s.Episodes))}
		episodes := make(map[int]bool)
		for _, ep := range s.Episodes {
			if ep.Number < 1 {
				errs = append(errs, fmt.Sprintf("season %d: episode_number must be positive, got %d", s.Number, ep.Number))
			} else if episodes[ep.Number] {
				errs = append(errs, fmt.Sprintf("season %d: episode %d defined twice", s.Number, ep.Number))
			}
			episodes[ep.Number] = true
			season.Episodes = append(season.Episodes, Episode{
				Number:      ep.Number,
				Title:       ep.Title,
				Description: ep.Description,
				PosterURL:   ep.PosterURL,
				VideoURL:    ep.VideoURL,
			})
		}
		r.Seasons = append(r.Seasons, season)
	}

	return r, errs
}

func parseCategories(path string, data []byte) ([]Category, error) {
	var file categoriesFile
	if err := decodeYAML(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var problems []string
	names := make(map[string]bool)
	categories := make([]Category, 0, len(file.Categories))

	for i, ce := range file.Categories {
		where := fmt.Sprintf("categories[%d]", i)
		if ce.Name == "" {
			problems = append(problems, where+": name: required")
		} else if names[ce.Name] {
			problems = append(problems, fmt.Sprintf("%s: category %q defined twice", where, ce.Name))
		}
		names[ce.Name] = true

		cat := Category{Name: ce.Name, Filters: make([]Filter, 0, len(ce.Filters))}
		for j, fe := range ce.Filters {
			f, err := fe.toFilter()
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s.filters[%d]: %v", where, j, err))
				continue
			}
			cat.Filters = append(cat.Filters, f)
		}
		categories = append(categories, cat)
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Path: path, Problems: problems}
	}
	return categories, nil
}

func (fe filterEntry) toFilter() (Filter, error) {
	if fe.Value.Kind != yaml.ScalarNode || fe.Value.Value == "" {
		return Filter{}, errors.New("value: must be a non-empty scalar")
	}
	f := Filter{Name: fe.Name, Type: FilterType(strings.ToLower(fe.Type)), Value: fe.Value.Value}

	switch f.Type {
	case FilterGenre:
	case FilterYear:
		if _, err := strconv.Atoi(f.Value); err != nil {
			return Filter{}, fmt.Errorf("value: year must be an integer, got %q", f.Value)
		}
	case FilterRating:
		if _, err := strconv.ParseFloat(f.Value, 64); err != nil {
			return Filter{}, fmt.Errorf("value: rating must be a number, got %q", f.Value)
		}
	default:
		return Filter{}, fmt.Errorf("type: must be genre, year or rating, got %q", fe.Type)
	}
	return f, nil
}
