// Package v1 implements the catalog, streaming and metadata REST API.
package v1

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/vmunix/macflix/internal/catalog"
	"github.com/vmunix/macflix/internal/metrics"
	"github.com/vmunix/macflix/internal/omdb"
	"github.com/vmunix/macflix/internal/tmdb"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// Server is the v1 API server.
type Server struct {
	deps   ServerDeps
	logger *slog.Logger
}

// New creates a new v1 API server. Returns an error if required
// dependencies are missing.
func New(deps ServerDeps) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{deps: deps, logger: logger.With("component", "api")}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", route(s.welcome))

	// Catalog
	mux.HandleFunc("GET /content", route(s.cached(s.listContent)))
	mux.HandleFunc("GET /content/{id}", route(s.cached(s.getContent)))
	mux.HandleFunc("GET /content/year/{year}", route(s.cached(s.contentByYear)))
	mux.HandleFunc("GET /content/category/{name}", route(s.cached(s.contentByCategory)))
	mux.HandleFunc("GET /content/search", route(s.cached(s.searchContent)))
	mux.HandleFunc("GET /categories", route(s.cached(s.listCategories)))
	mux.HandleFunc("GET /categories/{name}", route(s.cached(s.getCategory)))

	// Delivery
	mux.HandleFunc("GET /stream/{id}", route(s.stream))
	mux.HandleFunc("GET /download/{id}", route(s.download))
	mux.HandleFunc("GET /stream/episode/{id}/{season}/{episode}", route(s.streamEpisode))

	// Metadata pass-through
	mux.HandleFunc("GET /metadata/tmdb/search", route(s.requireTMDB(s.tmdbSearch)))
	mux.HandleFunc("GET /metadata/tmdb/{type}/{id}", route(s.requireTMDB(s.tmdbDetails)))
	mux.HandleFunc("GET /metadata/omdb/search", route(s.requireOMDB(s.omdbSearch)))
	mux.HandleFunc("GET /metadata/omdb/title/{imdb_id}", route(s.requireOMDB(s.omdbDetails)))

	// System
	mux.HandleFunc("GET /healthz", route(s.healthz))
	mux.HandleFunc("GET /verify", route(s.verify))
	mux.HandleFunc("GET /metrics", route(metrics.Handler().ServeHTTP))
}

// Handler returns the routed API behind request id, access logging,
// metrics and, when perMinute > 0, a per-IP limit of perMinute requests.
func (s *Server) Handler(perMinute int) http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)

	var h http.Handler = mux
	if perMinute > 0 {
		h = rateLimit(perMinute, time.Minute)(h)
	}
	return requestID(s.observe(h))
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// pathInt extracts an integer from the URL path.
func pathInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(r.PathValue(name))
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

func (s *Server) welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to Mac Flix Backend API"})
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	cat := s.deps.Catalog.Current()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"records":    cat.Len(),
		"categories": len(cat.Categories()),
		"version":    cat.Version(),
	})
}

func (s *Server) listContent(w http.ResponseWriter, r *http.Request) {
	cat := s.deps.Catalog.Current()

	records := cat.All()
	switch r.URL.Query().Get("type") {
	case "movie":
		records = cat.ByKind(catalog.KindMovie)
	case "series", "tv":
		records = cat.ByKind(catalog.KindSeries)
	}
	writeJSON(w, http.StatusOK, contentListResponse(records))
}

func (s *Server) getContent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	rec, ok := s.deps.Catalog.Current().Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "CONTENT_NOT_FOUND", "Content "+id+" not found")
		return
	}
	writeJSON(w, http.StatusOK, contentToResponse(rec))
}

func (s *Server) contentByYear(w http.ResponseWriter, r *http.Request) {
	year, err := pathInt(r, "year")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_YEAR", "year must be an integer")
		return
	}
	writeJSON(w, http.StatusOK, contentListResponse(s.deps.Catalog.Current().ByYear(year)))
}

func (s *Server) contentByCategory(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	records, err := s.deps.Catalog.Current().ByCategory(name)
	if err != nil {
		s.writeCategoryError(w, name, err)
		return
	}
	writeJSON(w, http.StatusOK, contentListResponse(records))
}

func (s *Server) searchContent(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "INVALID_QUERY", "q is required")
		return
	}
	limit := queryInt(r, "limit", defaultSearchLimit)
	if limit <= 0 || limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	hits := s.deps.Catalog.Current().Search(q, limit)
	resp := searchResponse{Query: q, Results: make([]searchHitResponse, len(hits))}
	for i, h := range hits {
		resp.Results[i] = searchHitResponse{Score: h.Score, contentResponse: contentToResponse(h.Record)}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	cats := s.deps.Catalog.Current().Categories()
	resp := listCategoriesResponse{Categories: make([]categoryResponse, len(cats))}
	for i := range cats {
		resp.Categories[i] = categoryToResponse(&cats[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	cat, err := s.deps.Catalog.Current().Category(name)
	if err != nil {
		s.writeCategoryError(w, name, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryToResponse(cat))
}

func (s *Server) writeCategoryError(w http.ResponseWriter, name string, err error) {
	if errors.Is(err, catalog.ErrCategoryNotFound) {
		writeError(w, http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category "+name+" not found")
		return
	}
	s.logger.Error("category lookup failed", "category", name, "error", err)
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}

func (s *Server) tmdbSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "INVALID_QUERY", "query is required")
		return
	}
	mediaType := tmdb.MediaMovie
	if t := r.URL.Query().Get("type"); t != "" {
		mediaType = tmdb.MediaType(t)
	}
	if !mediaType.Valid() {
		writeError(w, http.StatusBadRequest, "INVALID_TYPE", "type must be 'movie' or 'tv'")
		return
	}

	results, err := s.deps.TMDB.Search(r.Context(), query, mediaType)
	if err != nil {
		s.logger.Warn("tmdb search failed", "query", query, "error", err)
		writeError(w, http.StatusBadGateway, "SEARCH_FAILED", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// tmdbDetailsResponse adds resolved image and trailer links to TMDB details.
type tmdbDetailsResponse struct {
	*tmdb.Details
	PosterURL  string `json:"poster_url"`
	TrailerURL string `json:"trailer_url"`
}

func (s *Server) tmdbDetails(w http.ResponseWriter, r *http.Request) {
	mediaType := tmdb.MediaType(r.PathValue("type"))
	if !mediaType.Valid() {
		writeError(w, http.StatusBadRequest, "INVALID_TYPE", "type must be 'movie' or 'tv'")
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_NUMBER", "id must be an integer")
		return
	}

	d, err := s.deps.TMDB.Details(r.Context(), mediaType, id)
	if err != nil {
		if errors.Is(err, tmdb.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "TMDB has no such title")
			return
		}
		s.logger.Warn("tmdb details failed", "type", mediaType, "id", id, "error", err)
		writeError(w, http.StatusBadGateway, "SEARCH_FAILED", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tmdbDetailsResponse{
		Details:    d,
		PosterURL:  tmdb.PosterURL(d.PosterPath),
		TrailerURL: tmdb.TrailerURL(d),
	})
}

func (s *Server) omdbSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "INVALID_QUERY", "query is required")
		return
	}

	results, err := s.deps.OMDB.Search(r.Context(), query)
	if err != nil {
		s.logger.Warn("omdb search failed", "query", query, "error", err)
		writeError(w, http.StatusBadGateway, "SEARCH_FAILED", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) omdbDetails(w http.ResponseWriter, r *http.Request) {
	imdbID := r.PathValue("imdb_id")
	d, err := s.deps.OMDB.Details(r.Context(), imdbID)
	if err != nil {
		if errors.Is(err, omdb.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "OMDB has no title "+imdbID)
			return
		}
		s.logger.Warn("omdb details failed", "imdb_id", imdbID, "error", err)
		writeError(w, http.StatusBadGateway, "SEARCH_FAILED", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, d)
}
