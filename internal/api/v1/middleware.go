package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/google/uuid"

	"github.com/vmunix/macflix/internal/metrics"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	routeKey
)

// requireTMDB wraps a handler and returns 503 if TMDB is not configured.
func (s *Server) requireTMDB(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.deps.TMDB == nil {
			writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "TMDB not configured")
			return
		}
		next(w, r)
	}
}

// requireOMDB wraps a handler and returns 503 if OMDB is not configured.
func (s *Server) requireOMDB(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.deps.OMDB == nil {
			writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "OMDB not configured")
			return
		}
		next(w, r)
	}
}

// cached tags catalog reads with a weak ETag of the catalog version and
// answers a matching If-None-Match with 304. The tag is taken before the
// handler's snapshot, so a reload in between only costs a refetch.
func (s *Server) cached(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := s.deps.Catalog.Current().Version()
		if version == "" {
			next(w, r)
			return
		}
		etag := `W/"` + version + `"`
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		next(w, r)
	}
}

// requestID accepts a client supplied id or mints one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// RequestIDFrom returns the id assigned by the request id middleware.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
	wrote  bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wrote { // Only capture first WriteHeader call
		r.status = code
		r.wrote = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	r.wrote = true
	n, err := r.ResponseWriter.Write(p)
	r.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying flusher.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// route records the matched pattern for the access log and metrics. The
// mux sets Pattern on the request it hands to the handler, which may not
// be the request the outer middleware holds.
func route(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p, ok := r.Context().Value(routeKey).(*string); ok {
			*p = r.Pattern
		}
		next(w, r)
	}
}

// observe writes the access log line and request metrics.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		pattern := "unmatched"
		wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r.WithContext(context.WithValue(r.Context(), routeKey, &pattern)))

		elapsed := time.Since(start)
		metrics.ObserveRequest(r.Method, pattern, wrapped.status, elapsed)
		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"bytes", wrapped.bytes,
			"duration_ms", elapsed.Milliseconds(),
			"request_id", RequestIDFrom(r.Context()),
		)
	})
}

// rateLimit caps requests per client IP over a sliding window.
func rateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, try again later")
		}),
	)
}
