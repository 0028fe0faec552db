package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vmunix/macflix/internal/metrics"
)

const (
	// DefaultVideoType is served when no better type is known.
	DefaultVideoType = "video/mp4"
	// DownloadType marks a download as opaque bytes rather than playback.
	DownloadType = "application/octet-stream"

	defaultProbeTimeout = 10 * time.Second
)

// videoTypes covers the containers the catalog serves. The stdlib table is
// platform dependent and misses most of these.
var videoTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".ts":   "video/mp2t",
	".m3u8": "application/vnd.apple.mpegurl",
	".mpd":  "application/dash+xml",
	".ogv":  "video/ogg",
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
}

// Deliverer turns resolved locators into responses.
type Deliverer struct {
	httpClient   *http.Client
	probeTimeout time.Duration
	mediaRoot    string
	logger       *slog.Logger
}

// Option configures a Deliverer.
type Option func(*Deliverer)

// WithHTTPClient sets the client used to reach remote origins.
func WithHTTPClient(hc *http.Client) Option {
	return func(d *Deliverer) {
		d.httpClient = hc
	}
}

// WithProbeTimeout bounds the content-type probe of a remote origin.
func WithProbeTimeout(timeout time.Duration) Option {
	return func(d *Deliverer) {
		if timeout > 0 {
			d.probeTimeout = timeout
		}
	}
}

// WithMediaRoot resolves relative local locators against root.
func WithMediaRoot(root string) Option {
	return func(d *Deliverer) {
		d.mediaRoot = root
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Deliverer) {
		d.logger = logger
	}
}

// NewDeliverer creates a Deliverer. The default HTTP client has no overall
// timeout, since a stream may legitimately run for hours.
func NewDeliverer(opts ...Option) *Deliverer {
	d := &Deliverer{
		httpClient:   &http.Client{},
		probeTimeout: defaultProbeTimeout,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Deliver opens the media behind res. Streamed bodies are bound to ctx; the
// caller must Serve or Close the returned response.
func (d *Deliverer) Deliver(ctx context.Context, res *Resolved) (Response, error) {
	if res.Locality == Remote {
		if res.Intent == Download {
			return &RedirectResponse{URL: res.Locator}, nil
		}
		return d.streamRemote(ctx, res.Locator, res.HeadOnly)
	}
	return d.openLocal(res)
}

func (d *Deliverer) streamRemote(ctx context.Context, locator string, headOnly bool) (Response, error) {
	contentType, size, err := d.probe(ctx, locator)
	if err != nil {
		return nil, upstreamError(locator, err)
	}
	if headOnly {
		if contentType == "" {
			contentType = DefaultVideoType
		}
		return &StreamResponse{
			ContentType: contentType,
			Size:        size,
			Body:        http.NoBody,
			locality:    Remote,
			locator:     locator,
		}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, upstreamError(locator, err)
	}
	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, upstreamError(locator, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, upstreamError(locator, fmt.Errorf("origin returned %s", resp.Status))
	}

	if contentType == "" {
		contentType = resp.Header.Get("Content-Type")
	}
	if contentType == "" {
		contentType = DefaultVideoType
	}

	d.logger.Debug("relaying remote media", "locator", locator, "content_type", contentType)
	return &StreamResponse{
		ContentType: contentType,
		Size:        resp.ContentLength,
		Body:        resp.Body,
		locality:    Remote,
		locator:     locator,
	}, nil
}

// probe asks the origin for the media type and length. An origin that does
// not answer HEAD reports no type and size -1, which is not an error.
func (d *Deliverer) probe(ctx context.Context, locator string) (string, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, d.probeTimeout)
	defer cancel()

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, locator, nil)
	if err != nil {
		return "", -1, err
	}
	resp, err := d.httpClient.Do(req)
	if err != nil {
		metrics.ObserveProbe(false, time.Since(start))
		return "", -1, fmt.Errorf("probe: %w", err)
	}
	_ = resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusMethodNotAllowed, resp.StatusCode == http.StatusNotImplemented:
		metrics.ObserveProbe(true, time.Since(start))
		return "", -1, nil
	case resp.StatusCode >= http.StatusBadRequest:
		metrics.ObserveProbe(false, time.Since(start))
		return "", -1, fmt.Errorf("probe: origin returned %s", resp.Status)
	}
	metrics.ObserveProbe(true, time.Since(start))
	return resp.Header.Get("Content-Type"), resp.ContentLength, nil
}

func (d *Deliverer) openLocal(res *Resolved) (Response, error) {
	path := d.localPath(res.Locator)

	info, err := statFile(res.Locator, path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fileNotFound(res.Locator, err)
	}

	if res.Intent == Download {
		return &FileResponse{
			Filename:    filepath.Base(path),
			ContentType: DownloadType,
			Size:        info.Size(),
			Body:        f,
		}, nil
	}
	return &StreamResponse{
		ContentType: TypeByName(path),
		Size:        info.Size(),
		Body:        f,
		locality:    Local,
		locator:     res.Locator,
	}, nil
}

// CheckLocal reports whether a local locator names a regular file,
// without opening it.
func (d *Deliverer) CheckLocal(locator string) error {
	_, err := statFile(locator, d.localPath(locator))
	return err
}

func statFile(locator, path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fileNotFound(locator, err)
	}
	if info.IsDir() {
		return nil, fileNotFound(locator, errors.New("is a directory"))
	}
	return info, nil
}

// localPath accepts plain paths and file: URLs. Relative paths are taken
// from the media root when one is configured.
func (d *Deliverer) localPath(locator string) string {
	path := strings.TrimPrefix(locator, "file://")
	path = strings.TrimPrefix(path, "file:")
	if d.mediaRoot != "" && !filepath.IsAbs(path) {
		path = filepath.Join(d.mediaRoot, path)
	}
	return filepath.Clean(path)
}

// TypeByName guesses a streaming content type from a file name.
func TypeByName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if t, ok := videoTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" && ext != "" {
		return t
	}
	return DefaultVideoType
}

// Close releases a response body without serving it.
func Close(resp Response) {
	if c, ok := resp.(io.Closer); ok {
		_ = c.Close()
	}
}
