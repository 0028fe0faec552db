package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/vmunix/macflix/internal/metrics"
)

const relayChunkSize = 32 * 1024

// ErrClientWrite marks a relay that failed writing to the client, as
// opposed to reading from the source.
var ErrClientWrite = errors.New("client write failed")

// Response is a delivery ready to be written to a client. Serve returns the
// number of body bytes written.
type Response interface {
	Serve(w http.ResponseWriter, r *http.Request) (int64, error)
}

// StreamResponse relays media bytes for playback.
type StreamResponse struct {
	ContentType string
	Size        int64 // -1 when unknown
	Body        io.ReadCloser

	locality Locality
	locator  string
}

func (s *StreamResponse) Serve(w http.ResponseWriter, r *http.Request) (int64, error) {
	defer s.Close()

	w.Header().Set("Content-Type", s.ContentType)
	if s.Size >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(s.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return 0, nil
	}

	n, err := Relay(r.Context(), w, s.Body)
	metrics.ObserveRelay(s.locality.String(), n, err != nil)
	if err != nil && s.locality == Remote && !errors.Is(err, context.Canceled) && !errors.Is(err, ErrClientWrite) {
		err = upstreamError(s.locator, err)
	}
	return n, err
}

func (s *StreamResponse) Close() error { return s.Body.Close() }

// RedirectResponse sends the client to the origin.
type RedirectResponse struct {
	URL string
}

func (rr *RedirectResponse) Serve(w http.ResponseWriter, r *http.Request) (int64, error) {
	w.Header().Set("Location", rr.URL)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTemporaryRedirect)
	n, err := io.WriteString(w, `{"redirect_url":`+strconv.Quote(rr.URL)+"}\n")
	return int64(n), err
}

// FileResponse transfers a local file as an attachment.
type FileResponse struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

func (f *FileResponse) Serve(w http.ResponseWriter, r *http.Request) (int64, error) {
	defer f.Close()

	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", ContentDisposition(f.Filename))
	w.Header().Set("Content-Length", strconv.FormatInt(f.Size, 10))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return 0, nil
	}

	n, err := Relay(r.Context(), w, f.Body)
	metrics.ObserveRelay(Local.String(), n, err != nil)
	return n, err
}

func (f *FileResponse) Close() error { return f.Body.Close() }

// ContentDisposition builds an attachment header for filename.
func ContentDisposition(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}

// Relay copies src to w in order, flushing after every chunk so the client
// sees bytes as they arrive. It stops between chunks once ctx is done. A
// read error ends the relay; bytes already written stay written.
func Relay(ctx context.Context, w io.Writer, src io.Reader) (int64, error) {
	var flush func() error
	if rw, ok := w.(http.ResponseWriter); ok {
		rc := http.NewResponseController(rw)
		flush = rc.Flush
	}

	buf := make([]byte, relayChunkSize)
	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		nr, rerr := src.Read(buf)
		if nr > 0 {
			nw, werr := w.Write(buf[:nr])
			written += int64(nw)
			if werr != nil {
				return written, fmt.Errorf("%w: %w", ErrClientWrite, werr)
			}
			if nw != nr {
				return written, fmt.Errorf("%w: %w", ErrClientWrite, io.ErrShortWrite)
			}
			if flush != nil {
				if err := flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
					return written, fmt.Errorf("%w: %w", ErrClientWrite, err)
				}
			}
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, rerr
		}
	}
}
