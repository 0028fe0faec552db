package v1

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vmunix/macflix/internal/media"
	"github.com/vmunix/macflix/internal/metrics"
)

// mediaErrors maps each resolution and delivery failure to a stable
// status and code.
var mediaErrors = map[media.Reason]struct {
	status int
	code   string
}{
	media.ReasonContentNotFound: {http.StatusNotFound, "CONTENT_NOT_FOUND"},
	media.ReasonSeasonNotFound:  {http.StatusNotFound, "SEASON_NOT_FOUND"},
	media.ReasonEpisodeNotFound: {http.StatusNotFound, "EPISODE_NOT_FOUND"},
	media.ReasonLocatorNotFound: {http.StatusNotFound, "LOCATOR_NOT_FOUND"},
	media.ReasonFileNotFound:    {http.StatusInternalServerError, "FILE_NOT_FOUND"},
	media.ReasonUpstreamError:   {http.StatusBadGateway, "UPSTREAM_ERROR"},
}

func (s *Server) stream(w http.ResponseWriter, r *http.Request) {
	s.deliver(w, r, media.Request{ID: r.PathValue("id"), Intent: media.Stream})
}

// download serves whole items only; an episode download uses the series.
func (s *Server) download(w http.ResponseWriter, r *http.Request) {
	s.deliver(w, r, media.Request{ID: r.PathValue("id"), Intent: media.Download})
}

func (s *Server) streamEpisode(w http.ResponseWriter, r *http.Request) {
	season, err := pathInt(r, "season")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_NUMBER", "season must be an integer")
		return
	}
	episode, err := pathInt(r, "episode")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_NUMBER", "episode must be an integer")
		return
	}
	s.deliver(w, r, media.Request{
		ID:      r.PathValue("id"),
		Intent:  media.Stream,
		Episode: &media.EpisodeRef{Season: season, Episode: episode},
	})
}

func (s *Server) deliver(w http.ResponseWriter, r *http.Request, req media.Request) {
	log := s.logger.With("content_id", req.ID, "intent", req.Intent.String(), "request_id", RequestIDFrom(r.Context()))

	res, err := media.Resolve(s.deps.Catalog.Current(), req)
	if err != nil {
		s.writeMediaError(w, log, req.Intent, "", err)
		return
	}
	log = log.With("locality", res.Locality.String())
	res.HeadOnly = r.Method == http.MethodHead

	resp, err := s.deps.Delivery.Deliver(r.Context(), res)
	if err != nil {
		s.writeMediaError(w, log, req.Intent, res.Locality.String(), err)
		return
	}

	n, err := resp.Serve(w, r)
	if err != nil {
		// Headers are committed; the client sees a short body.
		result := "aborted"
		if errors.Is(err, media.ErrUpstream) {
			result = string(media.ReasonUpstreamError)
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, media.ErrClientWrite) {
			log.Debug("client went away mid-stream", "bytes", n, "error", err)
		} else {
			log.Warn("stream terminated early", "bytes", n, "error", err)
		}
		metrics.ObserveDelivery(req.Intent.String(), res.Locality.String(), result)
		return
	}
	metrics.ObserveDelivery(req.Intent.String(), res.Locality.String(), "ok")
}

func (s *Server) writeMediaError(w http.ResponseWriter, log *slog.Logger, intent media.Intent, locality string, err error) {
	reason, ok := media.ReasonOf(err)
	mapped, known := mediaErrors[reason]
	if !ok || !known {
		log.Error("delivery failed", "error", err)
		metrics.ObserveDelivery(intent.String(), locality, "error")
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		return
	}

	metrics.ObserveDelivery(intent.String(), locality, string(reason))
	var nf *media.NotFoundError
	if errors.As(err, &nf) {
		log.Debug("media not found", "reason", reason, "error", err)
		writeError(w, mapped.status, mapped.code, nf.Error())
		return
	}

	log.Warn("delivery failed", "reason", reason, "error", err)
	msg := "Media file not found"
	if reason == media.ReasonUpstreamError {
		msg = "Upstream media source failed"
	}
	writeError(w, mapped.status, mapped.code, msg)
}
