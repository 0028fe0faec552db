package media

import (
	"errors"
	"fmt"
)

// Reason names one failure in the resolution and delivery taxonomy.
// The values are stable and appear in logs and metrics.
type Reason string

const (
	ReasonContentNotFound Reason = "content_not_found"
	ReasonSeasonNotFound  Reason = "season_not_found"
	ReasonEpisodeNotFound Reason = "episode_not_found"
	ReasonLocatorNotFound Reason = "locator_not_found"
	ReasonFileNotFound    Reason = "file_not_found"
	ReasonUpstreamError   Reason = "upstream_error"
)

// Sentinels for errors.Is. Every error returned by Resolve and Deliver
// matches exactly one of them.
var (
	ErrContentNotFound = errors.New("content not found")
	ErrSeasonNotFound  = errors.New("season not found")
	ErrEpisodeNotFound = errors.New("episode not found")
	ErrLocatorNotFound = errors.New("locator not found")
	ErrFileNotFound    = errors.New("file not found")
	ErrUpstream        = errors.New("upstream error")
)

var sentinels = map[Reason]error{
	ReasonContentNotFound: ErrContentNotFound,
	ReasonSeasonNotFound:  ErrSeasonNotFound,
	ReasonEpisodeNotFound: ErrEpisodeNotFound,
	ReasonLocatorNotFound: ErrLocatorNotFound,
	ReasonFileNotFound:    ErrFileNotFound,
	ReasonUpstreamError:   ErrUpstream,
}

// NotFoundError is a resolution miss. Season and Episode are set for the
// structural misses inside a series.
type NotFoundError struct {
	Reason  Reason
	ID      string
	Season  int
	Episode int
}

func (e *NotFoundError) Error() string {
	switch e.Reason {
	case ReasonSeasonNotFound:
		return fmt.Sprintf("Season %d not found", e.Season)
	case ReasonEpisodeNotFound:
		return fmt.Sprintf("Episode %d not found in season %d", e.Episode, e.Season)
	case ReasonLocatorNotFound:
		return fmt.Sprintf("No media locator for content %s", e.ID)
	default:
		return fmt.Sprintf("Content %s not found", e.ID)
	}
}

func (e *NotFoundError) Is(target error) bool { return sentinels[e.Reason] == target }

// DeliveryError is a failure to reach the media behind a resolved locator.
type DeliveryError struct {
	Reason  Reason
	Locator string
	Err     error
}

func (e *DeliveryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", sentinels[e.Reason], e.Locator)
	}
	return fmt.Sprintf("%s: %s: %v", sentinels[e.Reason], e.Locator, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

func (e *DeliveryError) Is(target error) bool { return sentinels[e.Reason] == target }

// ReasonOf extracts the taxonomy reason from err.
func ReasonOf(err error) (Reason, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Reason, true
	}
	var de *DeliveryError
	if errors.As(err, &de) {
		return de.Reason, true
	}
	return "", false
}

func fileNotFound(locator string, err error) error {
	return &DeliveryError{Reason: ReasonFileNotFound, Locator: locator, Err: err}
}

func upstreamError(locator string, err error) error {
	return &DeliveryError{Reason: ReasonUpstreamError, Locator: locator, Err: err}
}
