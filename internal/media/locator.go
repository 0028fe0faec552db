// Package media resolves catalog content to a media locator and delivers
// it as a byte stream, a redirect or a file download.
package media

import "net/url"

// Locality says where a locator points.
type Locality int

const (
	// Local is a filesystem path.
	Local Locality = iota
	// Remote is a URL with a scheme and a host.
	Remote
)

func (l Locality) String() string {
	if l == Remote {
		return "remote"
	}
	return "local"
}

// Classify reports whether locator is a remote URL or a local path. Only a
// locator that parses with both a scheme and a host is Remote; anything
// else, including unparseable input, is treated as a path. Callers must not
// pass an empty locator.
func Classify(locator string) Locality {
	u, err := url.Parse(locator)
	if err != nil {
		return Local
	}
	if u.Scheme != "" && u.Host != "" {
		return Remote
	}
	return Local
}
