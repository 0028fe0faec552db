// internal/config/validate.go
package config

import (
	"fmt"
	"os"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validLogFormats = map[string]bool{
	"text": true, "json": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}
	if !validLogFormats[c.Server.LogFormat] {
		errs = append(errs, fmt.Sprintf("server.log_format: must be one of text, json; got %q", c.Server.LogFormat))
	}
	if c.Server.RateLimit < 0 {
		errs = append(errs, fmt.Sprintf("server.rate_limit: must not be negative, got %d", c.Server.RateLimit))
	}

	// Catalog files must exist before the server can build a catalog
	if c.Catalog.Content == "" {
		errs = append(errs, "catalog.content: required")
	} else if _, err := os.Stat(c.Catalog.Content); err != nil {
		errs = append(errs, fmt.Sprintf("catalog.content: %q not readable: %v", c.Catalog.Content, err))
	}
	if c.Catalog.Categories != "" {
		if _, err := os.Stat(c.Catalog.Categories); err != nil {
			errs = append(errs, fmt.Sprintf("catalog.categories: %q not readable: %v", c.Catalog.Categories, err))
		}
	}

	// Delivery validation
	if c.Delivery.ProbeTimeout < 0 {
		errs = append(errs, fmt.Sprintf("delivery.probe_timeout: must not be negative, got %s", c.Delivery.ProbeTimeout))
	}
	if c.Delivery.MediaRoot != "" {
		if info, err := os.Stat(c.Delivery.MediaRoot); err != nil || !info.IsDir() {
			errs = append(errs, fmt.Sprintf("delivery.media_root: %q is not a directory", c.Delivery.MediaRoot))
		}
	}

	// Metadata providers are optional, but a configured one needs a key
	if c.Metadata.TMDB != nil && c.Metadata.TMDB.APIKey == "" {
		errs = append(errs, "metadata.tmdb.api_key: required when tmdb is configured")
	}
	if c.Metadata.TMDB != nil && c.Metadata.TMDB.CacheTTL < 0 {
		errs = append(errs, fmt.Sprintf("metadata.tmdb.cache_ttl: must not be negative, got %s", c.Metadata.TMDB.CacheTTL))
	}
	if c.Metadata.OMDB != nil && c.Metadata.OMDB.APIKey == "" {
		errs = append(errs, "metadata.omdb.api_key: required when omdb is configured")
	}

	return errs
}
