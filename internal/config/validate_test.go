// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	tmp := t.TempDir()
	return &Config{
		Catalog: CatalogConfig{Content: writeCatalog(t, tmp)},
	}
}

func TestValidate_MinimalValid(t *testing.T) {
	cfg := validConfig(t)
	errs := cfg.Validate()
	assert.Empty(t, errs, "expected no errors for minimal valid config")
}

func TestValidate_MissingCatalog(t *testing.T) {
	cfg := &Config{}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "catalog.content: required"), "expected catalog error, got %v", errs)
}

func TestValidate_CatalogFileMissing(t *testing.T) {
	cfg := &Config{Catalog: CatalogConfig{Content: "/nonexistent/content.yaml"}}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "catalog.content"), "expected catalog error, got %v", errs)
}

func TestValidate_CategoriesFileMissing(t *testing.T) {
	cfg := validConfig(t)
	cfg.Catalog.Categories = "/nonexistent/categories.yaml"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "catalog.categories"), "expected categories error, got %v", errs)
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig(t)
	cfg.Server.Port = 99999
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "server.port"), "expected port error, got %v", errs)
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig(t)
	cfg.Server.LogLevel = "verbose"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "log_level"), "expected log_level error, got %v", errs)
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	cfg := validConfig(t)
	cfg.Server.LogFormat = "xml"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "log_format"), "expected log_format error, got %v", errs)
}

func TestValidate_NegativeRateLimit(t *testing.T) {
	cfg := validConfig(t)
	cfg.Server.RateLimit = -1
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "server.rate_limit"), "expected rate_limit error, got %v", errs)
}

func TestValidate_NegativeProbeTimeout(t *testing.T) {
	cfg := validConfig(t)
	cfg.Delivery.ProbeTimeout = -time.Second
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "delivery.probe_timeout"), "expected probe_timeout error, got %v", errs)
}

func TestValidate_MediaRootNotDir(t *testing.T) {
	cfg := validConfig(t)
	cfg.Delivery.MediaRoot = cfg.Catalog.Content // a file, not a directory
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "delivery.media_root"), "expected media_root error, got %v", errs)
}

func TestValidate_MetadataKeys(t *testing.T) {
	cfg := validConfig(t)
	cfg.Metadata.TMDB = &TMDBConfig{}
	cfg.Metadata.OMDB = &OMDBConfig{}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "metadata.tmdb.api_key"), "expected tmdb error, got %v", errs)
	assert.True(t, containsError(errs, "metadata.omdb.api_key"), "expected omdb error, got %v", errs)
}

func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestValidate_NegativeTMDBCacheTTL(t *testing.T) {
	cfg := validConfig(t)
	cfg.Metadata.TMDB = &TMDBConfig{APIKey: "k", CacheTTL: -time.Minute}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "metadata.tmdb.cache_ttl"), "expected cache_ttl error, got %v", errs)
}
