// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Delivery DeliveryConfig `toml:"delivery"`
	Metadata MetadataConfig `toml:"metadata"`
}

type ServerConfig struct {
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	RateLimit int    `toml:"rate_limit"` // requests per minute per client IP, 0 disables
}

// CatalogConfig points at the YAML files the catalog is built from.
type CatalogConfig struct {
	Content    string `toml:"content"`
	Categories string `toml:"categories"`
	Watch      bool   `toml:"watch"`
}

type DeliveryConfig struct {
	ProbeTimeout time.Duration `toml:"probe_timeout"`
	MediaRoot    string        `toml:"media_root"`
}

type MetadataConfig struct {
	TMDB *TMDBConfig `toml:"tmdb"`
	OMDB *OMDBConfig `toml:"omdb"`
}

type TMDBConfig struct {
	APIKey   string        `toml:"api_key"`
	BaseURL  string        `toml:"base_url"`
	CacheTTL time.Duration `toml:"cache_ttl"` // 0 disables the details cache
}

type OMDBConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

const (
	DefaultHost         = "0.0.0.0"
	DefaultPort         = 8000
	DefaultProbeTimeout = 10 * time.Second
)

// Load reads, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &Error{Path: path, Problems: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file and applies
// defaults. Unresolved environment variables are still an error.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// A .env next to the working directory supplies secrets; real env wins.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		e := &Error{Path: path}
		for _, name := range missing {
			e.add("unset environment variable %s", name)
		}
		return nil, e
	}

	var cfg Config
	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults(md)
	return &cfg, nil
}

// applyDefaults fills zero values. An explicitly empty categories path
// means the catalog has no categories, so it only defaults when absent.
func (c *Config) applyDefaults(md toml.MetaData) {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Server.LogFormat == "" {
		c.Server.LogFormat = "text"
	}
	if c.Catalog.Content == "" {
		c.Catalog.Content = "config/content.yaml"
	}
	if !md.IsDefined("catalog", "categories") {
		c.Catalog.Categories = "config/categories.yaml"
	}
	if c.Delivery.ProbeTimeout == 0 {
		c.Delivery.ProbeTimeout = DefaultProbeTimeout
	}
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// envVarPattern matches ${NAME}, ${NAME:-default} and ${NAME:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces environment references and reports the ones
// that could not be resolved. Unresolved references are left in place.
// Comments are copied through untouched.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	expand := func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, name+": "+strings.TrimSpace(arg))
				return match
			}
			return value
		}

		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		code, comment := splitComment(line)
		lines[i] = envVarPattern.ReplaceAllStringFunc(code, expand) + comment
	}
	return strings.Join(lines, "\n"), missing
}

// splitComment cuts line at the first # that is not inside a basic or
// literal string. Multi-line strings are not tracked.
func splitComment(line string) (code, comment string) {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote == 0 && c == '#':
			return line[:i], line[i:]
		case quote == 0 && (c == '"' || c == '\''):
			quote = c
		case quote == '"' && c == '\\':
			i++
		case c == quote:
			quote = 0
		}
	}
	return line, ""
}
