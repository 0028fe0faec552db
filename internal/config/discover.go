package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigPath names the variable that overrides config discovery.
const EnvConfigPath = "MACFLIX_CONFIG"

// ErrNotFound means no candidate config file exists.
var ErrNotFound = errors.New("config not found")

// DefaultPath returns the XDG config path, where config init writes.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "macflix", "config.toml")
}

// SearchPaths lists the discovery candidates in order. config/config.toml
// sits beside the default content.yaml and categories.yaml.
func SearchPaths() []string {
	return []string{
		"config.toml",
		filepath.Join("config", "config.toml"),
		DefaultPath(),
		"/etc/macflix/config.toml",
	}
}

// Discover returns $MACFLIX_CONFIG when set, otherwise the first of
// SearchPaths that exists.
func Discover() (string, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfigPath, envPath, err)
		}
		return envPath, nil
	}

	paths := SearchPaths()
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}
