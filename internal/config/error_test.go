package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_ListsEveryProblem(t *testing.T) {
	e := &Error{Path: "/etc/macflix/config.toml"}
	e.add("unset environment variable %s", "TMDB_API_KEY")
	e.add("server.port: must be between 1 and 65535, got %d", 0)

	assert.Equal(t, "invalid config /etc/macflix/config.toml:\n"+
		"  - unset environment variable TMDB_API_KEY\n"+
		"  - server.port: must be between 1 and 65535, got 0", e.Error())
}

func TestLoad_ErrorCollectsAllMissingVars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[metadata.tmdb]
api_key = "${MACFLIX_TEST_UNSET_TMDB}"

[metadata.omdb]
api_key = "${MACFLIX_TEST_UNSET_OMDB:?get one at omdbapi.com}"
`), 0644))

	_, err := LoadWithoutValidation(path)
	var cfgErr *Error
	require.True(t, errors.As(err, &cfgErr), "expected *Error, got %v", err)
	assert.Equal(t, path, cfgErr.Path)
	assert.Equal(t, []string{
		"unset environment variable MACFLIX_TEST_UNSET_TMDB",
		"unset environment variable MACFLIX_TEST_UNSET_OMDB: get one at omdbapi.com",
	}, cfgErr.Problems)
}

func TestLoad_ErrorCarriesValidationProblems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
log_format = "xml"

[catalog]
content = "/nonexistent/content.yaml"
categories = ""
`), 0644))

	_, err := Load(path)
	var cfgErr *Error
	require.True(t, errors.As(err, &cfgErr), "expected *Error, got %v", err)
	require.Len(t, cfgErr.Problems, 2)
	assert.Contains(t, cfgErr.Problems[0], "server.log_format")
	assert.Contains(t, cfgErr.Problems[1], "catalog.content")
}
