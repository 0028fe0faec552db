package catalog

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// loadFixture builds the catalog in testdata/.
func loadFixture(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadFiles(filepath.Join("testdata", "content.yaml"), filepath.Join("testdata", "categories.yaml"))
	require.NoError(t, err, "load fixture catalog")
	return c
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }
