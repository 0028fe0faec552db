package config

import (
	"fmt"
	"strings"
)

// Error aggregates problems found in a config file: unresolved environment
// variables while loading, or failed checks from Validate.
type Error struct {
	Path     string
	Problems []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid config %s:\n  - %s", e.Path, strings.Join(e.Problems, "\n  - "))
}

func (e *Error) add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}
