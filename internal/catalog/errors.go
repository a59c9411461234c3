package catalog

import (
	"fmt"
	"strings"
)

// NotFoundError reports a lookup for a lesson or world id that does not
// exist in the catalog. It is fatal to the requested operation and is
// never swallowed.
type NotFoundError struct {
	Kind string // "lesson" or "world"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Kind, e.ID)
}

// ValidationError reports every structural problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}
