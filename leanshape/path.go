package leanshape

import (
	"strings"
)

const pathSeparator = "."

// Path is a dot-separated path expression into a nested document, e.g.
// "contributors._id". Segments name object keys; when traversal meets an
// array before the final segment, the remaining segments are re-applied to
// every element of that array (fan-out, never indexing).
type Path string

// Segments splits the path into its ordered list of segments.
// An empty path has no segments.
func (p Path) Segments() []string {
	if p == "" {
		return nil
	}

	return strings.Split(string(p), pathSeparator)
}

// IsZero reports whether the path is empty.
func (p Path) IsZero() bool {
	return p == ""
}
