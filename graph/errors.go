// Package graph: sentinel error definitions.
// All validation failures resolve to one of these sentinels; callers match
// them with errors.Is. Context (row, index, bound) is attached by wrapping,
// never by inventing new error values.
package graph

import "errors"

var (
	// ErrEmptyGraph is returned when a representation has no vertices
	// (n < 1). An empty graph has no valid source vertex, so every
	// traversal on it is an error, never a silent empty result.
	ErrEmptyGraph = errors.New("graph: empty graph")

	// ErrMalformedGraph is returned when a representation is structurally
	// inconsistent: an adjacency-matrix row whose length differs from the
	// vertex count, or an adjacency-list neighbor index outside [0, n).
	ErrMalformedGraph = errors.New("graph: malformed graph")
)
