// Package render writes operation results and graphs to an io.Writer in
// the CLI's output formats: human text, indented JSON, Graphviz DOT, and
// rasterized images of the DOT output.
package render

import "errors"

var (
	// ErrUnsupported is returned when a renderer receives a value type
	// it has no representation for.
	ErrUnsupported = errors.New("render: unsupported value type")

	// ErrBadImagePath is returned when an image path carries an
	// extension no Graphviz format matches.
	ErrBadImagePath = errors.New("render: unsupported image extension")
)
