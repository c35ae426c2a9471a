package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/hop/bfs"
	"github.com/katalvlaran/hop/graph"
)

// header is the column-header style for all text output. It degrades to
// plain text when color.NoColor is set (--no-color, dumb terminals).
var header = color.New(color.FgCyan, color.Bold)

// Text writes v in human-readable form: an integer vector (distances or
// visit order, with bfs.Unreachable shown as "unreachable"), a path
// table, or a graph listing. Any other type is ErrUnsupported.
func Text(w io.Writer, v any) error {
	switch x := v.(type) {
	case []int:
		return intVector(w, x)
	case [][]int:
		return pathTable(w, x)
	case graph.Graph:
		return listing(w, x)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

// intVector prints one row per entry. The index column is the vertex for
// distance vectors and the step number for visit orders.
func intVector(w io.Writer, vec []int) error {
	header.Fprintln(w, "   idx  value")
	for i, d := range vec {
		fmt.Fprintf(w, "%6d  %s\n", i, cell(d))
	}

	return nil
}

// pathTable prints each vertex's reconstructed path as hop → hop → hop.
func pathTable(w io.Writer, table [][]int) error {
	header.Fprintln(w, "vertex  path")
	for v, path := range table {
		steps := make([]string, len(path))
		for i, p := range path {
			steps[i] = strconv.Itoa(p)
		}
		fmt.Fprintf(w, "%6d  %s\n", v, strings.Join(steps, " → "))
	}

	return nil
}

// listing prints one out-neighbor row per vertex plus a summary line.
func listing(w io.Writer, g graph.Graph) error {
	header.Fprintln(w, "vertex  out-neighbors")
	edges := 0
	for u := 0; u < g.Order(); u++ {
		ns := g.Neighbors(u)
		edges += len(ns)
		row := "-"
		if len(ns) > 0 {
			steps := make([]string, len(ns))
			for i, v := range ns {
				steps[i] = strconv.Itoa(v)
			}
			row = strings.Join(steps, " ")
		}
		fmt.Fprintf(w, "%6d  %s\n", u, row)
	}
	fmt.Fprintf(w, "%d vertices, %d edges\n", g.Order(), edges)

	return nil
}

func cell(d int) string {
	if d == bfs.Unreachable {
		return "unreachable"
	}

	return strconv.Itoa(d)
}
