package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/hop/bfs"
	"github.com/katalvlaran/hop/graph"
)

// DOT writes g as a Graphviz digraph. A non-nil res adds the BFS overlay:
// node labels carry the distance from the source (∞ for unreachable),
// BFS-tree edges stay solid, and every other edge renders dashed.
func DOT(w io.Writer, g graph.Graph, res *bfs.Result) error {
	fmt.Fprintln(w, "digraph hop {")
	fmt.Fprintln(w, "  rankdir=LR;")
	fmt.Fprintln(w, "  node [shape=circle];")
	fmt.Fprintln(w, "")

	for v := 0; v < g.Order(); v++ {
		if res == nil {
			fmt.Fprintf(w, "  %d;\n", v)
			continue
		}
		fmt.Fprintf(w, "  %d [label=\"%d (%s)\"];\n", v, v, dotDist(res.Dist[v]))
	}

	fmt.Fprintln(w, "")

	for _, e := range graph.Edges(g) {
		// An edge is a tree edge when the traversal discovered V over it.
		if res != nil && res.Parent[e.V] != e.U {
			fmt.Fprintf(w, "  %d -> %d [style=dashed];\n", e.U, e.V)
			continue
		}
		fmt.Fprintf(w, "  %d -> %d;\n", e.U, e.V)
	}

	fmt.Fprintln(w, "}")

	return nil
}

func dotDist(d int) string {
	if d == bfs.Unreachable {
		return "∞"
	}

	return strconv.Itoa(d)
}
