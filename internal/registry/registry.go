// Package registry resolves the CLI's named operations against a fixed,
// compile-time table. Arguments are parsed into typed values up front —
// graph names against the catalog, graph literals with a JSON decoder —
// and nothing user-supplied is ever evaluated as code.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/hop/bfs"
	"github.com/katalvlaran/hop/graph"
	"github.com/katalvlaran/hop/internal/catalog"
)

var (
	// ErrUnknownOp is returned when no operation has the given name.
	ErrUnknownOp = errors.New("registry: unknown operation")

	// ErrBadLiteral is returned when an argument is neither a catalog
	// name nor a well-formed JSON graph literal.
	ErrBadLiteral = errors.New("registry: malformed graph literal")
)

// Input carries the typed arguments every operation receives.
type Input struct {
	Graph graph.Graph
	Src   int
}

// Op is one named operation: metadata for the help surfaces plus the
// typed entry point. Run returns []int or [][]int, handed to a renderer.
type Op struct {
	Name    string
	Summary string
	Usage   string
	Run     func(ctx context.Context, in Input) (any, error)
}

// ops is the whole operation surface. Adding an operation means adding a
// row here; there is no dynamic registration.
var ops = []Op{
	{
		Name:    "bfs.distances",
		Summary: "Shortest-path distances (edge counts) from the source to every vertex.",
		Usage:   "hop run bfs.distances <graph> --src N",
		Run: func(ctx context.Context, in Input) (any, error) {
			res, err := bfs.BFS(in.Graph, in.Src, bfs.WithContext(ctx))
			if err != nil {
				return nil, err
			}

			return res.Dist, nil
		},
	},
	{
		Name:    "bfs.paths",
		Summary: "Explicit shortest paths from the source to every vertex.",
		Usage:   "hop run bfs.paths <graph> --src N",
		Run: func(ctx context.Context, in Input) (any, error) {
			res, err := bfs.BFS(in.Graph, in.Src, bfs.WithContext(ctx))
			if err != nil {
				return nil, err
			}

			return res.Paths(), nil
		},
	},
	{
		Name:    "bfs.order",
		Summary: "Vertices in breadth-first visit order from the source.",
		Usage:   "hop run bfs.order <graph> --src N",
		Run: func(ctx context.Context, in Input) (any, error) {
			res, err := bfs.BFS(in.Graph, in.Src, bfs.WithContext(ctx))
			if err != nil {
				return nil, err
			}

			return res.Order, nil
		},
	},
}

// Lookup returns the operation called name, or ErrUnknownOp.
func Lookup(name string) (Op, error) {
	for _, op := range ops {
		if op.Name == name {
			return op, nil
		}
	}

	return Op{}, fmt.Errorf("%w: %q (see 'hop ops' for the list)", ErrUnknownOp, name)
}

// Names returns every operation name in table order.
func Names() []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.Name
	}

	return out
}

// All returns the operation table in declared order.
func All() []Op {
	out := make([]Op, len(ops))
	copy(out, ops)

	return out
}

// ParseGraph resolves arg into a typed graph value: a catalog name, or —
// when it starts with '[' — a JSON literal. [[1,2],[0]] decodes as an
// adjacency list, [[false,true],[true,false]] as a boolean adjacency
// matrix. The result is validated before being returned.
func ParseGraph(arg string) (graph.Graph, error) {
	if !strings.HasPrefix(strings.TrimSpace(arg), "[") {
		e, err := catalog.Get(arg)
		if err != nil {
			return nil, err
		}

		return e.Graph()
	}

	return parseLiteral(arg)
}

// parseLiteral decodes a JSON graph literal, trying the integer rows of
// an adjacency list first and boolean rows second. The two shapes are
// mutually exclusive under strict JSON decoding, so the order only
// matters for the all-empty case [[]], which reads as a list.
func parseLiteral(arg string) (graph.Graph, error) {
	data := []byte(arg)

	var l graph.AdjacencyList
	if err := json.Unmarshal(data, &l); err == nil {
		if err := l.Validate(); err != nil {
			return nil, err
		}

		return l, nil
	}

	var m graph.AdjacencyMatrix
	if err := json.Unmarshal(data, &m); err == nil {
		if err := m.Validate(); err != nil {
			return nil, err
		}

		return m, nil
	}

	return nil, fmt.Errorf("%w: want [[int,…],…] or [[bool,…],…], got %q", ErrBadLiteral, arg)
}
