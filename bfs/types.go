// Package bfs provides tunable options, result types, and error
// definitions for breadth-first search over a graph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gopkg.in/karalabe/cookiejar.v2/collections/stack"
)

// Unreachable is the distance recorded for vertices with no path from the
// source: the maximum int, standing in for +infinity. A finite BFS
// distance is at most Order()-1, so Unreachable can never collide with a
// real distance the way a small finite sentinel could.
const Unreachable = math.MaxInt

// NoParent marks Parent entries that have no predecessor in the BFS tree:
// the source vertex and every unreachable vertex.
const NoParent = -1

// Sentinel errors for BFS execution. Structural errors of the graph value
// itself (graph.ErrEmptyGraph, graph.ErrMalformedGraph) are surfaced
// directly from Validate, so callers match every failure with errors.Is.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrVertexOutOfRange is returned when a vertex index is outside
	// [0, n): the source in BFS, or the destination in PathTo.
	ErrVertexOutOfRange = errors.New("bfs: vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the destination was not
	// reached from the source.
	ErrNoPath = errors.New("bfs: no path to destination")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines, checked once per dequeue.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	// Receives the vertex index and its depth from the source.
	OnEnqueue func(v, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(v, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge u→v in enumeration order.
	FilterNeighbor func(u, v int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
//
// The defaults reproduce plain single-source BFS exactly.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(v, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: vertices beyond depth d stay undiscovered (Unreachable)
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips edges for which fn returns false.
func WithFilterNeighbor(fn func(u, v int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices in visit sequence.
//   - Dist: per-vertex distance (in edges) from the source, or
//     Unreachable when no path exists. Dist[src] == 0 always.
//   - Parent: per-vertex predecessor in the BFS tree, or NoParent for
//     the source and for unreachable vertices.
//
// All three slices have length Order() and are freshly allocated per run;
// nothing is shared between calls.
type Result struct {
	Order  []int
	Dist   []int
	Parent []int
}

// newResult allocates a Result for n vertices with every vertex
// undiscovered: Dist all Unreachable, Parent all NoParent.
func newResult(n int) *Result {
	res := &Result{
		Order:  make([]int, 0, n),
		Dist:   make([]int, n),
		Parent: make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Dist[v] = Unreachable
		res.Parent[v] = NoParent
	}

	return res
}

// Reachable reports whether v was reached from the source.
// Complexity: O(1)
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Unreachable
}

// PathTo reconstructs the shortest path source → … → dest by walking the
// Parent chain backward and reversing. For the source itself the path is
// the single-element sequence [source].
// Returns ErrVertexOutOfRange if dest is not a vertex, or ErrNoPath if
// dest was never reached.
// Complexity: O(len(path))
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("%w: destination %d outside [0,%d)", ErrVertexOutOfRange, dest, len(r.Dist))
	}
	if r.Dist[dest] == Unreachable {
		return nil, fmt.Errorf("%w: vertex %d", ErrNoPath, dest)
	}

	// Collect dest → … → source onto a stack, then pop it back off to
	// emit the path in source → dest order.
	rev := stack.New()
	for cur := dest; cur != NoParent; cur = r.Parent[cur] {
		rev.Push(cur)
	}
	path := make([]int, 0, rev.Size())
	for !rev.Empty() {
		path = append(path, rev.Pop().(int))
	}

	return path, nil
}

// Paths returns the full shortest-path table: entry v is the vertex
// sequence source → … → v. For an unreachable v the entry degenerates to
// [v] alone (its parent chain is empty); callers telling reachability
// apart from a genuine single-vertex path must consult Dist or Reachable.
// Complexity: O(V + total path length)
func (r *Result) Paths() [][]int {
	table := make([][]int, len(r.Dist))
	for v := range table {
		if r.Dist[v] == Unreachable {
			table[v] = []int{v}
			continue
		}
		path, _ := r.PathTo(v) // reachable, cannot fail
		table[v] = path
	}

	return table
}
