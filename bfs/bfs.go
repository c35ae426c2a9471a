// Package bfs provides breadth-first search over a graph.Graph,
// returning unweighted shortest-path distances, parent links, and visit
// order.
//
// BFS explores vertices in increasing distance from a source vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"gopkg.in/karalabe/cookiejar.v2/collections/queue"

	"github.com/katalvlaran/hop/graph"
)

// walker encapsulates mutable BFS state for a single run.
type walker struct {
	graph    graph.Graph
	opts     Options
	frontier *queue.Queue // FIFO ring buffer of vertex indices
	res      *Result
}

// BFS runs breadth-first search on g starting from src, applying any
// number of functional Options.
//
// Validation runs before any traversal work, in order: nil graph →
// ErrGraphNil; invalid option → ErrOptionViolation; g.Validate() →
// graph.ErrEmptyGraph or graph.ErrMalformedGraph; src outside [0, n) →
// ErrVertexOutOfRange. On any error, including a hook error or
// cancellation mid-run, no partial result is returned.
//
// The traversal is a pure function of its inputs: g is never mutated, no
// state survives the call, and concurrent runs over the same graph are
// safe as long as nothing mutates g during the calls.
//
// Complexity: O(V + E) time for adjacency lists, O(V²) for adjacency
// matrices (row scans); O(V) additional memory.
func BFS(g graph.Graph, src int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate structure, then the source index against it.
	if err := g.Validate(); err != nil {
		return nil, err
	}
	n := g.Order()
	if src < 0 || src >= n {
		return nil, fmt.Errorf("%w: source %d outside [0,%d)", ErrVertexOutOfRange, src, n)
	}

	// Prepare walker.
	w := &walker{
		graph:    g,
		opts:     o,
		frontier: queue.New(),
		res:      newResult(n),
	}

	// Seed the frontier with the source at depth 0 (no parent).
	w.enqueue(src, 0, NoParent)
	// Main loop.
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// Distances runs BFS from src and returns only the distance vector:
// entry v is the edge count of the shortest path src→v, or Unreachable.
// Convenience wrapper over BFS; errors are identical.
func Distances(g graph.Graph, src int) ([]int, error) {
	res, err := BFS(g, src)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// Paths runs BFS from src and returns the full shortest-path table (see
// Result.Paths for the degenerate unreachable entries).
// Convenience wrapper over BFS; errors are identical.
func Paths(g graph.Graph, src int) ([][]int, error) {
	res, err := BFS(g, src)
	if err != nil {
		return nil, err
	}

	return res.Paths(), nil
}

// enqueue records v as discovered at depth d with the given parent,
// invokes OnEnqueue, and pushes v onto the frontier. Dist doubles as the
// visited set: any value but Unreachable means already discovered.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Dist[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.frontier.Push(v)
}

// loop processes the frontier until empty, error, or cancellation.
func (w *walker) loop() error {
	for !w.frontier.Empty() {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.dequeue()
		if err := w.visit(u); err != nil {
			return err
		}
		w.enqueueNeighbors(u)
	}

	return nil
}

// dequeue pops the next vertex in FIFO order, invokes OnDequeue, and
// returns it.
func (w *walker) dequeue() int {
	u := w.frontier.Pop().(int)
	w.opts.OnDequeue(u, w.res.Dist[u])

	return u
}

// visit records u in Order and calls OnVisit.
func (w *walker) visit(u int) error {
	w.res.Order = append(w.res.Order, u)
	if err := w.opts.OnVisit(u, w.res.Dist[u]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at vertex %d: %w", u, err)
	}

	return nil
}

// enqueueNeighbors enumerates u's out-neighbors in the representation's
// order (stored order for lists, ascending index for matrices — the
// first-discovered-wins tie-break), applies filtering and MaxDepth, and
// enqueues each undiscovered neighbor.
func (w *walker) enqueueNeighbors(u int) {
	for _, v := range w.graph.Neighbors(u) {
		if !w.opts.FilterNeighbor(u, v) {
			continue
		}
		nextDepth := w.res.Dist[u] + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if w.res.Dist[v] == Unreachable {
			w.enqueue(v, nextDepth, u)
		}
	}
}
