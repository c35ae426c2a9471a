// Package bfs provides breadth-first search over the integer-indexed
// graph representations of package graph, returning unweighted
// shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a
//     source vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Dist: per-vertex distance from the source (Unreachable if none)
//   - Parent: per-vertex predecessor in the BFS tree (NoParent if none)
//   - Reconstructs explicit shortest paths from the Parent chain:
//     Result.PathTo for one destination, Result.Paths for the full table.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs and level layering.
//   - One engine for both graph encodings instead of one near-duplicate
//     per encoding.
//
// Determinism
//
//	Neighbor enumeration order is fixed by the representation (stored
//	order for AdjacencyList, ascending index for AdjacencyMatrix) and the
//	frontier is strictly FIFO, so the visit sequence — and therefore
//	which of several equal-length shortest paths gets recorded — is fully
//	reproducible.
//
// Unreachable vertices
//
//	Dist carries Unreachable (max int, the stand-in for +infinity) for
//	vertices with no path from the source; it can never collide with a
//	real distance. In the Paths table such vertices degenerate to the
//	single-element sequence [v] because their parent chain is empty —
//	check Dist or Reachable to tell the two apart.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E) for adjacency lists, O(V²) for adjacency matrices
//   - Memory: O(V) (frontier, Dist, Parent, Order)
//
// Usage
//
//	// Distances only:
//	dist, err := bfs.Distances(g, 0)
//
//	// Full path table:
//	paths, err := bfs.Paths(g, 0)
//
//	// Full control:
//	res, err := bfs.BFS(
//	    g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(u, v int) bool { return v != 4 }),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit,
//     no filtering — plain BFS.
//   - WithContext(ctx):       cancellation, checked once per dequeue.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn): skip edges for which fn(u,v)==false.
//   - WithOnEnqueue(fn):      hook before a vertex is enqueued.
//   - WithOnDequeue(fn):      hook immediately before visiting.
//   - WithOnVisit(fn):        hook during visit; error aborts the run.
//
// Errors
//
//   - ErrGraphNil              if the graph value is nil.
//   - graph.ErrEmptyGraph      if the graph has no vertices.
//   - graph.ErrMalformedGraph  if the representation is structurally bad.
//   - ErrVertexOutOfRange      if src (or a PathTo destination) is not in [0, n).
//   - ErrOptionViolation       if an invalid Option is supplied.
//   - ErrNoPath                from PathTo for unreachable destinations.
//   - Wrapped user-supplied hook errors from OnVisit.
//
// All validation runs before traversal; on any error no partial result is
// returned.
package bfs
