// Package hop is a breadth-first-search toolkit for directed graphs
// supplied as adjacency lists or boolean adjacency matrices.
//
// 🚀 What is hop?
//
//	A small, deterministic BFS engine plus the surfaces around it:
//		• Distances: shortest-path edge counts from a single source
//		• Paths: explicit routes via predecessor-chain reconstruction
//		• Hooks: OnEnqueue / OnDequeue / OnVisit, depth limits, edge filters
//		• A CLI: fixed operation registry, sample catalog, text/JSON/DOT/image output
//
// ✨ Why hop?
//
//   - One engine, one edge rule — a matrix cell is an edge only when true
//   - Real infinity — unreachable distances carry a dedicated sentinel,
//     never a small magic integer that could collide with a real distance
//   - O(1) frontier — a ring-buffer FIFO keeps traversal at O(V+E)
//   - Errors, not nils — empty graphs, bad sources and malformed inputs
//     surface as typed sentinel errors
//
// Everything is organized under focused packages:
//
//	graph/    — the two representations, validation, converters, edge lists
//	bfs/      — the traversal engine: Result{Order, Dist, Parent}, PathTo
//	cmd/hop   — the command-line harness over an explicit operation registry
//	examples/ — runnable end-to-end demos
//
// Quick ASCII example:
//
//	0 ──► 1
//	│
//	▼
//	2 ──► 3
//
//	bfs.Distances(graph.AdjacencyList{{1, 2}, {}, {3}, {}}, 0) → [0 1 1 2]
//
//	go get github.com/katalvlaran/hop
package hop
