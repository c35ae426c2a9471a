// Package graph defines the two integer-indexed graph representations the
// hop traversal engine consumes: an adjacency list and a boolean adjacency
// matrix, both describing a directed graph on the vertex set {0..n-1}.
//
// What
//
//   - AdjacencyList: row u holds the out-neighbors of u in caller-chosen
//     order. That order is semantic: traversals enumerate it as given, so it
//     decides which of several equal-length shortest paths is discovered
//     first. Self-loops and repeated neighbors are allowed.
//   - AdjacencyMatrix: cell [u][v] == true means the edge u→v exists.
//     Only boolean true counts; there is no "truthy" interpretation.
//     Neighbors are always enumerated in ascending index order.
//   - Graph: the read-only contract (Order, Neighbors, Validate) both
//     representations satisfy and algorithms consume.
//   - Edges / ToMatrix / ToList: flat edge listing and loss-aware
//     conversions between the two encodings.
//
// Why
//
//   - Keep traversal code representation-agnostic while preserving each
//     encoding's iteration-order guarantees.
//   - Validate structure once, up front, with typed sentinel errors instead
//     of panicking mid-traversal on a bad index.
//
// Determinism
//
//	Neighbors is pure and ordered for both encodings (stored order for
//	lists, ascending index for matrices), so every algorithm built on Graph
//	is reproducible run to run.
//
// Errors
//
//   - ErrEmptyGraph     if the representation has no vertices (n < 1).
//   - ErrMalformedGraph if a matrix row has length ≠ n, or a list neighbor
//     index falls outside [0, n).
//
// Validation failures are reported before any traversal work; see Validate
// on each representation.
package graph
