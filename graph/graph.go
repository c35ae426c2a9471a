// Package graph: representation types and the Graph contract.
package graph

import "fmt"

// Graph is the read-only view traversal algorithms consume. Both concrete
// representations (AdjacencyList, AdjacencyMatrix) satisfy it.
//
// Implementations must be pure: Neighbors may not mutate the receiver, and
// repeated calls with the same argument return the same sequence.
type Graph interface {
	// Order returns the vertex count n; vertices are indexed 0..n-1.
	Order() int

	// Neighbors returns the out-neighbors of u in the representation's
	// enumeration order. u must satisfy 0 ≤ u < Order() on a validated
	// graph; behavior on an unvalidated graph is undefined.
	Neighbors(u int) []int

	// Validate checks structural soundness and returns ErrEmptyGraph or
	// ErrMalformedGraph (wrapped with position context) on failure.
	Validate() error
}

// AdjacencyList encodes a directed graph as one neighbor row per vertex:
// row u lists every v with an edge u→v, in caller-chosen order. The order
// is preserved and meaningful — traversals enumerate it as stored.
type AdjacencyList [][]int

// Order returns the number of vertices.
// Complexity: O(1)
func (l AdjacencyList) Order() int { return len(l) }

// Neighbors returns the stored neighbor row of u. The returned slice is
// the backing row itself, not a copy; callers must treat it as read-only.
// Complexity: O(1)
func (l AdjacencyList) Neighbors(u int) []int { return l[u] }

// Validate checks every neighbor index against [0, n).
// Returns ErrEmptyGraph when n < 1, or ErrMalformedGraph wrapped with the
// offending row and index.
// Complexity: O(V + E)
func (l AdjacencyList) Validate() error {
	n := len(l)
	if n < 1 {
		return ErrEmptyGraph
	}
	for u, row := range l {
		for _, v := range row {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: list row %d: neighbor %d outside [0,%d)", ErrMalformedGraph, u, v, n)
			}
		}
	}

	return nil
}

// AdjacencyMatrix encodes a directed graph as an n×n boolean table:
// cell [u][v] == true means the edge u→v exists. Only true is an edge;
// false (and nothing else — the type admits nothing else) means absence.
type AdjacencyMatrix [][]bool

// Order returns the number of vertices.
// Complexity: O(1)
func (m AdjacencyMatrix) Order() int { return len(m) }

// Neighbors scans row u and returns the set columns in ascending index
// order. Ascending enumeration is a guarantee: among equal-length shortest
// paths, traversals built on it prefer the smallest next-hop index.
// Complexity: O(V)
func (m AdjacencyMatrix) Neighbors(u int) []int {
	var out []int
	for v, edge := range m[u] {
		if edge {
			out = append(out, v)
		}
	}

	return out
}

// Validate checks that every row has length n.
// Returns ErrEmptyGraph when n < 1, or ErrMalformedGraph wrapped with the
// offending row and its length.
// Complexity: O(V)
func (m AdjacencyMatrix) Validate() error {
	n := len(m)
	if n < 1 {
		return ErrEmptyGraph
	}
	for u, row := range m {
		if len(row) != n {
			return fmt.Errorf("%w: matrix row %d has length %d, want %d", ErrMalformedGraph, u, len(row), n)
		}
	}

	return nil
}
