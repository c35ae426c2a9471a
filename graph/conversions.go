// Package graph: converters between the two representations
// and a flat edge-list view.
package graph

// Edge is a flat representation of a single directed edge u→v.
type Edge struct {
	U int `json:"u"`
	V int `json:"v"`
}

// Edges returns all edges of g as a flat slice, rows in vertex order and
// each row in g's own enumeration order. Multi-edges of an AdjacencyList
// appear once per occurrence. The graph is assumed validated.
//
// Complexity: O(V + E) for lists, O(V²) for matrices.
func Edges(g Graph) []Edge {
	var out []Edge
	for u := 0; u < g.Order(); u++ {
		for _, v := range g.Neighbors(u) {
			out = append(out, Edge{U: u, V: v})
		}
	}

	return out
}

// ToMatrix converts l into the boolean adjacency-matrix encoding of the
// same edge set. Repeated neighbors collapse to a single true cell, so the
// conversion is lossy for multi-edges. Validation runs first; on failure
// the error is returned and no matrix is built.
//
// Complexity: O(V² + E)
// Memory: O(V²)
func ToMatrix(l AdjacencyList) (AdjacencyMatrix, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	n := len(l)
	m := make(AdjacencyMatrix, n)
	for i := range m {
		m[i] = make([]bool, n)
	}
	for u, row := range l {
		for _, v := range row {
			m[u][v] = true
		}
	}

	return m, nil
}

// ToList converts m into the adjacency-list encoding of the same edge set,
// neighbors in ascending index order (the matrix enumeration order, so
// traversal tie-breaks are preserved across the conversion). Validation
// runs first; on failure the error is returned and no list is built.
//
// Complexity: O(V²)
func ToList(m AdjacencyMatrix) (AdjacencyList, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	l := make(AdjacencyList, len(m))
	for u := range m {
		l[u] = m.Neighbors(u)
	}

	return l, nil
}
