package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hop/bfs"
	"github.com/katalvlaran/hop/graph"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	// chain of N+1 vertices, N edges
	g := buildChain(N + 1)
	V := N + 1
	E := N

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth D
// (~2^D−1 vertices).
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 vertices, 1022 edges
	nodeCount := (1 << depth) - 1
	edgeCount := nodeCount - 1

	g := make(graph.AdjacencyList, nodeCount)
	// vertex i parents 2i+1 and 2i+2 (zero-based heap layout)
	for i := 0; 2*i+2 < nodeCount; i++ {
		g[i] = []int{2*i + 1, 2*i + 2}
	}

	b.ReportAllocs()
	b.SetBytes(int64(nodeCount + edgeCount))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_Grid runs BFS on an M×M grid (M² vertices, 2·M·(M−1)
// directed edges right and down).
func BenchmarkBFS_Grid(b *testing.B) {
	const M = 100
	V := M * M
	E := 2 * M * (M - 1)

	g := make(graph.AdjacencyList, V)
	for i := 0; i < M; i++ {
		for j := 0; j < M; j++ {
			id := i*M + j
			if i+1 < M {
				g[id] = append(g[id], (i+1)*M+j)
			}
			if j+1 < M {
				g[id] = append(g[id], i*M+j+1)
			}
		}
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_RandomSparse measures BFS on a sparse random graph.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	const V = 5000
	const E = 10000

	rnd := rand.New(rand.NewSource(42))
	g := make(graph.AdjacencyList, V)
	// random edges (may include duplicates, BFS ignores repeats)
	for k := 0; k < E; k++ {
		u := rnd.Intn(V)
		g[u] = append(g[u], rnd.Intn(V))
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_Matrix measures the O(V²) row-scan cost of the matrix
// representation on the same grid as BenchmarkBFS_Grid.
func BenchmarkBFS_Matrix(b *testing.B) {
	const M = 100
	V := M * M

	m := make(graph.AdjacencyMatrix, V)
	for i := range m {
		m[i] = make([]bool, V)
	}
	for i := 0; i < M; i++ {
		for j := 0; j < M; j++ {
			id := i*M + j
			if i+1 < M {
				m[id][(i+1)*M+j] = true
			}
			if j+1 < M {
				m[id][i*M+j+1] = true
			}
		}
	}

	b.ReportAllocs()
	b.SetBytes(int64(V * V))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(m, 0)
	}
}

// BenchmarkPaths_Chain measures full path-table reconstruction, which is
// quadratic on a chain (path to vertex i has i+1 entries).
func BenchmarkPaths_Chain(b *testing.B) {
	const N = 1000
	g := buildChain(N)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Paths(g, 0)
	}
}

// BenchmarkBFS_HookOverhead compares BFS with and without an expensive
// OnVisit hook.
func BenchmarkBFS_HookOverhead(b *testing.B) {
	const N = 1000
	V := N + 1
	E := N

	g := buildChain(V)

	// No-op hook variant
	b.Run("NoHook", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(V + E))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.BFS(g, 0)
		}
	})

	// CPU-intensive OnVisit hook variant
	b.Run("HeavyVisitHook", func(b *testing.B) {
		heavy := func(_, _ int) error {
			sum := 0
			for i := 0; i < 100; i++ {
				sum += i
			}
			_ = sum

			return nil
		}

		b.ReportAllocs()
		b.SetBytes(int64(V + E))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.BFS(g, 0, bfs.WithOnVisit(heavy))
		}
	})
}
