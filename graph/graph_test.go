package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hop/graph"
)

// sparseDAG builds the six-vertex DAG used across the test suite:
// 0→{1,2,4}, 2→{3,4,5}, 4→{3,5}; vertices 1, 3, 5 are sinks.
func sparseDAG() graph.AdjacencyList {
	return graph.AdjacencyList{
		{1, 2, 4},
		{},
		{3, 4, 5},
		{},
		{3, 5},
		{},
	}
}

// sparseDAGMatrix is the boolean-matrix encoding of sparseDAG.
func sparseDAGMatrix() graph.AdjacencyMatrix {
	return graph.AdjacencyMatrix{
		{false, true, true, false, true, false},
		{false, false, false, false, false, false},
		{false, false, false, true, true, true},
		{false, false, false, false, false, false},
		{false, false, false, true, false, true},
		{false, false, false, false, false, false},
	}
}

func TestAdjacencyList_OrderAndNeighbors(t *testing.T) {
	l := sparseDAG()
	assert.Equal(t, 6, l.Order())
	assert.Equal(t, []int{1, 2, 4}, l.Neighbors(0))
	assert.Empty(t, l.Neighbors(1))
	assert.Equal(t, []int{3, 5}, l.Neighbors(4))
}

func TestAdjacencyList_NeighborOrderPreserved(t *testing.T) {
	// Stored order is semantic; Neighbors must not sort.
	l := graph.AdjacencyList{{2, 1, 0}, {}, {}}
	assert.Equal(t, []int{2, 1, 0}, l.Neighbors(0))
}

func TestAdjacencyList_Validate_OK(t *testing.T) {
	assert.NoError(t, sparseDAG().Validate())
}

func TestAdjacencyList_Validate_SelfLoopAndMultiEdge(t *testing.T) {
	// Self-loops and repeated neighbors are legal.
	l := graph.AdjacencyList{{0, 1, 1}, {0}}
	assert.NoError(t, l.Validate())
}

func TestAdjacencyList_Validate_Empty(t *testing.T) {
	assert.ErrorIs(t, graph.AdjacencyList{}.Validate(), graph.ErrEmptyGraph)
	assert.ErrorIs(t, graph.AdjacencyList(nil).Validate(), graph.ErrEmptyGraph)
}

func TestAdjacencyList_Validate_NeighborOutOfRange(t *testing.T) {
	high := graph.AdjacencyList{{1}, {2}} // 2 is outside [0,2)
	err := high.Validate()
	assert.ErrorIs(t, err, graph.ErrMalformedGraph)
	assert.Contains(t, err.Error(), "row 1")

	negative := graph.AdjacencyList{{-1}, {}}
	assert.ErrorIs(t, negative.Validate(), graph.ErrMalformedGraph)
}

func TestAdjacencyMatrix_OrderAndNeighbors(t *testing.T) {
	m := sparseDAGMatrix()
	assert.Equal(t, 6, m.Order())
	assert.Equal(t, []int{1, 2, 4}, m.Neighbors(0))
	assert.Equal(t, []int{3, 4, 5}, m.Neighbors(2))
	assert.Empty(t, m.Neighbors(5))
}

func TestAdjacencyMatrix_NeighborsAscending(t *testing.T) {
	m := graph.AdjacencyMatrix{
		{true, false, true},
		{false, false, false},
		{true, true, true},
	}
	assert.Equal(t, []int{0, 2}, m.Neighbors(0))
	assert.Equal(t, []int{0, 1, 2}, m.Neighbors(2))
}

func TestAdjacencyMatrix_Validate_OK(t *testing.T) {
	assert.NoError(t, sparseDAGMatrix().Validate())
}

func TestAdjacencyMatrix_Validate_Empty(t *testing.T) {
	assert.ErrorIs(t, graph.AdjacencyMatrix{}.Validate(), graph.ErrEmptyGraph)
}

func TestAdjacencyMatrix_Validate_RaggedRow(t *testing.T) {
	m := graph.AdjacencyMatrix{
		{false, true},
		{false},
	}
	err := m.Validate()
	assert.ErrorIs(t, err, graph.ErrMalformedGraph)
	assert.Contains(t, err.Error(), "row 1")
}

func TestValidate_InterfaceDispatch(t *testing.T) {
	// Both representations satisfy Graph with their own validation.
	for _, g := range []graph.Graph{sparseDAG(), sparseDAGMatrix()} {
		assert.NoError(t, g.Validate())
		assert.Equal(t, 6, g.Order())
	}
}
