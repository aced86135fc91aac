package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincover/graph"
)

func TestNew_RejectsOutOfRangeEndpoints(t *testing.T) {
	_, err := graph.New(3, []graph.Edge{{U: 0, V: 3}})
	require.ErrorIs(t, err, graph.ErrInvalidVertexIndex)

	_, err = graph.New(3, []graph.Edge{{U: -1, V: 1}})
	require.ErrorIs(t, err, graph.ErrInvalidVertexIndex)

	_, err = graph.New(-1, nil)
	require.ErrorIs(t, err, graph.ErrNegativeVertexCount)
}

func TestNew_EmptyGraph(t *testing.T) {
	g, err := graph.New(0, nil)
	require.NoError(t, err)
	require.Equal(t, 0, g.NumVertices())
	require.Equal(t, 0, g.NumEdges())
	require.True(t, g.IsCoverValid(nil))
}

func TestNew_SelfLoopDroppedFromAdjacency(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{{U: 0, V: 0}, {U: 0, V: 1}})
	require.NoError(t, err)

	// The loop stays in the edge list but never reaches adjacency.
	require.Equal(t, 2, g.NumEdges())
	require.Equal(t, []int{1}, g.Neighbors(0))
	require.Equal(t, 1, g.Degree(0))

	// A loop at 0 is covered iff 0 is in the cover.
	require.Equal(t, 2, g.CountUncovered([]bool{false, false}))
	require.Equal(t, 0, g.CountUncovered([]bool{true, false}))
}

func TestAdjacency_SymmetricWithDuplicates(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 0}, {U: 1, V: 2}})
	require.NoError(t, err)

	// Parallel edges are kept verbatim on both sides.
	require.Equal(t, []int{1, 1}, g.Neighbors(0))
	require.Equal(t, []int{0, 0, 2}, g.Neighbors(1))
	require.Equal(t, 2, g.Degree(0))
	require.Equal(t, 3, g.Degree(1))
}

func TestCountUncovered(t *testing.T) {
	g, err := graph.New(4, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}})
	require.NoError(t, err)

	require.Equal(t, 3, g.CountUncovered([]bool{false, false, false, false}))
	require.Equal(t, 1, g.CountUncovered([]bool{false, true, false, false}))
	require.Equal(t, 0, g.CountUncovered([]bool{false, true, false, true}))

	// Short and nil vectors mean "not covered".
	require.Equal(t, 3, g.CountUncovered(nil))
	require.Equal(t, 2, g.CountUncovered([]bool{true}))
}

func TestIsCoverValid(t *testing.T) {
	g, err := graph.New(4, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}})
	require.NoError(t, err)

	require.False(t, g.IsCoverValid([]bool{true, false, false, false}))
	require.True(t, g.IsCoverValid([]bool{false, true, false, true}))
	require.True(t, g.IsCoverValid([]bool{true, true, true, true}))
}

func TestAccessors_ReturnDefensiveCopies(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{{U: 0, V: 1}})
	require.NoError(t, err)

	edges := g.Edges()
	edges[0] = graph.Edge{U: 1, V: 1}
	require.Equal(t, []graph.Edge{{U: 0, V: 1}}, g.Edges())

	nbrs := g.Neighbors(0)
	nbrs[0] = 99
	require.Equal(t, []int{1}, g.Neighbors(0))
}

func TestNeighbors_OutOfRange(t *testing.T) {
	g, err := graph.New(1, nil)
	require.NoError(t, err)
	require.Nil(t, g.Neighbors(5))
	require.Zero(t, g.Degree(-1))
}

func TestNew_CopiesEdgeSlice(t *testing.T) {
	in := []graph.Edge{{U: 0, V: 1}}
	g, err := graph.New(2, in)
	require.NoError(t, err)

	in[0] = graph.Edge{U: 1, V: 1}
	require.Equal(t, []graph.Edge{{U: 0, V: 1}}, g.Edges())
}
