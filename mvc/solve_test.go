package mvc_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincover/graph"
	"github.com/katalvlaran/mincover/mvc"
)

// exactAlgos lists every strategy that must return a true minimum cover.
var exactAlgos = []mvc.Algorithm{
	mvc.ExactMemo,
	mvc.Backtracking,
	mvc.BranchAndBound,
	mvc.IDDFS,
}

// mustGraph builds a graph or fails the test.
func mustGraph(t *testing.T, n int, edges []graph.Edge) *graph.Graph {
	t.Helper()
	g, err := graph.New(n, edges)
	require.NoError(t, err)
	return g
}

// requireValidCover asserts that cover (as vertex indices) touches every edge.
func requireValidCover(t *testing.T, g *graph.Graph, cover []int) {
	t.Helper()
	member := make([]bool, g.NumVertices())
	for _, v := range cover {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, g.NumVertices())
		member[v] = true
	}
	require.True(t, g.IsCoverValid(member), "cover %v leaves edges uncovered", cover)
}

// diamondChain is six vertices with minimum cover size 3 (e.g. {0,3,4}).
func diamondChain(t *testing.T) *graph.Graph {
	t.Helper()
	return mustGraph(t, 6, []graph.Edge{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 3},
		{U: 2, V: 3}, {U: 2, V: 4}, {U: 3, V: 4}, {U: 4, V: 5},
	})
}

// star3Plus is K1,3 plus the chord (1,2); minimum cover size 2 ({0,1} or {0,2}).
func star3Plus(t *testing.T) *graph.Graph {
	t.Helper()
	return mustGraph(t, 4, []graph.Edge{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 1, V: 2},
	})
}

// cycle5 is the 5-cycle; minimum cover size 3.
func cycle5(t *testing.T) *graph.Graph {
	t.Helper()
	return mustGraph(t, 5, []graph.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 0},
	})
}

func TestSolve_ExactMinimumSizes(t *testing.T) {
	cases := []struct {
		name string
		g    *graph.Graph
		want int
	}{
		{name: "diamond chain", g: diamondChain(t), want: 3},
		{name: "star plus chord", g: star3Plus(t), want: 2},
		{name: "five cycle", g: cycle5(t), want: 3},
	}

	for _, tc := range cases {
		for _, algo := range exactAlgos {
			t.Run(tc.name+"/"+algo.String(), func(t *testing.T) {
				res, err := mvc.Solve(tc.g, mvc.Options{Algo: algo})
				require.NoError(t, err)
				require.Len(t, res.Cover, tc.want)
				require.Equal(t, tc.want, res.Cost)
				requireValidCover(t, tc.g, res.Cover)
				require.IsIncreasing(t, res.Cover)
			})
		}
	}
}

func TestSolve_EdgelessGraph(t *testing.T) {
	g := mustGraph(t, 5, nil)

	algos := append([]mvc.Algorithm{mvc.Approx2, mvc.TabuSearch}, exactAlgos...)
	for _, algo := range algos {
		t.Run(algo.String(), func(t *testing.T) {
			res, err := mvc.Solve(g, mvc.Options{Algo: algo})
			require.NoError(t, err)
			require.Empty(t, res.Cover)
			require.Zero(t, res.Cost)
		})
	}
}

func TestSolve_SingleEdge(t *testing.T) {
	g := mustGraph(t, 2, []graph.Edge{{U: 0, V: 1}})

	for _, algo := range exactAlgos {
		res, err := mvc.Solve(g, mvc.Options{Algo: algo})
		require.NoError(t, err, algo.String())
		require.Len(t, res.Cover, 1, algo.String())
		requireValidCover(t, g, res.Cover)
	}
}

func TestSolve_SelfLoopForcesVertex(t *testing.T) {
	// A loop at 2 can only be covered by 2 itself.
	g := mustGraph(t, 3, []graph.Edge{{U: 0, V: 1}, {U: 2, V: 2}})

	for _, algo := range exactAlgos {
		res, err := mvc.Solve(g, mvc.Options{Algo: algo})
		require.NoError(t, err, algo.String())
		require.Len(t, res.Cover, 2, algo.String())
		require.Contains(t, res.Cover, 2, algo.String())
		requireValidCover(t, g, res.Cover)
	}
}

func TestSolve_NilGraph(t *testing.T) {
	_, err := mvc.Solve(nil, mvc.Options{})
	require.ErrorIs(t, err, mvc.ErrNilGraph)
}

func TestSolve_UnsupportedAlgorithm(t *testing.T) {
	g := mustGraph(t, 1, nil)
	_, err := mvc.Solve(g, mvc.Options{Algo: mvc.Algorithm(42)})
	require.ErrorIs(t, err, mvc.ErrUnsupportedAlgorithm)
}

func TestSolve_NegativeOptions(t *testing.T) {
	g := mustGraph(t, 1, nil)

	_, err := mvc.Solve(g, mvc.Options{Algo: mvc.TabuSearch, MaxIters: -1})
	require.ErrorIs(t, err, mvc.ErrNegativeOption)

	_, err = mvc.Solve(g, mvc.Options{Algo: mvc.TabuSearch, TabuTenure: -1})
	require.ErrorIs(t, err, mvc.ErrNegativeOption)

	_, err = mvc.Solve(g, mvc.Options{Algo: mvc.ExactMemo, TimeLimit: -time.Second})
	require.ErrorIs(t, err, mvc.ErrNegativeOption)
}

func TestSolve_PenaltyTooSmall(t *testing.T) {
	g := cycle5(t)

	// Explicit penalties at or below n are rejected; only tabu cares.
	_, err := mvc.Solve(g, mvc.Options{Algo: mvc.TabuSearch, Penalty: 5})
	require.ErrorIs(t, err, mvc.ErrPenaltyTooSmall)

	_, err = mvc.Solve(g, mvc.Options{Algo: mvc.TabuSearch, Penalty: 6})
	require.NoError(t, err)
}

func TestSolve_TimeLimitExpires(t *testing.T) {
	// Dense enough that the exact searches cannot finish in one nanosecond.
	var edges []graph.Edge
	const n = 40
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if (u+v)%3 != 0 {
				edges = append(edges, graph.Edge{U: u, V: v})
			}
		}
	}
	g := mustGraph(t, n, edges)

	for _, algo := range exactAlgos {
		_, err := mvc.Solve(g, mvc.Options{Algo: algo, TimeLimit: time.Nanosecond})
		require.ErrorIs(t, err, mvc.ErrTimeLimit, algo.String())
	}
}

func TestAlgorithm_String(t *testing.T) {
	require.Equal(t, "approx2", mvc.Approx2.String())
	require.Equal(t, "exact-memo", mvc.ExactMemo.String())
	require.Equal(t, "backtracking", mvc.Backtracking.String())
	require.Equal(t, "branch-and-bound", mvc.BranchAndBound.String())
	require.Equal(t, "iddfs", mvc.IDDFS.String())
	require.Equal(t, "tabu", mvc.TabuSearch.String())
	require.Equal(t, "unknown", mvc.Algorithm(-1).String())
}
