package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincover/dataset"
	"github.com/katalvlaran/mincover/graph"
)

func TestRead_BasicRemap(t *testing.T) {
	in := strings.Join([]string{
		"# Nodes: 4 Edges: 3",
		"",
		"100 7",
		"7 250",
		"250 100",
	}, "\n")

	g, ids, stats, err := dataset.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 3, g.NumEdges())
	require.Equal(t, dataset.Stats{Lines: 3}, stats)

	// Dense ids follow ascending original ids: 7→0, 100→1, 250→2.
	require.Equal(t, 3, ids.Len())
	orig, ok := ids.Original(0)
	require.True(t, ok)
	require.Equal(t, int64(7), orig)
	orig, ok = ids.Original(2)
	require.True(t, ok)
	require.Equal(t, int64(250), orig)

	_, ok = ids.Original(3)
	require.False(t, ok)
}

func TestRead_CleanupCounters(t *testing.T) {
	in := strings.Join([]string{
		"1 2",
		"2 1",     // duplicate after normalization
		"3 3",     // self-loop
		"4",       // malformed: one field
		"5 x",     // malformed: not an integer
		"1 2 3",   // malformed: three fields
		"2 3",
	}, "\n")

	g, _, stats, err := dataset.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, dataset.Stats{Lines: 7, Malformed: 3, Loops: 1, Duplicates: 1}, stats)
	require.Equal(t, 2, g.NumEdges())
	require.Equal(t, 3, g.NumVertices()) // ids 1, 2, 3; the loop vertex never registers
}

func TestRead_EmptyStream(t *testing.T) {
	g, ids, stats, err := dataset.Read(strings.NewReader("# only comments\n\n"))
	require.NoError(t, err)
	require.Equal(t, 0, g.NumVertices())
	require.Zero(t, ids.Len())
	require.Equal(t, dataset.Stats{}, stats)
}

func TestRemapCover(t *testing.T) {
	in := "10 20\n20 30\n"
	_, ids, _, err := dataset.Read(strings.NewReader(in))
	require.NoError(t, err)

	require.Equal(t, []int64{10, 30}, ids.RemapCover([]int{0, 2}))
	require.Equal(t, []int64{20}, ids.RemapCover([]int{1, 99})) // out of range skipped
	require.Empty(t, ids.RemapCover(nil))
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, _, err := dataset.Load(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteRead_RoundTrip(t *testing.T) {
	g, err := graph.New(4, []graph.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3},
	})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, dataset.Write(&sb, g, "generated for round-trip"))
	require.True(t, strings.HasPrefix(sb.String(), "# generated for round-trip\n"))

	back, ids, stats, err := dataset.Read(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Equal(t, g.NumVertices(), back.NumVertices())
	require.Equal(t, g.NumEdges(), back.NumEdges())
	require.Equal(t, dataset.Stats{Lines: 3}, stats)

	// Dense indices written as-is map back to themselves.
	for v := 0; v < ids.Len(); v++ {
		orig, ok := ids.Original(v)
		require.True(t, ok)
		require.Equal(t, int64(v), orig)
	}
}

func TestLoad_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte("# sample\n0 1\n1 2\n"), 0o644))

	g, _, stats, err := dataset.Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 2, g.NumEdges())
	require.Equal(t, 2, stats.Lines)
}
