package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincover/mvc"
)

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]mvc.Algorithm{
		"approx2":          mvc.Approx2,
		"approx":           mvc.Approx2,
		"exact-memo":       mvc.ExactMemo,
		"exact":            mvc.ExactMemo,
		"backtracking":     mvc.Backtracking,
		"branch-and-bound": mvc.BranchAndBound,
		"bnb":              mvc.BranchAndBound,
		"iddfs":            mvc.IDDFS,
		"tabu":             mvc.TabuSearch,
	}
	for name, want := range cases {
		got, err := parseAlgorithm(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}

	_, err := parseAlgorithm("simulated-annealing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown algorithm")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.toml")
	body := `
algo = "tabu"

[tabu]
max_iters = 5000
tenure = 9
penalty = 2000
seed = 42
random_init = true
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "tabu", cfg.Algo)
	require.Equal(t, 5000, cfg.Tabu.MaxIters)
	require.Equal(t, 9, cfg.Tabu.Tenure)
	require.Equal(t, 2000, cfg.Tabu.Penalty)
	require.Equal(t, int64(42), cfg.Tabu.Seed)
	require.True(t, cfg.Tabu.RandomInit)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
