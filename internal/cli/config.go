package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/mincover/mvc"
)

// solverConfig mirrors the TOML file accepted by `solve --config`.
// Flags still win over file values; the file only replaces the defaults.
//
// Example:
//
//	algo = "tabu"
//
//	[tabu]
//	max_iters = 5000
//	tenure    = 7
//	penalty   = 1000
//	seed      = 42
//	random_init = false
type solverConfig struct {
	Algo string `toml:"algo"`
	Tabu struct {
		MaxIters   int   `toml:"max_iters"`
		Tenure     int   `toml:"tenure"`
		Penalty    int   `toml:"penalty"`
		Seed       int64 `toml:"seed"`
		RandomInit bool  `toml:"random_init"`
	} `toml:"tabu"`
}

// loadConfig decodes path into a solverConfig.
func loadConfig(path string) (solverConfig, error) {
	var cfg solverConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return solverConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// algorithmByName maps CLI/config names to mvc.Algorithm.
var algorithmByName = map[string]mvc.Algorithm{
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

// parseAlgorithm resolves a user-facing algorithm name.
func parseAlgorithm(name string) (mvc.Algorithm, error) {
	if a, ok := algorithmByName[name]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("unknown algorithm %q (try: approx2, exact-memo, backtracking, branch-and-bound, iddfs, tabu)", name)
}
