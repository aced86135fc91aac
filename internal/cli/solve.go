package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mincover/dataset"
	"github.com/katalvlaran/mincover/mvc"
)

// solveOpts holds the flags of the solve command.
type solveOpts struct {
	algo       string
	config     string
	maxIters   int
	tenure     int
	penalty    int
	seed       int64
	randomInit bool
	timeLimit  time.Duration
}

// newSolveCmd builds the solve command: load a graph file, run one solver,
// print the cover in original vertex ids (one per line) to stdout.
func newSolveCmd() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <graph-file>",
		Short: "Compute a vertex cover of an edge-list graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.algo, "algo", "a", "approx2", "algorithm: approx2, exact-memo, backtracking, branch-and-bound, iddfs, tabu")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML file with solver parameters")
	cmd.Flags().IntVar(&opts.maxIters, "max-iters", 0, "tabu: iteration budget (0 = default)")
	cmd.Flags().IntVar(&opts.tenure, "tenure", 0, "tabu: tabu tenure (0 = default)")
	cmd.Flags().IntVar(&opts.penalty, "penalty", 0, "tabu: uncovered-edge penalty (0 = derive)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "tabu: RNG seed (0 = fixed default stream)")
	cmd.Flags().BoolVar(&opts.randomInit, "random-init", false, "tabu: start from a random 50/50 assignment")
	cmd.Flags().DurationVar(&opts.timeLimit, "time-limit", 0, "soft wall-clock budget for exact searches (0 = unlimited)")

	return cmd
}

// runSolve executes the solve pipeline.
func runSolve(cmd *cobra.Command, path string, opts solveOpts) error {
	logger := loggerFromContext(cmd.Context())

	mvcOpts, err := buildOptions(cmd, opts)
	if err != nil {
		return err
	}

	g, idmap, stats, err := dataset.Load(path)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %s: %d vertices, %d edges", path, g.NumVertices(), g.NumEdges())
	if stats.Malformed > 0 || stats.Loops > 0 || stats.Duplicates > 0 {
		logger.Debugf("Cleanup: %d malformed, %d loops, %d duplicates skipped",
			stats.Malformed, stats.Loops, stats.Duplicates)
	}

	start := time.Now()
	res, err := mvc.Solve(g, mvcOpts)
	if err != nil {
		return err
	}
	logger.Infof("%s: cover size %d, cost %d (%s)",
		mvcOpts.Algo, len(res.Cover), res.Cost, time.Since(start).Round(time.Millisecond))

	for _, id := range idmap.RemapCover(res.Cover) {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}

// buildOptions folds config-file values and flags into mvc.Options.
// Precedence: built-in defaults < config file < explicit flags.
func buildOptions(cmd *cobra.Command, opts solveOpts) (mvc.Options, error) {
	out := mvc.Options{
		MaxIters:   opts.maxIters,
		TabuTenure: opts.tenure,
		Penalty:    opts.penalty,
		Seed:       opts.seed,
		RandomInit: opts.randomInit,
		TimeLimit:  opts.timeLimit,
	}

	algoName := opts.algo
	if opts.config != "" {
		cfg, err := loadConfig(opts.config)
		if err != nil {
			return mvc.Options{}, err
		}
		if cfg.Algo != "" && !cmd.Flags().Changed("algo") {
			algoName = cfg.Algo
		}
		if !cmd.Flags().Changed("max-iters") {
			out.MaxIters = cfg.Tabu.MaxIters
		}
		if !cmd.Flags().Changed("tenure") {
			out.TabuTenure = cfg.Tabu.Tenure
		}
		if !cmd.Flags().Changed("penalty") {
			out.Penalty = cfg.Tabu.Penalty
		}
		if !cmd.Flags().Changed("seed") {
			out.Seed = cfg.Tabu.Seed
		}
		if !cmd.Flags().Changed("random-init") {
			out.RandomInit = cfg.Tabu.RandomInit
		}
	}

	algo, err := parseAlgorithm(algoName)
	if err != nil {
		return mvc.Options{}, err
	}
	out.Algo = algo
	return out, nil
}
