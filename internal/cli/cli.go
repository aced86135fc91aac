// Package cli implements the mincover command-line interface.
//
// Two commands:
//   - solve: load an edge-list graph file, run one vertex-cover solver, and
//     print the cover in the file's original vertex ids.
//   - gen: generate a random benchmark graph (Erdős–Rényi, Barabási–Albert,
//     or Watts–Strogatz) and write it as a loadable edge list.
//
// All commands support --verbose (-v) for debug-level logging via
// charmbracelet/log; the logger travels through context.Context.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the mincover CLI; the returned error is already logged-worthy
// (cobra usage noise is silenced).
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:           "mincover",
		Short:         "Minimum Vertex Cover solvers and graph generators",
		Long:          "mincover computes vertex covers of undirected graphs with exact, approximate, and tabu-search strategies, and generates random benchmark instances.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		logger := newLogger(os.Stderr, level)
		cmd.SetContext(withLogger(cmd.Context(), logger))
	}

	root.AddCommand(newSolveCmd())
	root.AddCommand(newGenCmd())

	return root.Execute()
}

// newLogger creates a timestamped logger writing to w at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is a private context-key type to avoid collisions.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the attached logger, falling back to a default
// stderr logger so commands never nil-check.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return newLogger(os.Stderr, log.InfoLevel)
}
