// Package cli wires the hop command tree: a fixed set of subcommands over
// the operation registry and the sample-graph catalog. Data output goes to
// stdout, logs to stderr. Nothing user-supplied is ever evaluated as code;
// arguments resolve against the registry and catalog or parse as JSON.
package cli

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags
	debug   bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "hop",
	Short: "Breadth-first shortest hops over adjacency-list and matrix graphs",
	Long: `hop computes breadth-first-search results over directed graphs supplied
as adjacency lists or boolean adjacency matrices.

Graphs are named catalog samples (see 'hop graphs') or JSON literals:
  [[1,2],[0],[]]                  adjacency list
  [[false,true],[true,false]]     adjacency matrix

Examples:
  # Distances from vertex 0 on a bundled sample
  hop run bfs.distances dag-sparse --src 0

  # Shortest paths over a literal, as JSON
  hop run bfs.paths '[[1,2],[3],[3],[]]' --src 0 --format json

  # Render the BFS tree from vertex 0 to an image
  hop show dag-sparse --src 0 --render tree.png`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: level,
		})))

		if noColor {
			color.NoColor = true
		}
	},
}

// Execute runs the root command; any error exits nonzero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}
