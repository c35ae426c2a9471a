package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hop/internal/registry"
	"github.com/katalvlaran/hop/internal/render"
)

var (
	runSrc    int
	runFormat string
)

var runCmd = &cobra.Command{
	Use:   "run <op> <graph>",
	Short: "Execute a named operation against a graph",
	Long: `run resolves <op> in the fixed operation registry, parses <graph> as a
catalog name or a JSON graph literal, executes the operation, and renders
the result to stdout.`,
	Args: cobra.ExactArgs(2),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	op, err := registry.Lookup(args[0])
	if err != nil {
		return err
	}
	g, err := registry.ParseGraph(args[1])
	if err != nil {
		return err
	}

	slog.Debug("running operation",
		"op", op.Name,
		"order", g.Order(),
		"src", runSrc)

	out, err := op.Run(cmd.Context(), registry.Input{Graph: g, Src: runSrc})
	if err != nil {
		return err
	}

	switch runFormat {
	case "text":
		return render.Text(cmd.OutOrStdout(), out)
	case "json":
		return render.JSON(cmd.OutOrStdout(), out)
	default:
		return fmt.Errorf("unknown format: %s (must be text or json)", runFormat)
	}
}

func init() {
	runCmd.Flags().IntVar(&runSrc, "src", 0, "Source vertex")
	runCmd.Flags().StringVar(&runFormat, "format", "text", "Output format: text, json")
	rootCmd.AddCommand(runCmd)
}
