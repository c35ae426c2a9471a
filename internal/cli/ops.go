package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hop/internal/registry"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the operations 'hop run' accepts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		for _, op := range registry.All() {
			color.New(color.Bold).Fprintln(w, op.Name)
			fmt.Fprintf(w, "  %s\n  usage: %s\n", op.Summary, op.Usage)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(opsCmd)
}
