package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hop/internal/catalog"
)

var graphsCmd = &cobra.Command{
	Use:   "graphs",
	Short: "List the bundled sample graphs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		for _, e := range catalog.All() {
			g, err := e.Graph()
			if err != nil {
				return err
			}
			color.New(color.Bold).Fprint(w, e.Name)
			fmt.Fprintf(w, "  (%s, %d vertices)\n  %s\n", e.Kind(), g.Order(), e.Blurb)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphsCmd)
}
