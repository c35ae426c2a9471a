package cli

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hop/bfs"
	"github.com/katalvlaran/hop/internal/registry"
	"github.com/katalvlaran/hop/internal/render"
)

var (
	showSrc    int
	showFormat string
	showImage  string
)

var showCmd = &cobra.Command{
	Use:   "show <graph>",
	Short: "Print a graph, optionally with its BFS tree from --src",
	Long: `show prints a catalog sample or JSON graph literal. With --src the BFS
result from that source is overlaid: distances in text and JSON output,
tree edges (solid) versus non-tree edges (dashed) in DOT and images.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	g, err := registry.ParseGraph(args[0])
	if err != nil {
		return err
	}

	var res *bfs.Result
	if showSrc >= 0 {
		if res, err = bfs.BFS(g, showSrc, bfs.WithContext(cmd.Context())); err != nil {
			return err
		}
	}

	if showImage != "" {
		var dot bytes.Buffer
		if err := render.DOT(&dot, g, res); err != nil {
			return err
		}
		if err := render.Image(dot.Bytes(), showImage); err != nil {
			return err
		}
		slog.Info("image written", "path", showImage)

		return nil
	}

	w := cmd.OutOrStdout()
	switch showFormat {
	case "text":
		if err := render.Text(w, g); err != nil {
			return err
		}
		if res == nil {
			return nil
		}
		fmt.Fprintln(w)

		return render.Text(w, res.Dist)
	case "json":
		if res != nil {
			return render.JSON(w, res)
		}

		return render.JSON(w, g)
	case "dot":
		return render.DOT(w, g, res)
	default:
		return fmt.Errorf("unknown format: %s (must be text, json, or dot)", showFormat)
	}
}

func init() {
	showCmd.Flags().IntVar(&showSrc, "src", -1, "Source vertex for the BFS overlay (-1: none)")
	showCmd.Flags().StringVar(&showFormat, "format", "text", "Output format: text, json, dot")
	showCmd.Flags().StringVar(&showImage, "render", "", "Write a rendered image to this path (.png, .svg, .jpg)")
	rootCmd.AddCommand(showCmd)
}
