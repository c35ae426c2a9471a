package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"
)

// Image rasterizes DOT source to the file at path, with the Graphviz
// output format inferred from the path's extension (.png, .svg, .jpg).
func Image(dot []byte, path string) error {
	format, err := formatFor(path)
	if err != nil {
		return err
	}

	ctx := context.Background()
	g, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("render: init graphviz: %w", err)
	}
	parsed, err := graphviz.ParseBytes(dot)
	if err != nil {
		g.Close()
		return fmt.Errorf("render: parse dot: %w", err)
	}
	defer func() {
		parsed.Close()
		g.Close()
	}()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %s: %w", path, err)
	}
	if err := g.Render(ctx, parsed, format, f); err != nil {
		f.Close()
		return fmt.Errorf("render: %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: %s: %w", path, err)
	}

	return nil
}

func formatFor(path string) (graphviz.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return graphviz.PNG, nil
	case ".svg":
		return graphviz.SVG, nil
	case ".jpg", ".jpeg":
		return graphviz.JPG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadImagePath, path)
	}
}
