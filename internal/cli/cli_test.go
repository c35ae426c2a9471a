package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hop/bfs"
	"github.com/katalvlaran/hop/internal/registry"
)

// execute resets flag state (cobra keeps parsed values between runs),
// runs the root command with args, and captures combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	debug, noColor = false, true
	runSrc, runFormat = 0, "text"
	showSrc, showFormat, showImage = -1, "text", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), err
}

func TestOps_ListsRegistry(t *testing.T) {
	out, err := execute(t, "ops", "--no-color")
	require.NoError(t, err)
	for _, name := range registry.Names() {
		assert.Contains(t, out, name)
	}
}

func TestGraphs_ListsCatalog(t *testing.T) {
	out, err := execute(t, "graphs", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "dag-sparse")
	assert.Contains(t, out, "matrix, 6 vertices")
	assert.Contains(t, out, "solo")
}

func TestRun_DistancesText(t *testing.T) {
	out, err := execute(t, "run", "bfs.distances", "dag-sparse", "--src", "0", "--no-color")
	require.NoError(t, err)
	assert.Equal(t,
		"   idx  value\n"+
			"     0  0\n"+
			"     1  1\n"+
			"     2  1\n"+
			"     3  2\n"+
			"     4  2\n"+
			"     5  2\n",
		out)
}

func TestRun_DistancesJSONNullUnreachable(t *testing.T) {
	out, err := execute(t, "run", "bfs.distances", "islands", "--src", "0", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[0,1,null,null,null]`, out)
}

func TestRun_PathsLiteral(t *testing.T) {
	out, err := execute(t, "run", "bfs.paths", "[[1,2],[3],[3],[]]", "--src", "0", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[[0],[0,1],[0,2],[0,1,3]]`, out)
}

func TestRun_UnknownOp(t *testing.T) {
	_, err := execute(t, "run", "bfs.quantum", "dag-sparse")
	assert.ErrorIs(t, err, registry.ErrUnknownOp)
}

func TestRun_SourceOutOfRange(t *testing.T) {
	_, err := execute(t, "run", "bfs.distances", "dag-sparse", "--src", "10")
	assert.ErrorIs(t, err, bfs.ErrVertexOutOfRange)
}

func TestRun_BadFormat(t *testing.T) {
	_, err := execute(t, "run", "bfs.distances", "dag-sparse", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestShow_DOTOverlay(t *testing.T) {
	out, err := execute(t, "show", "ring", "--src", "0", "--format", "dot")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph hop {")
	assert.Contains(t, out, `0 [label="0 (0)"];`)
	assert.Contains(t, out, "3 -> 0 [style=dashed];")
}

func TestShow_TextWithDistances(t *testing.T) {
	out, err := execute(t, "show", "islands", "--src", "0", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "vertex  out-neighbors")
	assert.Contains(t, out, "5 vertices, 2 edges")
	assert.Contains(t, out, "unreachable")
}

func TestShow_RenderImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.svg")
	_, err := execute(t, "show", "ring", "--render", path)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
