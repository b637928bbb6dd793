package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/decision"
	"github.com/katalvlaran/spanforest/internal/config"
)

const sixCycle = `# six vertices, chord 0-3
0 1 5
1 2 2
2 3 6
3 4 3
4 5 7
5 0 4
0 3 9
`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"SPANFOREST_ALGORITHMS", "SPANFOREST_PRECOMPUTED", "SPANFOREST_ERROR_RATE",
		"SPANFOREST_PARTITION_SIZE", "SPANFOREST_REQUIRE_CONNECTED", "SPANFOREST_LOG"} {
		t.Setenv(k, "")
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestReadEdges(t *testing.T) {
	vertices, edges, err := readEdges(strings.NewReader(sixCycle + "\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, vertices)
	require.Len(t, edges, 7)
	assert.Equal(t, core.NewWeighted(0, 3, 9.0), edges[6])

	vertices, edges, err = readEdges(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, vertices)
	assert.Empty(t, edges)
}

func TestReadEdges_Errors(t *testing.T) {
	for _, in := range []string{
		"0 1\n",
		"0 1 2 3\n",
		"a 1 2\n",
		"0 -1 2\n",
		"0 1 heavy\n",
	} {
		_, _, err := readEdges(strings.NewReader(in))
		assert.Error(t, err, "input %q", in)
	}

	_, _, err := readEdges(strings.NewReader("0 1 1\n0 x 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestWriteForest(t *testing.T) {
	var buf bytes.Buffer
	forest := []core.Weighted[float64]{core.NewWeighted(1, 2, 2.0), core.NewWeighted(0, 1, 0.5)}
	require.NoError(t, writeForest(&buf, forest, 1500*time.Microsecond))
	assert.Equal(t, "1 2  2\n0 1  0.5\nTotal weight: 2.5\nTook 1 ms\n\n", buf.String())
}

func TestRun_AllAlgorithms(t *testing.T) {
	out, err := execute(t, sixCycle, "run", "prim", "kruskal", "boruvka", "ft", "pr", "--partition-size", "3")
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, "Total weight: 20\n"), out)
	assert.Equal(t, 5, strings.Count(out, "Took "))
}

func TestRun_DefaultsToPettieRamachandran(t *testing.T) {
	out, err := execute(t, sixCycle, "run")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "Total weight: 20\n"))
}

func TestRun_LogArgument(t *testing.T) {
	out, err := execute(t, sixCycle, "run", "kruskal", "log")
	require.NoError(t, err)
	assert.Contains(t, out, "Total weight: 20")
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, sixCycle, "run", "dijkstra")
	assert.Error(t, err)

	_, err = execute(t, "0 1 1\n2 3 1\n", "run", "kruskal", "--require-connected")
	assert.Error(t, err)

	_, err = execute(t, "0 1\n", "run", "kruskal")
	assert.Error(t, err)

	_, err = execute(t, sixCycle, "run", "pr", "--error-rate", "1.5")
	assert.Error(t, err)

	_, err = execute(t, sixCycle, "run", "--precomputed", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spanforest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithms: [boruvka, ft]\n"), 0644))

	out, err := execute(t, sixCycle, "--config", path, "run")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Total weight: 20\n"))
}

func TestPrecomputeThenRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trees")

	_, err := execute(t, "", "precompute", "3", path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	col, err := decision.Load(f)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	assert.Equal(t, 3, col.MaxVertices())

	out, err := execute(t, sixCycle, "run", "pr", "--precomputed", path, "--partition-size", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Total weight: 20\n")
}

func TestPrecompute_Errors(t *testing.T) {
	_, err := execute(t, "", "precompute", "many")
	assert.Error(t, err)

	_, err = execute(t, "", "precompute", "99", filepath.Join(t.TempDir(), "trees"))
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	out, err := execute(t, "", "generate", "-n", "8", "-p", "1", "--seed", "7")
	require.NoError(t, err)

	vertices, edges, err := readEdges(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 8, vertices)
	require.Len(t, edges, 28)

	seen := make(map[float64]bool)
	for _, e := range edges {
		seen[e.Weight()] = true
	}
	assert.Len(t, seen, 28)

	again, err := execute(t, "", "generate", "-n", "8", "-p", "1", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGenerate_Connected(t *testing.T) {
	graph, err := execute(t, "", "generate", "-n", "30", "-p", "0.05", "--seed", "3", "--connected")
	require.NoError(t, err)

	out, err := execute(t, graph, "run", "kruskal", "--require-connected")
	require.NoError(t, err)
	assert.Contains(t, out, "Total weight:")
}

func TestGenerate_InvalidProbability(t *testing.T) {
	_, err := execute(t, "", "generate", "-p", "2")
	assert.Error(t, err)
}

func TestConfigCommand_WritesEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "spanforest.yaml")

	_, err := execute(t, "", "config", path, "kruskal", "ft", "--partition-size", "3", "--require-connected")
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"kruskal", "ft"}, cfg.Algorithms)
	assert.Equal(t, 3, cfg.PartitionSize)
	assert.True(t, cfg.RequireConnected)

	_, err = execute(t, "0 1 1\n2 3 1\n", "--config", path, "run")
	assert.Error(t, err, "saved require_connected applies to run")

	out, err := execute(t, sixCycle, "--config", path, "run")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Total weight: 20\n"))

	_, err = execute(t, "", "config", path, "dijkstra")
	assert.Error(t, err)
}
