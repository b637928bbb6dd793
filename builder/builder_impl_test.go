// Package builder_test contains functional tests for all Constructor
// implementations, verifying topology, counts and determinism.
package builder_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanforest/builder"
	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/dfs"
)

// pairs returns the endpoints of every edge, in emission order.
func pairs(g *builder.Graph) [][2]int {
	out := make([][2]int, 0, len(g.Edges))
	for _, e := range g.Edges {
		out = append(out, [2]int{e.From(), e.To()})
	}

	return out
}

// components counts connected components of g.
func components(g *builder.Graph) int {
	return len(dfs.Components(core.NewAdjacency(g.Vertices, slices.Values(g.Edges))))
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantV     int
		wantE     int
		wantPairs [][2]int // checked when non-nil
	}{
		{name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			wantPairs: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}},
		{name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			wantPairs: [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		{name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3,
			wantPairs: [][2]int{{0, 1}, {0, 2}, {0, 3}}},
		{name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			wantPairs: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 0}, {4, 1}, {4, 2}, {4, 3}}},
		{name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
			wantPairs: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}},
		{name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0},
		{name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			wantPairs: [][2]int{{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 5}, {3, 4}, {4, 5}}},
		{name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 15},
		{name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.Vertices)
			assert.Len(t, g.Edges, tc.wantE)
			if tc.wantPairs != nil {
				assert.Equal(t, tc.wantPairs, pairs(g))
			}
			for _, e := range g.Edges {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight())
			}
		})
	}
}

// TestBuildGraph_ComposesDisjointComponents checks the vertex offsets.
func TestBuildGraph_ComposesDisjointComponents(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(3), builder.Path(2))
	require.NoError(t, err)

	assert.Equal(t, 5, g.Vertices)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}}, pairs(g))
	assert.Equal(t, 2, components(g))
}

func TestRandomConnected(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)}
	g, err := builder.BuildGraph(opts, builder.RandomConnected(50, 80))
	require.NoError(t, err)

	assert.Equal(t, 50, g.Vertices)
	assert.Len(t, g.Edges, 49+80)
	assert.Equal(t, 1, components(g))
	for _, e := range g.Edges {
		assert.NotEqual(t, e.From(), e.To())
	}

	// same seed, same graph
	again, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
		builder.RandomConnected(50, 80))
	require.NoError(t, err)
	assert.Equal(t, g.Edges, again.Edges)
}

func TestWithDistinctWeights(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3), builder.WithDistinctWeights()},
		builder.Complete(6))
	require.NoError(t, err)

	var got []float64
	for _, e := range g.Edges {
		got = append(got, e.Weight())
	}
	slices.Sort(got)
	for i, w := range got {
		assert.Equal(t, float64(i+1), w)
	}
}

// TestBuilders_Errors checks sentinel errors for invalid parameters.
func TestBuilders_Errors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0,0.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(5,1.5)", builder.RandomSparse(5, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(5,0.5) without rng", builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
		{"RandomConnected(1,1)", builder.RandomConnected(1, 1), builder.ErrTooFewVertices},
		{"RandomConnected(5,0) without rng", builder.RandomConnected(5, 0), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
