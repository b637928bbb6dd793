package core_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanforest/core"
)

func TestAdjacency_StoresBothEndpoints(t *testing.T) {
	edges := []wedge{
		core.NewWeighted(0, 1, 1),
		core.NewWeighted(2, 1, 2),
	}
	adj := core.NewAdjacency(3, slices.Values(edges))

	require.Equal(t, 3, adj.Vertices())
	assert.Equal(t, 2, adj.Edges())
	assert.Equal(t, 1, adj.At(0).Len())
	assert.Equal(t, 2, adj.At(1).Len())
	for v := 0; v < adj.Vertices(); v++ {
		for e := range adj.At(v).All() {
			assert.Equal(t, v, e.From(), "entries start at their owner")
		}
	}
}

func TestAdjacency_SelfLoopStoredTwice(t *testing.T) {
	adj := core.NewAdjacency(1, slices.Values([]wedge{core.NewWeighted(0, 0, 4)}))
	assert.Equal(t, 2, adj.At(0).Len())
}

func TestCheckRange(t *testing.T) {
	ok := []wedge{core.NewWeighted(0, 1, 1)}
	assert.NoError(t, core.CheckRange(2, slices.Values(ok)))
	assert.ErrorIs(t, core.CheckRange(1, slices.Values(ok)), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, core.CheckRange(-1, slices.Values[[]wedge](nil)), core.ErrNegativeVertices)
	assert.ErrorIs(t, core.CheckRange(3, slices.Values([]wedge{core.NewWeighted(-1, 0, 1)})), core.ErrVertexOutOfRange)
}
