package mst_test

import (
	"cmp"
	"context"
	"slices"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/spanforest/builder"
	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/decision"
	"github.com/katalvlaran/spanforest/dfs"
	"github.com/katalvlaran/spanforest/graph"
	"github.com/katalvlaran/spanforest/mst"
	"github.com/katalvlaran/spanforest/pq"
)

type wedge = core.Weighted[int]

func w(u, v, wt int) wedge { return core.NewWeighted(u, v, wt) }

// sixCycle has a unique MST made of every edge but the weight-7 one.
func sixCycle() []wedge {
	return []wedge{w(0, 1, 5), w(1, 2, 2), w(2, 3, 6), w(3, 4, 3), w(4, 5, 7), w(5, 0, 4)}
}

// triple is an orientation-free view of an edge for diffs.
type triple[W cmp.Ordered] struct {
	U, V int
	W    W
}

func canon[W cmp.Ordered](edges []core.Weighted[W]) []triple[W] {
	out := make([]triple[W], 0, len(edges))
	for _, e := range edges {
		u, v := min(e.From(), e.To()), max(e.From(), e.To())
		out = append(out, triple[W]{U: u, V: v, W: e.Weight()})
	}
	slices.SortFunc(out, func(a, b triple[W]) int {
		return cmp.Or(cmp.Compare(a.U, b.U), cmp.Compare(a.V, b.V), cmp.Compare(a.W, b.W))
	})

	return out
}

// assertForest checks that forest is an acyclic subset of edges with one
// tree per component of the input.
func assertForest[W cmp.Ordered](t *testing.T, vertices int, edges, forest []core.Weighted[W]) {
	t.Helper()
	in := core.NewAdjacency(vertices, slices.Values(edges))
	_, components := dfs.Labels(in)
	out := core.NewAdjacency(vertices, slices.Values(forest))
	assert.False(t, dfs.HasCycle(out), "forest has a cycle")
	assert.Len(t, forest, vertices-components)

	have := canon(edges)
	for _, e := range canon(forest) {
		assert.Contains(t, have, e)
	}
}

func lookup[W cmp.Ordered](t *testing.T, name string) mst.Func[W] {
	t.Helper()
	fn, err := mst.Lookup[W](name)
	require.NoError(t, err)

	return fn
}

func TestSixCycle_AllMethods(t *testing.T) {
	for _, name := range mst.Methods() {
		t.Run(name, func(t *testing.T) {
			forest, err := lookup[int](t, name)(6, sixCycle())
			require.NoError(t, err)
			assert.Len(t, forest, 5)
			assert.Equal(t, 20, graph.Sum(forest))
			assertForest(t, 6, sixCycle(), forest)
		})
	}
}

func TestDisconnected_ForestPolicy(t *testing.T) {
	edges := []wedge{w(0, 1, 1), w(2, 3, 1)}
	for _, name := range mst.Methods() {
		t.Run(name, func(t *testing.T) {
			forest, err := lookup[int](t, name)(4, edges)
			require.NoError(t, err)
			if name == mst.MethodPrim {
				// only the root's component
				assert.Equal(t, []triple[int]{{0, 1, 1}}, canon(forest))
				return
			}
			assert.Len(t, forest, 2)
			assert.Equal(t, 2, graph.Sum(forest))
		})
	}
}

func TestRequireConnected(t *testing.T) {
	edges := []wedge{w(0, 1, 1), w(2, 3, 1)}
	for _, name := range mst.Methods() {
		t.Run(name, func(t *testing.T) {
			_, err := lookup[int](t, name)(4, edges, mst.WithRequireConnected())
			assert.ErrorIs(t, err, mst.ErrDisconnected)

			forest, err := lookup[int](t, name)(6, sixCycle(), mst.WithRequireConnected())
			require.NoError(t, err)
			assert.Len(t, forest, 5)
		})
	}
}

func TestInvalidInput(t *testing.T) {
	for _, name := range mst.Methods() {
		t.Run(name, func(t *testing.T) {
			fn := lookup[int](t, name)

			_, err := fn(2, []wedge{w(0, 2, 1)})
			assert.ErrorIs(t, err, mst.ErrInvalidGraph)
			assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

			_, err = fn(-1, nil)
			assert.ErrorIs(t, err, mst.ErrInvalidGraph)
			assert.ErrorIs(t, err, core.ErrNegativeVertices)
		})
	}
}

func TestTrivialGraphs(t *testing.T) {
	for _, name := range mst.Methods() {
		t.Run(name, func(t *testing.T) {
			fn := lookup[int](t, name)

			forest, err := fn(0, nil)
			require.NoError(t, err)
			assert.Empty(t, forest)

			forest, err = fn(1, []wedge{w(0, 0, 3)})
			require.NoError(t, err)
			assert.Empty(t, forest)

			forest, err = fn(3, nil)
			require.NoError(t, err)
			assert.Empty(t, forest)
		})
	}
}

func TestParallelEdgesAndLoops(t *testing.T) {
	edges := []wedge{w(0, 1, 3), w(1, 0, 1), w(1, 1, 0), w(1, 2, 2), w(2, 1, 9)}
	for _, name := range mst.Methods() {
		t.Run(name, func(t *testing.T) {
			forest, err := lookup[int](t, name)(3, edges)
			require.NoError(t, err)
			assert.Equal(t, []triple[int]{{0, 1, 1}, {1, 2, 2}}, canon(forest))
		})
	}
}

func TestInputNotModified(t *testing.T) {
	for _, name := range mst.Methods() {
		edges := sixCycle()
		_, err := lookup[int](t, name)(6, edges)
		require.NoError(t, err)
		assert.Equal(t, sixCycle(), edges, name)
	}
}

func TestPrim_Root(t *testing.T) {
	edges := []wedge{w(0, 1, 1), w(2, 3, 1), w(3, 4, 2)}
	forest, err := mst.Prim[int](5, edges, mst.WithRoot(3))
	require.NoError(t, err)
	assert.Equal(t, []triple[int]{{2, 3, 1}, {3, 4, 2}}, canon(forest))

	_, err = mst.Prim[int](5, edges, mst.WithRoot(5))
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestBoruvkaStep(t *testing.T) {
	next, picked, err := mst.BoruvkaStep[int](6, sixCycle())
	require.NoError(t, err)

	// every vertex picks its lightest edge: 5-0, 1-2 and 3-4
	assert.Equal(t, []triple[int]{{0, 5, 4}, {1, 2, 2}, {3, 4, 3}}, canon(picked))
	assert.Equal(t, 3, next.Vertices)
	assert.Equal(t, 3, next.Edges.Len())

	var weights []int
	for e := range next.Edges.All() {
		weights = append(weights, e.Original.Weight())
	}
	slices.Sort(weights)
	assert.Equal(t, []int{5, 6, 7}, weights)
}

func TestCompute(t *testing.T) {
	for _, name := range mst.Methods() {
		forest, err := mst.Compute[int](6, sixCycle(), mst.WithMethod(name))
		require.NoError(t, err, name)
		assert.Equal(t, 20, graph.Sum(forest), name)
	}

	forest, err := mst.Compute[int](6, sixCycle())
	require.NoError(t, err)
	assert.Equal(t, 20, graph.Sum(forest))

	_, err = mst.Compute[int](6, sixCycle(), mst.WithMethod("nope"))
	assert.ErrorIs(t, err, mst.ErrUnknownMethod)
	_, err = mst.Lookup[int]("nope")
	assert.ErrorIs(t, err, mst.ErrUnknownMethod)
}

// fixtures returns graphs covering sparse, dense, disconnected and tied inputs.
func fixtures(t *testing.T) map[string]*builder.Graph {
	t.Helper()
	build := func(opts []builder.BuilderOption, cons ...builder.Constructor) *builder.Graph {
		g, err := builder.BuildGraph(opts, cons...)
		require.NoError(t, err)
		return g
	}
	seeded := func(seed int64) []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 100)}
	}

	return map[string]*builder.Graph{
		"random connected":    build(seeded(1), builder.RandomConnected(120, 300)),
		"random dense":        build(seeded(2), builder.RandomConnected(40, 500)),
		"random sparse":       build(seeded(3), builder.RandomSparse(80, 0.03)),
		"grid ties":           build(nil, builder.Grid(7, 9)),
		"complete distinct":   build([]builder.BuilderOption{builder.WithSeed(4), builder.WithDistinctWeights()}, builder.Complete(25)),
		"wheel and cycle":     build(seeded(5), builder.Wheel(30), builder.Cycle(12)),
		"three components":    build(seeded(6), builder.RandomConnected(20, 15), builder.Star(9), builder.Path(5)),
		"integer-ish weights": build([]builder.BuilderOption{builder.WithSeed(7), builder.WithExponentialWeight(0.5)}, builder.RandomConnected(60, 200)),
	}
}

func TestAgreement(t *testing.T) {
	for name, g := range fixtures(t) {
		t.Run(name, func(t *testing.T) {
			want, err := mst.Kruskal[float64](g.Vertices, g.Edges)
			require.NoError(t, err)
			assertForest(t, g.Vertices, g.Edges, want)

			_, components := dfs.Labels(core.NewAdjacency(g.Vertices, slices.Values(g.Edges)))
			for _, method := range mst.Methods() {
				if method == mst.MethodPrim && components > 1 {
					continue
				}
				got, err := lookup[float64](t, method)(g.Vertices, g.Edges)
				require.NoError(t, err, method)
				if diff := gocmp.Diff(canon(want), canon(got)); diff != "" {
					t.Errorf("%s differs from kruskal (-want +got):\n%s", method, diff)
				}
			}
		})
	}
}

func TestPettieRamachandran_DecisionTrees(t *testing.T) {
	col, err := decision.Build(context.Background(), 3)
	require.NoError(t, err)

	for name, g := range fixtures(t) {
		t.Run(name, func(t *testing.T) {
			want, err := mst.Kruskal[float64](g.Vertices, g.Edges)
			require.NoError(t, err)

			got, err := mst.PettieRamachandran[float64](g.Vertices, g.Edges,
				mst.WithCollection(col), mst.WithPartitionSize(3), mst.WithErrorRate(0.25))
			require.NoError(t, err)
			assert.Empty(t, gocmp.Diff(canon(want), canon(got)))
		})
	}
}

func TestPettieRamachandran_Cache(t *testing.T) {
	cache := decision.NewCache()
	g := fixtures(t)["random dense"]
	want, err := mst.Kruskal[float64](g.Vertices, g.Edges)
	require.NoError(t, err)

	for range 2 {
		got, err := mst.PettieRamachandran[float64](g.Vertices, g.Edges, mst.WithCache(cache), mst.WithPartitionSize(3))
		require.NoError(t, err)
		assert.Empty(t, gocmp.Diff(canon(want), canon(got)))
	}
}

func TestPettieRamachandran_CorruptedEdges(t *testing.T) {
	col, err := decision.Build(context.Background(), 4)
	require.NoError(t, err)

	for _, seed := range []int64{3, 11} {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithDistinctWeights()},
			builder.RandomSparse(140, 0.8),
		)
		require.NoError(t, err)

		observed, logs := observer.New(zap.DebugLevel)
		got, err := mst.PettieRamachandran[float64](g.Vertices, g.Edges,
			mst.WithCollection(col), mst.WithPartitionSize(4), mst.WithErrorRate(0.9),
			mst.WithLogger(zap.New(observed)))
		require.NoError(t, err)

		corrupted := int64(0)
		for _, entry := range logs.FilterMessage("level").All() {
			for _, f := range entry.Context {
				if f.Key == "corrupted" {
					corrupted += f.Integer
				}
			}
		}
		assert.Positive(t, corrupted, "seed %d: no edge was corrupted", seed)

		want, err := mst.Kruskal[float64](g.Vertices, g.Edges)
		require.NoError(t, err)
		assert.Empty(t, gocmp.Diff(canon(want), canon(got)), "seed %d", seed)
	}
}

func TestPettieRamachandran_ErrorRate(t *testing.T) {
	for _, eps := range []float64{0, 1, -0.5, 2} {
		_, err := mst.PettieRamachandran[int](6, sixCycle(), mst.WithErrorRate(eps))
		assert.ErrorIs(t, err, pq.ErrInvalidErrorRate, eps)
	}
}

func TestPettieRamachandran_CollectionTooSmall(t *testing.T) {
	col, err := decision.Build(context.Background(), 2)
	require.NoError(t, err)

	// a too small collection is replaced by a fresh build
	forest, err := mst.PettieRamachandran[int](6, sixCycle(), mst.WithCollection(col), mst.WithPartitionSize(3))
	require.NoError(t, err)
	assert.Equal(t, 20, graph.Sum(forest))
}

func TestPettieRamachandran_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mst.PettieRamachandran[int](6, sixCycle(), mst.WithContext(ctx), mst.WithPartitionSize(3))
	assert.ErrorIs(t, err, context.Canceled)
}
