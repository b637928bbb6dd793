package mst_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/spanforest/builder"
	"github.com/katalvlaran/spanforest/decision"
	"github.com/katalvlaran/spanforest/mst"
)

// benchGraph is a connected random graph with 2000 vertices and 8000 edges.
func benchGraph(b *testing.B) *builder.Graph {
	b.Helper()
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 100)},
		builder.RandomConnected(2000, 6001))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkMethods runs every algorithm on the same graph. Decision trees
// for PettieRamachandran are built once outside the timer.
func BenchmarkMethods(b *testing.B) {
	g := benchGraph(b)
	col, err := decision.Build(context.Background(), 3)
	if err != nil {
		b.Fatal(err)
	}

	for _, name := range mst.Methods() {
		fn, err := mst.Lookup[float64](name)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = fn(g.Vertices, g.Edges, mst.WithCollection(col))
			}
		})
	}
}

// BenchmarkBoruvkaStep measures a single contraction round.
func BenchmarkBoruvkaStep(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = mst.BoruvkaStep[float64](g.Vertices, g.Edges)
	}
}
