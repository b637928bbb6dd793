package dfs_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/dfs"
)

// ExampleComponents splits a graph with two pieces and an isolated vertex.
func ExampleComponents() {
	adj := core.NewAdjacency(5, slices.Values([]core.Weighted[int]{
		core.NewWeighted(0, 1, 1),
		core.NewWeighted(3, 2, 1),
	}))
	for _, c := range dfs.Components(adj) {
		fmt.Println(c)
	}
	// Output:
	// [0 1]
	// [2 3]
	// [4]
}
