package decision_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/decision"
)

// ExampleFindMST answers a triangle query with two precomputed comparisons.
func ExampleFindMST() {
	c, err := decision.Build(context.Background(), 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	forest, err := decision.FindMST(c, 3, []core.Weighted[int]{
		core.NewWeighted(0, 1, 4),
		core.NewWeighted(1, 2, 2),
		core.NewWeighted(0, 2, 3),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range forest {
		fmt.Println(e)
	}
	// Output:
	// 0 2 3
	// 1 2 2
}
