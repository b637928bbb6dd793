package decision_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/spanforest/decision"
)

func TestAscendingPairs(t *testing.T) {
	var got [][2]int
	for i, j := range decision.AscendingPairs(4) {
		got = append(got, [2]int{i, j})
		assert.Equal(t, len(got)-1, decision.PairIndex(i, j))
		assert.Equal(t, len(got)-1, decision.PairIndex(j, i))
	}
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}, {0, 3}, {1, 3}, {2, 3}}, got)

	for range decision.AscendingPairs(1) {
		t.Fatal("no pairs on one vertex")
	}
}

func TestPowerSet(t *testing.T) {
	got := slices.Collect(decision.PowerSet([]string{"a", "b", "c"}))
	assert.Len(t, got, 8)
	assert.Empty(t, got[0])
	assert.Equal(t, []string{"a", "b", "c"}, got[7])
	assert.Equal(t, []string{"a", "c"}, got[5])
}

func TestPermutations(t *testing.T) {
	seen := map[[4]int]bool{}
	for p := range decision.Permutations(4) {
		var key [4]int
		copy(key[:], p)
		assert.False(t, seen[key], "duplicate %v", key)
		seen[key] = true

		sorted := slices.Clone(p)
		slices.Sort(sorted)
		assert.Equal(t, []int{0, 1, 2, 3}, sorted)
	}
	assert.Len(t, seen, 24)

	count := 0
	for range decision.Permutations(0) {
		count++
	}
	assert.Equal(t, 1, count)
}
