package disjointset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanforest/disjointset"
)

func TestDisjointSet_Basics(t *testing.T) {
	d := disjointset.New(5)
	require.Equal(t, 5, d.Len())
	assert.Equal(t, 5, d.Distinct())

	assert.True(t, d.Union(0, 1))
	assert.True(t, d.Union(3, 4))
	assert.False(t, d.Union(1, 0), "already merged")
	assert.Equal(t, 3, d.Distinct())

	assert.True(t, d.Same(0, 1))
	assert.False(t, d.Same(1, 3))
	assert.Equal(t, 2, d.SizeOf(4))
	assert.Equal(t, 1, d.SizeOf(2))

	assert.True(t, d.Union(1, 4))
	assert.Equal(t, 4, d.SizeOf(0))
	assert.Equal(t, d.Find(0), d.Find(3))
}

func TestDisjointSet_Empty(t *testing.T) {
	d := disjointset.New(0)
	assert.Zero(t, d.Len())
	assert.Zero(t, d.Distinct())
}

// TestDisjointSet_DistinctMonotone checks that Distinct never increases and
// drops exactly when Union reports a merge.
func TestDisjointSet_DistinctMonotone(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(42))
	d := disjointset.New(n)

	prev := d.Distinct()
	for i := 0; i < 5*n; i++ {
		merged := d.Union(r.Intn(n), r.Intn(n))
		cur := d.Distinct()
		if merged {
			assert.Equal(t, prev-1, cur)
		} else {
			assert.Equal(t, prev, cur)
		}
		prev = cur
	}

	total := 0
	seen := map[int]bool{}
	for i := 0; i < n; i++ {
		root := d.Find(i)
		if !seen[root] {
			seen[root] = true
			total += d.SizeOf(root)
		}
	}
	assert.Equal(t, n, total)
	assert.Equal(t, d.Distinct(), len(seen))
}
