package decision

import (
	"fmt"
	"strings"
)

// Comparison asks whether the edge in slot First is lighter than the edge
// in slot Second.
type Comparison struct {
	First, Second int
}

// Tree is a complete binary decision tree stored like a binary heap: node
// k has children 2k+1 (first edge lighter) and 2k+2 (otherwise). A tree of
// depth L holds 2^L-1 comparisons and ends in 2^L buckets.
type Tree struct {
	Comparisons []Comparison
}

// Depth returns the number of comparisons on every root-to-bucket path.
func (t Tree) Depth() int {
	d := 0
	for (1<<d)-1 < len(t.Comparisons) {
		d++
	}

	return d
}

// Buckets returns the number of leaves.
func (t Tree) Buckets() int { return len(t.Comparisons) + 1 }

// Classify walks the tree, asking less(First, Second) at every node, and
// returns the bucket reached.
func (t Tree) Classify(less func(i, j int) bool) int {
	k := 0
	for k < len(t.Comparisons) {
		c := t.Comparisons[k]
		if less(c.First, c.Second) {
			k = 2*k + 1
		} else {
			k = 2*k + 2
		}
	}

	return k - len(t.Comparisons)
}

// String draws the tree one node per line.
func (t Tree) String() string {
	var sb strings.Builder
	var draw func(k, level int)
	draw = func(k, level int) {
		if level > 0 {
			sb.WriteString(strings.Repeat("  ", level-1))
			sb.WriteString("└ ")
		}
		if k >= len(t.Comparisons) {
			fmt.Fprintf(&sb, "Bucket(%d)\n", k-len(t.Comparisons))
			return
		}
		fmt.Fprintf(&sb, "Comparison(%d < %d)\n", t.Comparisons[k].First, t.Comparisons[k].Second)
		draw(2*k+1, level+1)
		draw(2*k+2, level+1)
	}
	draw(0, 0)

	return sb.String()
}
