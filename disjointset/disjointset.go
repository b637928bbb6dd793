package disjointset

// DisjointSet partitions 0..n-1 into disjoint sets.
type DisjointSet struct {
	parent   []int
	distinct int
}

// New returns n singleton sets.
func New(n int) *DisjointSet {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	return &DisjointSet{parent: parent, distinct: n}
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Distinct returns the current number of sets. It starts at n and drops by
// one on every successful Union.
func (d *DisjointSet) Distinct() int { return d.distinct }

// Find returns the representative of i's set and points every element on
// the walked path directly at it.
func (d *DisjointSet) Find(i int) int {
	root := i
	for d.parent[root] >= 0 {
		root = d.parent[root]
	}
	for d.parent[i] >= 0 {
		i, d.parent[i] = d.parent[i], root
	}

	return root
}

// Union merges the sets of i and j, hanging the smaller set under the
// larger. It reports whether two distinct sets were merged.
func (d *DisjointSet) Union(i, j int) bool {
	ri, rj := d.Find(i), d.Find(j)
	if ri == rj {
		return false
	}
	// sizes are stored negated: the more negative root is larger
	if d.parent[ri] > d.parent[rj] {
		ri, rj = rj, ri
	}
	d.parent[ri] += d.parent[rj]
	d.parent[rj] = ri
	d.distinct--

	return true
}

// Same reports whether i and j are in the same set.
func (d *DisjointSet) Same(i, j int) bool { return d.Find(i) == d.Find(j) }

// SizeOf returns the size of i's set.
func (d *DisjointSet) SizeOf(i int) int { return -d.parent[d.Find(i)] }
