package decision

import (
	"encoding/binary"
	"slices"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/disjointset"
)

// outcome is the MSF of one weight order, as a bit mask over edge slots.
type outcome uint64

// forestOf runs Kruskal on the structure with the edge in slot k weighted
// by rank[k] and returns the chosen slots.
func forestOf(vertices int, pairs [][2]int, rank []int) outcome {
	edges := make([]core.Indexed[int, core.Weighted[int]], len(pairs))
	for k, p := range pairs {
		edges[k] = core.Indexed[int, core.Weighted[int]]{Index: k, Edge: core.NewWeighted(p[0], p[1], rank[k])}
	}
	slices.SortFunc(edges, func(a, b core.Indexed[int, core.Weighted[int]]) int { return a.Compare(b) })

	var out outcome
	ds := disjointset.New(vertices)
	for _, e := range edges {
		if ds.Union(e.From(), e.To()) {
			out |= 1 << e.Index
		}
	}

	return out
}

// node is a search result before it is laid out as a heap array.
type node struct {
	cmp         Comparison
	left, right *node
	leaf        bool
	result      outcome
}

// searcher finds a minimal-depth tree for one structure.
type searcher struct {
	ranks    [][]int   // ranks[p][slot] for every weight order p
	outcomes []outcome // forest of every weight order
	pairs    []Comparison
	failed   map[string]struct{}
}

func newSearcher(vertices int, pairs [][2]int) *searcher {
	s := &searcher{failed: make(map[string]struct{})}
	for perm := range Permutations(len(pairs)) {
		rank := slices.Clone(perm)
		s.ranks = append(s.ranks, rank)
		s.outcomes = append(s.outcomes, forestOf(vertices, pairs, rank))
	}
	for i, j := range AscendingPairs(len(pairs)) {
		s.pairs = append(s.pairs, Comparison{First: i, Second: j})
	}

	return s
}

func (s *searcher) distinct(set []int32) int {
	seen := make(map[outcome]struct{}, 4)
	for _, p := range set {
		seen[s.outcomes[p]] = struct{}{}
	}

	return len(seen)
}

// key encodes a (set, levels) search state for the failure memo. The
// encoding is exact, so distinct states never share a key.
func (s *searcher) key(set []int32, levels int) string {
	buf := make([]byte, 0, 4*(len(set)+1))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(levels))
	for _, p := range set {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(p))
	}

	return string(buf)
}

// solve returns a tree of at most levels comparisons per path that sends
// weight orders with different forests to different leaves, or nil.
func (s *searcher) solve(set []int32, levels int) *node {
	// 1. Uniform outcome: a leaf.
	d := s.distinct(set)
	if d == 1 {
		return &node{leaf: true, result: s.outcomes[set[0]]}
	}

	// 2. Lower bound: every bucket holds one outcome.
	if levels == 0 || (levels < 62 && d > 1<<levels) {
		return nil
	}
	k := s.key(set, levels)
	if _, ok := s.failed[k]; ok {
		return nil
	}

	// 3. Try every comparison that actually splits the set, most balanced first.
	type split struct {
		cmp         Comparison
		left, right []int32
	}
	var splits []split
	for _, c := range s.pairs {
		var left, right []int32
		for _, p := range set {
			if s.ranks[p][c.First] < s.ranks[p][c.Second] {
				left = append(left, p)
			} else {
				right = append(right, p)
			}
		}
		if len(left) == 0 || len(right) == 0 {
			continue
		}
		splits = append(splits, split{cmp: c, left: left, right: right})
	}
	slices.SortStableFunc(splits, func(a, b split) int {
		return max(len(a.left), len(a.right)) - max(len(b.left), len(b.right))
	})

	for _, sp := range splits {
		l := s.solve(sp.left, levels-1)
		if l == nil {
			continue
		}
		r := s.solve(sp.right, levels-1)
		if r == nil {
			continue
		}

		return &node{cmp: sp.cmp, left: l, right: r}
	}
	s.failed[k] = struct{}{}

	return nil
}

// layout writes the search result into a heap-ordered tree of exactly
// levels levels. Leaves found early are padded with a filler comparison
// whose both outcomes lead to the same forest.
func layout(root *node, levels int) (Tree, [][]int) {
	comps := make([]Comparison, (1<<levels)-1)
	buckets := make([][]int, 1<<levels)

	var place func(n *node, k, level int)
	place = func(n *node, k, level int) {
		if level == levels {
			buckets[k-len(comps)] = n.result.slots()
			return
		}
		if n.leaf {
			comps[k] = Comparison{First: 0, Second: 1}
			place(n, 2*k+1, level+1)
			place(n, 2*k+2, level+1)
			return
		}
		comps[k] = n.cmp
		place(n.left, 2*k+1, level+1)
		place(n.right, 2*k+2, level+1)
	}
	place(root, 0, 0)

	return Tree{Comparisons: comps}, buckets
}

// slots lists the set bits of o in increasing order.
func (o outcome) slots() []int {
	out := []int{}
	for k := 0; o != 0; k++ {
		if o&1 != 0 {
			out = append(out, k)
		}
		o >>= 1
	}

	return out
}
