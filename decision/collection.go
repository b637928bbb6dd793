package decision

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/spanforest/core"
)

// MaxSupported is the largest vertex count whose vertex pairs fit the
// 64-bit structure signature.
const MaxSupported = 11

// Signature identifies a graph structure: bit PairIndex(i, j) is set when
// the pair {i, j} carries an edge.
type Signature uint64

// Lookup answers MSF queries for one structure.
type Lookup struct {
	Tree Tree
	// Buckets[b] lists the edge slots of the forest for bucket b.
	Buckets [][]int
}

// Collection holds a Lookup for every structure with at least two edges on
// 2..MaxVertices vertices. A Collection is read-only after Build or Load
// and safe for concurrent queries.
type Collection struct {
	maxVertices int
	structures  map[int]map[Signature]*Lookup
}

// MaxVertices returns the largest vertex count the collection answers.
func (c *Collection) MaxVertices() int { return c.maxVertices }

// Len returns the number of stored structures.
func (c *Collection) Len() int {
	n := 0
	for _, m := range c.structures {
		n += len(m)
	}

	return n
}

// Lookup returns the entry for a structure.
func (c *Collection) Lookup(vertices int, sig Signature) (*Lookup, bool) {
	l, ok := c.structures[vertices][sig]
	return l, ok
}

// Build computes an optimal decision tree for every structure on up to
// maxVertices vertices.
//
// Complexity: super-exponential; four vertices take well under a second,
// five are out of reach.
func Build(ctx context.Context, maxVertices int, opts ...Option) (*Collection, error) {
	o := newOptions(opts)
	if maxVertices > MaxSupported {
		return nil, fmt.Errorf("decision: Build(%d): %w", maxVertices, ErrUnsupportedSize)
	}
	c := &Collection{maxVertices: maxVertices, structures: make(map[int]map[Signature]*Lookup)}
	o.Logger.Debug("computing decision trees", zap.Int("max_vertices", maxVertices))

	for vertices := 2; vertices <= maxVertices; vertices++ {
		c.structures[vertices] = make(map[Signature]*Lookup)

		var all [][2]int
		for i, j := range AscendingPairs(vertices) {
			all = append(all, [2]int{i, j})
		}

		for pairs := range PowerSet(all) {
			if len(pairs) <= 1 {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			lookup, err := buildStructure(vertices, pairs)
			if err != nil {
				return nil, err
			}
			sig := signatureOf(pairs)
			c.structures[vertices][sig] = lookup
			o.Logger.Debug("decision tree built",
				zap.Int("vertices", vertices),
				zap.Int("edges", len(pairs)),
				zap.Uint64("signature", uint64(sig)),
				zap.Int("depth", lookup.Tree.Depth()))
		}
	}

	return c, nil
}

// buildStructure searches depths 0, 1, ... until a tree exists.
func buildStructure(vertices int, pairs [][2]int) (*Lookup, error) {
	s := newSearcher(vertices, pairs)
	all := make([]int32, len(s.ranks))
	for p := range all {
		all[p] = int32(p)
	}
	for levels := 0; levels < vertices*vertices; levels++ {
		if root := s.solve(all, levels); root != nil {
			tree, buckets := layout(root, levels)
			return &Lookup{Tree: tree, Buckets: buckets}, nil
		}
	}

	return nil, fmt.Errorf("decision: %d vertices, pairs %v: %w", vertices, pairs, ErrNoDecisionTree)
}

func signatureOf(pairs [][2]int) Signature {
	var sig Signature
	for _, p := range pairs {
		sig |= 1 << PairIndex(p[0], p[1])
	}

	return sig
}

// FindMST returns the minimum spanning forest of a simple graph with at
// most c.MaxVertices() vertices, using the precomputed optimal comparisons.
// Graphs with fewer than two vertices or at most one edge short-circuit.
func FindMST[E core.Ordered[E]](c *Collection, vertices int, edges []E) ([]E, error) {
	if vertices > c.maxVertices {
		return nil, fmt.Errorf("decision: FindMST(%d vertices, max %d): %w", vertices, c.maxVertices, ErrUnsupportedSize)
	}
	if vertices < 2 {
		return nil, nil
	}
	if len(edges) <= 1 {
		return slices.Clone(edges), nil
	}

	// 1. Order edges by slot and derive the signature.
	bySlot := slices.Clone(edges)
	slices.SortFunc(bySlot, func(a, b E) int {
		return PairIndex(a.From(), a.To()) - PairIndex(b.From(), b.To())
	})
	var sig Signature
	for k, e := range bySlot {
		if e.From() == e.To() || (k > 0 && PairIndex(e.From(), e.To()) == PairIndex(bySlot[k-1].From(), bySlot[k-1].To())) {
			return nil, fmt.Errorf("decision: FindMST: edge %d-%d: %w", e.From(), e.To(), ErrNotSimple)
		}
		sig |= 1 << PairIndex(e.From(), e.To())
	}

	// 2. Classify and read the bucket.
	l, ok := c.Lookup(vertices, sig)
	if !ok {
		return nil, fmt.Errorf("decision: FindMST(%d vertices, signature %#x): %w", vertices, uint64(sig), ErrUnknownStructure)
	}
	bucket := l.Tree.Classify(func(i, j int) bool { return bySlot[i].Compare(bySlot[j]) < 0 })
	out := make([]E, 0, len(l.Buckets[bucket]))
	for _, k := range l.Buckets[bucket] {
		out = append(out, bySlot[k])
	}

	return out, nil
}
