package mst

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"math"
	"slices"

	"github.com/soniakeys/bits"
	"go.uber.org/zap"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/decision"
	"github.com/katalvlaran/spanforest/graph"
	"github.com/katalvlaran/spanforest/pq"
)

// PettieRamachandran computes the minimum spanning forest with the
// optimal algorithm of Pettie and Ramachandran. Every level
//
//  1. partitions the vertices into parts of at most maxsize vertices,
//     growing each part with a soft heap and setting aside the boundary
//     edges the heap corrupted;
//  2. solves every part with a precomputed optimal decision tree;
//  3. contracts the part forests and runs Fredman–Tarjan on the rest,
//     without the corrupted edges;
//  4. keeps the union of those forests and the corrupted edges, runs two
//     Borůvka rounds on it and continues with the contracted result.
//
// Decision trees come from WithCollection, WithCache or a one-off build.
// The input is reduced to a simple graph first.
//
// Error Conditions:
//   - ErrInvalidGraph        : vertices < 0 or an endpoint outside [0, vertices).
//   - pq.ErrInvalidErrorRate : error rate outside (0, 1).
//   - decision errors        : the trees could not be built or a part was not answered.
//   - ErrDisconnected        : only with WithRequireConnected.
//
// Complexity: O(T*(E, V)), the optimal decision-tree complexity. Memory: O(V + E).
func PettieRamachandran[W cmp.Ordered, E core.Edge[W, E]](vertices int, edges []E, opts ...Option) ([]E, error) {
	o := newOptions(opts)
	if err := validate(MethodPettieRamachandran, vertices, edges); err != nil {
		return nil, err
	}
	if !(o.ErrorRate > 0 && o.ErrorRate < 1) {
		return nil, fmt.Errorf("mst: %s: error rate %v: %w", MethodPettieRamachandran, o.ErrorRate, pq.ErrInvalidErrorRate)
	}

	size := o.PartitionSize
	if size <= 0 {
		size = partitionSize(vertices)
	}
	col, err := collectionFor(o, size)
	if err != nil {
		return nil, fmt.Errorf("mst: %s: %w", MethodPettieRamachandran, err)
	}

	r := &pettieRamachandran[W, E]{
		errorRate: o.ErrorRate,
		fixed:     o.PartitionSize,
		col:       col,
		log:       o.Logger.With(zap.String("method", MethodPettieRamachandran)),
	}
	simple := graph.RemoveDuplicates(vertices, graph.Wrap[W](slices.Values(edges)).All())
	forest, err := r.solve(vertices, simple)
	if err != nil {
		return nil, fmt.Errorf("mst: %s: %w", MethodPettieRamachandran, err)
	}

	return finish(MethodPettieRamachandran, vertices, forest, o)
}

// partitionSize returns ceil(log2 log2 log2 V), and 1 for V <= 16.
func partitionSize(vertices int) int {
	if vertices <= 16 {
		return 1
	}

	return max(1, int(math.Ceil(math.Log2(math.Log2(math.Log2(float64(vertices)))))))
}

// collectionFor returns decision trees for parts of up to size vertices.
func collectionFor(o Options, size int) (*decision.Collection, error) {
	switch {
	case o.Collection != nil && o.Collection.MaxVertices() >= size:
		return o.Collection, nil
	case o.Cache != nil:
		return o.Cache.Get(o.Context, size)
	default:
		return decision.Build(o.Context, size, decision.WithLogger(o.Logger))
	}
}

type pettieRamachandran[W cmp.Ordered, E core.Edge[W, E]] struct {
	errorRate float64
	fixed     int
	col       *decision.Collection
	log       *zap.Logger
}

// solve runs levels until no edge is left and returns the original edges
// picked by the Borůvka rounds.
func (r *pettieRamachandran[W, E]) solve(vertices int, edges *core.List[core.Contracted[W, E]]) ([]E, error) {
	var forest []E
	for level := 0; edges.Len() > 0; level++ {
		size := r.fixed
		if size <= 0 {
			size = partitionSize(vertices)
		}
		size = min(size, r.col.MaxVertices())

		// 1. Partition.
		adj := core.NewAdjacency(vertices, edges.All())
		parts, corrupted, err := r.partition(adj, size)
		if err != nil {
			return nil, err
		}

		// 2. Part forests from the decision trees.
		inner := &core.List[core.Contracted[W, E]]{}
		for _, part := range parts {
			local, _ := graph.RenameVertices[W](part.All())
			msf, err := decision.FindMST(r.col, local.Vertices, local.Edges.Slice())
			if err != nil {
				return nil, err
			}
			for _, e := range msf {
				inner.Append(e.Original)
			}
		}

		// 3. Dense case: contract the part forests, leave out corrupted edges.
		var clean iter.Seq[core.Contracted[W, E]] = func(yield func(core.Contracted[W, E]) bool) {
			for e := range edges.All() {
				if _, bad := corrupted[e.ID()]; bad {
					continue
				}
				if !yield(e) {
					return
				}
			}
		}
		dense := graph.Contract[W](vertices, inner.All(), clean)
		denseForest, err := fredmanTarjan(dense.Vertices, dense.Edges)
		if err != nil {
			return nil, err
		}

		// 4. Reduced graph, two Borůvka rounds.
		reduced := core.NewList(denseForest...)
		for _, id := range slices.Sorted(maps.Keys(corrupted)) {
			reduced.Append(corrupted[id])
		}
		reduced.Meld(inner)
		g := core.Graph[core.Contracted[W, E]]{Vertices: vertices, Edges: graph.RemoveDuplicates(vertices, reduced.All())}

		r.log.Debug("level",
			zap.Int("level", level),
			zap.Int("vertices", vertices),
			zap.Int("edges", edges.Len()),
			zap.Int("max_part", size),
			zap.Int("parts", len(parts)),
			zap.Int("corrupted", len(corrupted)),
			zap.Int("dense_edges", dense.Edges.Len()),
			zap.Int("reduced_edges", g.Edges.Len()))

		for range 2 {
			if g.Vertices < 2 || g.Edges.Len() == 0 {
				break
			}
			var picked []E
			g, picked = boruvkaStep(g)
			forest = append(forest, picked...)
		}
		vertices, edges = g.Vertices, g.Edges
	}

	return forest, nil
}

// partition grows parts from every vertex not yet taken. A part stops at
// size vertices, when its heap runs dry, or right after it reaches a vertex
// of an earlier part. It returns the edges inside every part and, keyed by
// ID, the boundary edges the soft heap reported as corrupted.
func (r *pettieRamachandran[W, E]) partition(adj *core.Adjacency[core.Contracted[W, E]], size int) ([]*core.List[core.Contracted[W, E]], map[int]core.Contracted[W, E], error) {
	less := func(a, b core.Contracted[W, E]) bool { return a.Compare(b) < 0 }
	dead := bits.New(adj.Vertices())
	corrupted := make(map[int]core.Contracted[W, E])
	var parts []*core.List[core.Contracted[W, E]]

	for seed := range adj.Vertices() {
		if dead.Bit(seed) == 1 {
			continue
		}
		dead.SetBit(seed, 1)

		heap, err := pq.NewSoftHeap(r.errorRate, less)
		if err != nil {
			return nil, nil, err
		}
		members := []int{seed}
		part := &core.List[core.Contracted[W, E]]{}
		push := func(v int) {
			for e := range adj.At(v).All() {
				if !slices.Contains(members, e.To()) {
					heap.Insert(e)
				}
			}
		}
		push(seed)

		for len(members) < size && heap.Len() > 0 {
			e, _, err := heap.Pop()
			if err != nil {
				return nil, nil, err
			}
			v := e.To()
			part.Append(e)
			if slices.Contains(members, v) {
				continue
			}
			members = append(members, v)
			if dead.Bit(v) == 1 {
				break
			}
			dead.SetBit(v, 1)
			push(v)
		}

		// drain
		for heap.Len() > 0 {
			e, bad, err := heap.Pop()
			if err != nil {
				return nil, nil, err
			}
			switch {
			case slices.Contains(members, e.To()):
				part.Append(e)
			case bad:
				corrupted[e.ID()] = e
			}
		}
		parts = append(parts, part)
	}

	return parts, corrupted, nil
}
