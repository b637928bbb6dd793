// Package dfs implements iterative depth-first search over core.Adjacency.
//
// Key features:
//   - DFS(adj, start, opts...): traverse from a root, or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Cancellation via context.Context
//   - Components and HasCycle helpers used by the spanning-forest packages
//
// The walk keeps an explicit stack of list cursors, so contracted graphs
// with long paths never grow the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/spanforest/core"
)

// frame is one level of the explicit DFS stack.
type frame[E core.Incident[E]] struct {
	v   int
	cur core.Cursor[E]
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[E core.Incident[E]] struct {
	adj  *core.Adjacency[E]
	opts DFSOptions
	res  *DFSResult
}

// DFS performs depth-first search on adj. With WithFullTraversal it covers
// all components in increasing order of their smallest vertex; otherwise
// it only explores the component of start.
func DFS[E core.Incident[E]](adj *core.Adjacency[E], start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if adj == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	n := adj.Vertices()
	if !dopts.FullTraversal && (start < 0 || start >= n) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result
	res := &DFSResult{
		Order:     make([]int, 0, n),
		Parent:    make([]int, n),
		Component: make([]int, n),
		Visited:   bits.New(n),
	}
	for i := 0; i < n; i++ {
		res.Parent[i] = -1
		res.Component[i] = -1
	}

	w := &dfsWalker[E]{adj: adj, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if res.Visited.Bit(v) == 0 {
				if err := w.traverse(v); err != nil {
					return res, err
				}
			}
		}
	} else if err := w.traverse(start); err != nil {
		return res, err
	}

	return res, nil
}

// traverse grows one DFS tree rooted at root.
func (w *dfsWalker[E]) traverse(root int) error {
	tree := w.res.Trees
	w.res.Trees++

	var stack []frame[E]

	push := func(v int) error {
		w.res.Visited.SetBit(v, 1)
		w.res.Component[v] = tree
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(v); err != nil {
				w.res.Order = nil

				return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
			}
		}
		stack = append(stack, frame[E]{v: v, cur: w.adj.At(v).Cursor()})

		return nil
	}

	if err := push(root); err != nil {
		return err
	}
	for len(stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		e, ok := top.cur.Next()
		if ok {
			u := e.To()
			if w.res.Visited.Bit(u) == 0 {
				w.res.Parent[u] = top.v
				if err := push(u); err != nil {
					return err
				}
			}
			continue
		}

		// 2. All neighbors explored: post-order
		v := top.v
		stack = stack[:len(stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(v); err != nil {
				w.res.Order = nil

				return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
			}
		}
		w.res.Order = append(w.res.Order, v)
	}

	return nil
}
