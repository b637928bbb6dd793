package dfs

import (
	"context"
	"errors"

	"github.com/soniakeys/bits"
)

var (
	// ErrGraphNil is returned when a nil adjacency structure is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex is outside [0, V).
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex were
	// explored (post-order). Returning an error aborts traversal.
	OnExit func(v int) error

	// FullTraversal, if true, restarts from every unvisited vertex so that
	// all components are covered.
	FullTraversal bool
}

// DefaultOptions returns DFSOptions with a background context, no hooks,
// and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:           context.Background(),
		FullTraversal: false,
	}
}

// WithContext sets the Context used for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []int

	// Parent[v] is the vertex from which v was discovered, or -1 for roots
	// and unvisited vertices.
	Parent []int

	// Component[v] numbers the DFS tree that reached v, or -1 if v was
	// never reached.
	Component []int

	// Trees counts the DFS trees grown.
	Trees int

	// Visited has bit v set once v was discovered.
	Visited bits.Bits
}
