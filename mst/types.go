// Package mst defines configuration options and sentinel errors for
// spanning forest computation.
package mst

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/decision"
)

// ErrInvalidGraph indicates that the input is not a graph on 0..vertices-1.
// It is returned together with the core error naming the exact problem.
var ErrInvalidGraph = errors.New("mst: invalid graph")

// ErrDisconnected indicates that a spanning tree was required but the
// graph has more than one connected component.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// ErrUnknownMethod indicates that Compute or Lookup got a name outside Methods.
var ErrUnknownMethod = errors.New("mst: unknown method")

const (
	// MethodPrim selects Prim's algorithm over a Fibonacci heap.
	MethodPrim = "prim"
	// MethodKruskal selects Kruskal's algorithm (sort and union-find).
	MethodKruskal = "kruskal"
	// MethodBoruvka selects Borůvka's algorithm.
	MethodBoruvka = "boruvka"
	// MethodFredmanTarjan selects the Fredman–Tarjan algorithm.
	MethodFredmanTarjan = "ft"
	// MethodPettieRamachandran selects the Pettie–Ramachandran algorithm.
	MethodPettieRamachandran = "pr"
)

// DefaultErrorRate is the soft heap error rate used by PettieRamachandran.
const DefaultErrorRate = 0.125

// Methods lists every method name in a stable order.
func Methods() []string {
	return []string{MethodPrim, MethodKruskal, MethodBoruvka, MethodFredmanTarjan, MethodPettieRamachandran}
}

// Options configures every algorithm of the package. Fields an algorithm
// has no use for are ignored.
type Options struct {
	// Method is used by Compute only.
	Method string

	// Root is the start vertex for Prim.
	Root int

	// ErrorRate is the soft heap error rate for PettieRamachandran, in (0, 1).
	ErrorRate float64

	// PartitionSize caps the partitions of PettieRamachandran. Zero picks
	// ceil(log2 log2 log2 V) per level.
	PartitionSize int

	// Collection answers partition queries for PettieRamachandran. When nil
	// or too small, Cache (or a one-off build) supplies one.
	Collection *decision.Collection
	Cache      *decision.Cache

	// RequireConnected turns a forest result into ErrDisconnected.
	RequireConnected bool

	Logger  *zap.Logger
	Context context.Context
}

// Option configures Options.
type Option func(*Options)

// WithMethod sets the algorithm Compute runs.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithRoot sets the start vertex for Prim; ignored by the others.
func WithRoot(root int) Option {
	return func(o *Options) {
		o.Root = root
	}
}

// WithErrorRate sets the soft heap error rate of PettieRamachandran.
func WithErrorRate(eps float64) Option {
	return func(o *Options) {
		o.ErrorRate = eps
	}
}

// WithPartitionSize fixes the partition size of PettieRamachandran.
func WithPartitionSize(n int) Option {
	return func(o *Options) {
		o.PartitionSize = n
	}
}

// WithCollection supplies precomputed decision trees to PettieRamachandran.
func WithCollection(c *decision.Collection) Option {
	return func(o *Options) {
		o.Collection = c
	}
}

// WithCache lets PettieRamachandran fetch decision trees from a shared cache.
func WithCache(c *decision.Cache) Option {
	return func(o *Options) {
		o.Cache = c
	}
}

// WithRequireConnected makes every algorithm fail with ErrDisconnected
// instead of returning a forest.
func WithRequireConnected() Option {
	return func(o *Options) {
		o.RequireConnected = true
	}
}

// WithLogger sets the debug logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithContext sets the context used while building decision trees.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Context = ctx
		}
	}
}

// DefaultOptions returns Options for Kruskal rooted at vertex 0, with the
// default error rate and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Method:    MethodKruskal,
		Root:      0,
		ErrorRate: DefaultErrorRate,
		Logger:    zap.NewNop(),
		Context:   context.Background(),
	}
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Func is the common shape of every algorithm instantiated for plain edges.
type Func[W cmp.Ordered] func(vertices int, edges []core.Weighted[W], opts ...Option) ([]core.Weighted[W], error)

// Lookup resolves a method name to its algorithm.
func Lookup[W cmp.Ordered](name string) (Func[W], error) {
	switch name {
	case MethodPrim:
		return Prim[W, core.Weighted[W]], nil
	case MethodKruskal:
		return Kruskal[W, core.Weighted[W]], nil
	case MethodBoruvka:
		return Boruvka[W, core.Weighted[W]], nil
	case MethodFredmanTarjan:
		return FredmanTarjan[W, core.Weighted[W]], nil
	case MethodPettieRamachandran:
		return PettieRamachandran[W, core.Weighted[W]], nil
	default:
		return nil, fmt.Errorf("mst: Lookup(%q): %w", name, ErrUnknownMethod)
	}
}

// Compute runs the algorithm named by the Method option (Kruskal by default).
func Compute[W cmp.Ordered, E core.Edge[W, E]](vertices int, edges []E, opts ...Option) ([]E, error) {
	o := newOptions(opts)
	switch o.Method {
	case MethodPrim:
		return Prim[W](vertices, edges, opts...)
	case MethodKruskal:
		return Kruskal[W](vertices, edges, opts...)
	case MethodBoruvka:
		return Boruvka[W](vertices, edges, opts...)
	case MethodFredmanTarjan:
		return FredmanTarjan[W](vertices, edges, opts...)
	case MethodPettieRamachandran:
		return PettieRamachandran[W](vertices, edges, opts...)
	default:
		return nil, fmt.Errorf("mst: Compute(%q): %w", o.Method, ErrUnknownMethod)
	}
}

// validate checks the input graph of method.
func validate[E core.Incident[E]](method string, vertices int, edges []E) error {
	if err := core.CheckRange(vertices, slices.Values(edges)); err != nil {
		return fmt.Errorf("mst: %s: %w: %w", method, ErrInvalidGraph, err)
	}

	return nil
}

// finish applies RequireConnected to a computed forest.
func finish[E any](method string, vertices int, forest []E, o Options) ([]E, error) {
	if o.RequireConnected && vertices > 0 && len(forest) < vertices-1 {
		return nil, fmt.Errorf("mst: %s: %d of %d edges: %w", method, len(forest), vertices-1, ErrDisconnected)
	}
	if forest == nil {
		forest = []E{}
	}

	return forest, nil
}
