package decision

import (
	"context"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache hands out collections built on demand. Concurrent requests for the
// same size share one build, and a collection built for n vertices also
// serves every request up to n.
type Cache struct {
	opts  Options
	group singleflight.Group

	mu   sync.RWMutex
	best *Collection
}

// NewCache returns an empty cache. Options are passed on to Build.
func NewCache(opts ...Option) *Cache {
	return &Cache{opts: newOptions(opts)}
}

// Seed installs a prebuilt collection, e.g. one read with Load.
func (c *Cache) Seed(col *Collection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.best == nil || col.maxVertices > c.best.maxVertices {
		c.best = col
	}
}

// Get returns a collection answering graphs of up to maxVertices vertices.
// A build shared between callers is not tied to any one of them: a caller
// whose ctx ends gets ctx.Err() while the build goes on for the others.
func (c *Cache) Get(ctx context.Context, maxVertices int) (*Collection, error) {
	if col := c.lookup(maxVertices); col != nil {
		return col, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ch := c.group.DoChan(strconv.Itoa(maxVertices), func() (any, error) {
		if col := c.lookup(maxVertices); col != nil {
			return col, nil
		}
		col, err := Build(context.WithoutCancel(ctx), maxVertices, WithLogger(c.opts.Logger))
		if err != nil {
			return nil, err
		}
		c.Seed(col)

		return col, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		c.opts.Logger.Debug("decision collection ready", zap.Int("max_vertices", maxVertices), zap.Bool("shared", res.Shared))

		return res.Val.(*Collection), nil
	}
}

func (c *Cache) lookup(maxVertices int) *Collection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.best != nil && c.best.maxVertices >= maxVertices {
		return c.best
	}

	return nil
}
