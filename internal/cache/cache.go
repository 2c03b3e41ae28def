// Package cache provides a generic, concurrency-safe cache keyed by string.
package cache

import (
	"context"

	"github.com/gruntwork-io/tagexpr/internal/telemetry"
	"github.com/puzpuzpuz/xsync/v3"
)

// Cache - generic cache implementation
type Cache[V any] struct {
	store *xsync.MapOf[string, V]
	Name  string
}

// NewCache - create new cache with generic type V
func NewCache[V any](name string) *Cache[V] {
	return &Cache[V]{
		Name:  name,
		store: xsync.NewMapOf[string, V](),
	}
}

// Get - fetch value from cache by key
func (c *Cache[V]) Get(ctx context.Context, key string) (V, bool) {
	value, found := c.store.Load(key)

	c.count(ctx, "get")

	if found {
		c.count(ctx, "hit")
	} else {
		c.count(ctx, "miss")
	}

	return value, found
}

// Put - put value into cache by key
func (c *Cache[V]) Put(ctx context.Context, key string, value V) {
	c.count(ctx, "put")
	c.store.Store(key, value)
}

// GetOrCompute returns the cached value for key, computing and storing it on a miss.
// Values for which compute fails are not cached.
func (c *Cache[V]) GetOrCompute(ctx context.Context, key string, compute func() (V, error)) (V, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}

	value, err := compute()
	if err != nil {
		return value, err
	}

	actual, _ := c.store.LoadOrStore(key, value)
	c.count(ctx, "put")

	return actual, nil
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	return c.store.Size()
}

func (c *Cache[V]) count(ctx context.Context, op string) {
	telemetry.TelemeterFromContext(ctx).Count(ctx, c.Name+"_cache_"+op, 1)
}
