package cache

import (
	"context"
	"fmt"
)

// ContextWithCache returns a copy of ctx carrying c under key.
func ContextWithCache[V any](ctx context.Context, key any, c *Cache[V]) context.Context {
	return context.WithValue(ctx, key, c)
}

// ContextCache returns cache from the context. If the cache is nil, it creates a new instance.
func ContextCache[V any](ctx context.Context, key any) *Cache[V] {
	cacheInstance, ok := ctx.Value(key).(*Cache[V])
	if !ok || cacheInstance == nil {
		cacheInstance = NewCache[V](fmt.Sprintf("%v", key))
	}

	return cacheInstance
}
