package cache

import (
	"context"
	"sync"
)

// Cache is a goroutine safe read-through cache with generics type.
// Concurrent misses on the same key share a single read.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	data    map[K]V
	pending map[K]*call[V]
	read    func(context.Context, K) (V, error)
}

type call[V any] struct {
	done chan struct{}
	val  V
	err  error
	dups int // callers waiting on this read
}

// New creates a new Cache.
func New[K comparable, V any](read func(context.Context, K) (V, error)) *Cache[K, V] {
	return &Cache[K, V]{
		data:    make(map[K]V),
		pending: make(map[K]*call[V]),
		read:    read,
	}
}

// Get returns a value from the cache, reading it on a miss.
// A failed read is not cached.
func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, error) {
	c.mu.Lock()
	if v, ok := c.data[key]; ok {
		c.mu.Unlock()
		return v, nil // cache hit
	}
	if p, ok := c.pending[key]; ok {
		p.dups++
		c.mu.Unlock()
		select {
		case <-p.done:
			return p.val, p.err
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err()
		}
	}
	p := &call[V]{done: make(chan struct{})}
	c.pending[key] = p
	c.mu.Unlock()

	p.val, p.err = c.read(ctx, key)

	c.mu.Lock()
	delete(c.pending, key)
	if p.err == nil {
		c.data[key] = p.val
	}
	c.mu.Unlock()
	close(p.done)

	return p.val, p.err
}

// Len returns the number of cached values.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}
