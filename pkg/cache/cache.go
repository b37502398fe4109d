// Package cache provides a small TTL cache for immutable response values.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Stats is a point-in-time snapshot of a cache, shaped for health endpoints.
type Stats struct {
	Size       int     `json:"size"`
	MaxSize    int     `json:"maxsize"`
	TTLSeconds float64 `json:"ttl"`
}

// Cache is an expiring LRU keyed by string. Values are expected to be
// immutable; the cache never copies them.
type Cache[V any] struct {
	lru     *expirable.LRU[string, V]
	maxSize int
	ttl     time.Duration
}

// New creates a cache holding at most maxSize entries, each expiring ttl
// after insertion.
func New[V any](maxSize int, ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		lru:     expirable.NewLRU[string, V](maxSize, nil, ttl),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

// Get returns the cached value for key, if present and not expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	return c.lru.Get(key)
}

// Add stores value under key, evicting the oldest entry if the cache is full.
func (c *Cache[V]) Add(key string, value V) {
	c.lru.Add(key, value)
}

// Len returns the number of live entries.
func (c *Cache[V]) Len() int {
	return c.lru.Len()
}

// Purge drops all entries.
func (c *Cache[V]) Purge() {
	c.lru.Purge()
}

// Stats returns a snapshot of the cache configuration and fill level.
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Size:       c.lru.Len(),
		MaxSize:    c.maxSize,
		TTLSeconds: c.ttl.Seconds(),
	}
}
