package client

import (
	"context"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"golang.org/x/sync/singleflight"
)

// Key normalizes query key parts into the string the cache is indexed by.
func Key(parts ...string) string {
	if parts == nil {
		parts = []string{}
	}
	b, err := sonic.ConfigStd.Marshal(parts)
	if err != nil {
		// []string always marshals
		panic(err)
	}
	return string(b)
}

type cacheEntry struct {
	parts     []string
	data      any
	fetchedAt time.Time
}

// Cache holds the last successful result of each query key. Entries never
// expire on their own; mutations drop them with Invalidate. Values are shared
// between callers and must be treated as read-only.
type Cache struct {
	mu       sync.RWMutex
	entries  map[string]cacheEntry
	inflight map[string][]string
	// bumped on every invalidation so fetches started earlier do not store
	// stale results
	generation uint64
	group      singleflight.Group
	now        func() time.Time
}

func NewCache() *Cache {
	return &Cache{
		entries:  make(map[string]cacheEntry),
		inflight: make(map[string][]string),
		now:      time.Now,
	}
}

// Get returns the cached value for parts and when it was fetched.
func (c *Cache) Get(parts ...string) (any, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[Key(parts...)]
	if !ok {
		return nil, time.Time{}, false
	}
	return e.data, e.fetchedAt, true
}

func (c *Cache) Set(data any, parts ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(Key(parts...), parts, data)
}

func (c *Cache) set(key string, parts []string, data any) {
	c.entries[key] = cacheEntry{
		parts:     append([]string(nil), parts...),
		data:      data,
		fetchedAt: c.now(),
	}
}

// Fetch returns the cached value for parts, or runs fetch and caches its
// result. Concurrent fetches of the same key share one call.
func (c *Cache) Fetch(ctx context.Context, parts []string, fetch func(context.Context) (any, error)) (any, error) {
	if data, _, ok := c.Get(parts...); ok {
		return data, nil
	}
	key := Key(parts...)
	ch := c.group.DoChan(key, func() (any, error) {
		c.mu.Lock()
		gen := c.generation
		c.inflight[key] = parts
		c.mu.Unlock()

		// shared by every waiter, so one caller leaving must not cancel it
		data, err := fetch(context.WithoutCancel(ctx))

		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.inflight, key)
		if err == nil && gen == c.generation {
			c.set(key, parts, data)
		}
		return data, err
	})
	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Invalidate drops every entry whose key parts start with prefix and returns
// how many were dropped. ["/api/daily"] matches ["/api/daily", "2024-05-01"]
// but not ["/api/daily-all"]. An empty prefix clears the cache.
func (c *Cache) Invalidate(prefix ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	dropped := 0
	for key, e := range c.entries {
		if hasPrefix(e.parts, prefix) {
			delete(c.entries, key)
			dropped++
		}
	}
	for key, parts := range c.inflight {
		if hasPrefix(parts, prefix) {
			c.group.Forget(key)
		}
	}
	return dropped
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func hasPrefix(parts, prefix []string) bool {
	if len(prefix) > len(parts) {
		return false
	}
	for i, p := range prefix {
		if parts[i] != p {
			return false
		}
	}
	return true
}
