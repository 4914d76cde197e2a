package server

import (
	"strings"
	"sync"
	"time"
)

// resultCache is the keyed response cache owned by the presentation layer.
// The core below it recomputes on every request; only rendered responses are
// cached here. A key embeds every request parameter, so any parameter change
// is automatically a different key, and entries expire after a TTL. A zero
// TTL disables caching entirely.
type resultCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	payload  []byte
	storedAt time.Time
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// get returns the cached payload for key, treating expired entries as misses.
func (c *resultCache) get(key string) ([]byte, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.now().Sub(entry.storedAt) > c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()

		return nil, false
	}

	return entry.payload, true
}

// set stores a rendered payload under key.
func (c *resultCache) set(key string, payload []byte) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{payload: payload, storedAt: c.now()}
	c.mu.Unlock()
}

// cacheKey joins request parameters into a cache key.
func cacheKey(parts ...string) string {
	return strings.Join(parts, "|")
}
