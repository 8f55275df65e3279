package smtpcreds

import (
	"sync"
	"time"
)

// cacheEntry holds a resolved credential set with its expiration time.
type cacheEntry struct {
	creds     *Credentials
	expiresAt time.Time
}

func (e *cacheEntry) expired() bool {
	return time.Now().After(e.expiresAt)
}

// CacheMetrics tracks credential cache performance statistics.
type CacheMetrics struct {
	Hits   int64
	Misses int64
}

// cache is a thread-safe TTL cache keyed by secret name. Expired entries
// are evicted lazily on read.
type cache struct {
	entries map[string]*cacheEntry
	ttl     time.Duration
	mu      sync.RWMutex
	metrics CacheMetrics
}

func newCache(ttl time.Duration) *cache {
	return &cache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

func (c *cache) get(key string) *Credentials {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists || entry.expired() {
		if exists {
			delete(c.entries, key)
		}
		c.metrics.Misses++
		return nil
	}

	c.metrics.Hits++
	return entry.creds
}

func (c *cache) set(key string, creds *Credentials) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &cacheEntry{
		creds:     creds,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func (c *cache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
}

func (c *cache) snapshot() CacheMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.metrics
}
