package server

import (
	"sync"
	"time"
)

// responseCache holds serialized responses for a short TTL. Aggregates are
// cheap to recompute; the cache only smooths dashboard refresh storms.
type responseCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

type cacheEntry struct {
	data    []byte
	expires time.Time
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func (c *responseCache) get(key string) ([]byte, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.data, true
}

func (c *responseCache) set(key string, data []byte) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	now := time.Now()
	for k, entry := range c.entries {
		if now.After(entry.expires) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = cacheEntry{data: data, expires: now.Add(c.ttl)}
	c.mu.Unlock()
}
