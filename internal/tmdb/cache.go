package tmdb

import (
	"sync"
	"time"
)

// defaultCacheEntries bounds the details cache.
const defaultCacheEntries = 512

type cacheEntry struct {
	details *Details
	expires time.Time
}

// cache holds details keyed by "type:id" for a fixed TTL. When full, set
// drops expired entries first and then the entry closest to expiry.
type cache struct {
	mu         sync.Mutex
	entries    map[string]cacheEntry
	ttl        time.Duration
	maxEntries int
}

func newCache(ttl time.Duration, maxEntries int) *cache {
	return &cache{
		entries:    make(map[string]cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

func (c *cache) get(key string) (*Details, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.details, true
}

func (c *cache) set(key string, details *Details) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxEntries {
		c.evict(now)
	}
	c.entries[key] = cacheEntry{
		details: details,
		expires: now.Add(c.ttl),
	}
}

// evict makes room for one entry. Callers hold mu.
func (c *cache) evict(now time.Time) {
	var (
		oldest    string
		oldestExp time.Time
	)
	for k, e := range c.entries {
		if now.After(e.expires) {
			delete(c.entries, k)
			continue
		}
		if oldest == "" || e.expires.Before(oldestExp) {
			oldest, oldestExp = k, e.expires
		}
	}
	if len(c.entries) >= c.maxEntries && oldest != "" {
		delete(c.entries, oldest)
	}
}

func (c *cache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
