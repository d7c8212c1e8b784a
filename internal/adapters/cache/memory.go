package cache

import (
	"sync"
	"time"

	"conferencehub/internal/domain"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// memoryCache is a process-local key-value cache with per-entry expiry. It
// stands in for the external key-value store the deployment may front reads
// with; staleness is bounded by the TTL the caller passes to SetEx.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemory returns an empty in-memory cache.
func NewMemory() domain.Cache {
	return &memoryCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (c *memoryCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; SetEx may have refreshed it.
		if cur, ok := c.entries[key]; ok && c.now().After(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (c *memoryCache) SetEx(key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}
