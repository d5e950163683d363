package reference

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

type cacheKey struct {
	table Table
	code  string
}

type cacheEntry struct {
	valid          bool
	expiresAt      time.Time
	lastAccessedAt time.Time
}

// CachedLookup memoises answers of a slower Lookup with TTL and LRU
// eviction. Errors are never cached.
type CachedLookup struct {
	next Lookup

	// entries maps (table, code) to the cached answer
	entries map[cacheKey]*cacheEntry

	// ttl is the time-to-live for entries (0 = no expiry)
	ttl time.Duration

	// maxEntries is the maximum number of entries (0 = unlimited)
	maxEntries int

	mu sync.RWMutex

	hits   atomic.Int64
	misses atomic.Int64

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewCachedLookup wraps next. If ttl is 0, entries never expire. If
// maxEntries is 0, the cache is unbounded.
func NewCachedLookup(next Lookup, ttl time.Duration, maxEntries int) *CachedLookup {
	c := &CachedLookup{
		next:       next,
		entries:    make(map[cacheKey]*cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		stopCh:     make(chan struct{}),
	}

	if ttl > 0 {
		interval := ttl / 2
		if interval < 10*time.Second {
			interval = 10 * time.Second
		}
		go c.cleanupExpired(interval)
	}

	return c
}

// IsValidCode implements Lookup.
func (c *CachedLookup) IsValidCode(ctx context.Context, table Table, code string) (bool, error) {
	key := cacheKey{table: table, code: code}
	now := time.Now()

	c.mu.RLock()
	entry, ok := c.entries[key]
	fresh := ok && (c.ttl == 0 || now.Before(entry.expiresAt))
	var valid bool
	if fresh {
		valid = entry.valid
	}
	c.mu.RUnlock()

	if fresh {
		c.hits.Add(1)
		c.mu.Lock()
		if e, ok := c.entries[key]; ok {
			e.lastAccessedAt = now
		}
		c.mu.Unlock()
		return valid, nil
	}

	c.misses.Add(1)
	valid, err := c.next.IsValidCode(ctx, table, code)
	if err != nil {
		return false, err
	}
	c.set(key, valid, now)
	return valid, nil
}

func (c *CachedLookup) set(key cacheKey, valid bool, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		if _, exists := c.entries[key]; !exists {
			c.evictLRU()
		}
	}

	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = now.Add(c.ttl)
	}
	c.entries[key] = &cacheEntry{valid: valid, expiresAt: expiresAt, lastAccessedAt: now}
}

// evictLRU must be called with the write lock held.
func (c *CachedLookup) evictLRU() {
	var oldestKey cacheKey
	var oldest time.Time
	found := false

	for key, entry := range c.entries {
		if !found || entry.lastAccessedAt.Before(oldest) {
			oldestKey, oldest, found = key, entry.lastAccessedAt, true
		}
	}
	if found {
		delete(c.entries, oldestKey)
	}
}

// Size returns the number of cached answers.
func (c *CachedLookup) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the hit and miss counters.
func (c *CachedLookup) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Purge drops every cached answer, e.g. after a reference import.
func (c *CachedLookup) Purge() {
	c.mu.Lock()
	c.entries = make(map[cacheKey]*cacheEntry)
	c.mu.Unlock()
}

// Close stops the background cleanup goroutine.
func (c *CachedLookup) Close() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *CachedLookup) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

func (c *CachedLookup) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}
