package worksheet

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a rendered worksheet stays reusable.
const DefaultCacheTTL = 5 * time.Minute

// DefaultCacheMaxEntries caps the cache; exceeding it triggers a sweep of
// expired entries at insert time. Entries within TTL are never evicted, so
// the map can still grow past the cap during a hot TTL window.
const DefaultCacheMaxEntries = 256

// CacheEntry is one stored render result.
type CacheEntry struct {
	Payload     []byte
	ContentType string
	ExpiresAt   time.Time
}

// Cache is a TTL-bounded in-memory store for rendered worksheets, keyed by
// the canonical request hash. Entries expire lazily on read; a hit is
// returned as-is until its TTL lapses, never refreshed in place.
type Cache struct {
	mu         sync.RWMutex
	ttl        time.Duration
	maxEntries int
	entries    map[string]CacheEntry
	now        func() time.Time
}

// NewCache creates a cache. ttl <= 0 uses DefaultCacheTTL; maxEntries <= 0
// uses DefaultCacheMaxEntries.
func NewCache(ttl time.Duration, maxEntries int) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultCacheMaxEntries
	}
	return &Cache{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]CacheEntry),
		now:        time.Now,
	}
}

// Get returns the cached payload and content type, or ok=false on a miss.
// An expired entry is evicted and reported as a miss.
func (c *Cache) Get(key string) ([]byte, string, bool) {
	c.mu.RLock()
	entry, found := c.entries[key]
	c.mu.RUnlock()

	if !found {
		return nil, "", false
	}
	if c.now().After(entry.ExpiresAt) {
		c.mu.Lock()
		// Re-check under the write lock: a concurrent Put may have refreshed.
		if cur, still := c.entries[key]; still && c.now().After(cur.ExpiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, "", false
	}
	return entry.Payload, entry.ContentType, true
}

// Put stores a payload expiring at now + TTL.
func (c *Cache) Put(key string, payload []byte, contentType string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		c.sweepLocked()
	}
	c.entries[key] = CacheEntry{
		Payload:     payload,
		ContentType: contentType,
		ExpiresAt:   c.now().Add(c.ttl),
	}
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// sweepLocked drops every expired entry. Caller holds the write lock.
func (c *Cache) sweepLocked() {
	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
		}
	}
}

// CacheKey derives the canonical hash for a request. The format tag keeps
// PDF and preview payloads for the same worksheet distinct.
func CacheKey(words []string, listName, activityID, format string) string {
	h := sha256.New()
	h.Write([]byte(strings.Join(words, "\x00")))
	h.Write([]byte{0})
	h.Write([]byte(listName))
	h.Write([]byte{0})
	h.Write([]byte(activityID))
	h.Write([]byte{0})
	h.Write([]byte(format))
	return hex.EncodeToString(h.Sum(nil))
}
