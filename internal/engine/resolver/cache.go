package resolver

import (
	"sync"

	"go.trai.ch/scriptmerge/internal/core/domain"
	"golang.org/x/sync/singleflight"
)

// Cache maps component paths to their resolution. Entries are inserted at most once
// and never replaced or evicted, so a cached not-found stays not-found.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]domain.Resolution
	group   singleflight.Group
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]domain.Resolution)}
}

// Get returns the cached resolution for path.
func (c *Cache) Get(path string) (domain.Resolution, bool) {
	c.mu.RLock()
	res, ok := c.entries[path]
	c.mu.RUnlock()
	return res, ok
}

// LoadOrStore stores res for path unless an entry already exists.
// It returns the entry held by the cache and whether it was already present.
func (c *Cache) LoadOrStore(path string, res domain.Resolution) (domain.Resolution, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[path]; ok {
		return existing, true
	}
	c.entries[path] = res
	return res, false
}

// GetOrResolve returns the cached resolution for path, calling resolve on a miss.
// Concurrent callers asking for the same path share a single resolve call.
func (c *Cache) GetOrResolve(path string, resolve func(string) domain.Resolution) domain.Resolution {
	if res, ok := c.Get(path); ok {
		return res
	}

	v, _, _ := c.group.Do(path, func() (any, error) {
		// A caller that lost the race to an earlier flight sees its stored result here.
		if res, ok := c.Get(path); ok {
			return res, nil
		}
		res, _ := c.LoadOrStore(path, resolve(path))
		return res, nil
	})

	res, _ := v.(domain.Resolution)
	return res
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
