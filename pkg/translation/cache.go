package translation

import "sync"

type cacheKey struct {
	locale string
	group  string
}

// Cache is the in-process translation cache tier, keyed by (locale, group).
// It has no eviction policy beyond explicit Forget/Flush: its size is
// bounded by configured groups times supported locales. Safe for concurrent
// use when the owning service instance is shared across requests.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]Group
}

// NewCache creates an empty in-memory cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]Group)}
}

// Has reports whether an entry exists for the (locale, group) pair.
func (c *Cache) Has(locale, group string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[cacheKey{locale, group}]
	return ok
}

// Get returns the cached group data, if present.
func (c *Cache) Get(locale, group string) (Group, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.entries[cacheKey{locale, group}]
	return data, ok
}

// Put stores group data, overwriting any previous entry for the key.
func (c *Cache) Put(locale, group string, data Group) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{locale, group}] = data
}

// Forget removes one entry. Removing an absent entry is a no-op.
func (c *Cache) Forget(locale, group string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, cacheKey{locale, group})
}

// AllForLocale returns every cached group for a locale, keyed by group name.
func (c *Cache) AllForLocale(locale string) map[string]Group {
	c.mu.RLock()
	defer c.mu.RUnlock()

	groups := make(map[string]Group)
	for key, data := range c.entries {
		if key.locale == locale {
			groups[key.group] = data
		}
	}
	return groups
}

// Flush removes every entry.
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]Group)
}

// FlushLocale removes every entry for one locale.
func (c *Cache) FlushLocale(locale string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key.locale == locale {
			delete(c.entries, key)
		}
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
