package tmplloader

import "sync"

// pathCache remembers resolved template paths by cache key.
// Entries are never evicted or revalidated, and failed lookups are not
// stored, so a missing template is searched for again on every call.
type pathCache struct {
	mu      sync.RWMutex
	located map[string]string
}

func newPathCache() *pathCache {
	return &pathCache{located: make(map[string]string)}
}

func (c *pathCache) get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	path, ok := c.located[key]
	return path, ok
}

func (c *pathCache) put(key, path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.located[key] = path
}

func (c *pathCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.located)
}
