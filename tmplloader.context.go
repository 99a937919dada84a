package tmplloader

import (
	"strings"
	"sync"
)

// PathSeparator separates segments in DataContext.Get paths
const PathSeparator = "."

// TemplateData is the object-like form caller data takes inside a
// DataContext: a string keyed property bag, so `data.foo` resolves in
// template code.
type TemplateData map[string]any

// DataContext is the explicit rendering context handed to includers.
// Values published with Loader.SetTemplateData live here until released.
type DataContext struct {
	mu   sync.RWMutex
	vars map[string]any
}

// NewDataContext creates a context seeded with vars. A nil map starts empty.
func NewDataContext(vars map[string]any) *DataContext {
	c := &DataContext{vars: make(map[string]any, len(vars))}
	for k, v := range vars {
		c.vars[k] = v
	}
	return c
}

// Set stores value under name, replacing any previous value.
func (c *DataContext) Set(name string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vars[name] = value
}

// Delete removes name. It reports whether the name was present.
func (c *DataContext) Delete(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.vars[name]; !ok {
		return false
	}
	delete(c.vars, name)
	return true
}

// Lookup returns the top-level variable name.
func (c *DataContext) Lookup(name string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.vars[name]
	return v, ok
}

// Get resolves a dot-notation path such as "recipe.title".
func (c *DataContext) Get(path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var current any = c.vars
	for _, part := range strings.Split(path, PathSeparator) {
		if part == "" {
			continue
		}
		switch v := current.(type) {
		case map[string]any:
			val, ok := v[part]
			if !ok {
				return nil, false
			}
			current = val
		case TemplateData:
			val, ok := v[part]
			if !ok {
				return nil, false
			}
			current = val
		case map[string]string:
			val, ok := v[part]
			if !ok {
				return nil, false
			}
			current = val
		default:
			return nil, false
		}
	}
	return current, true
}

// Has reports whether the path resolves.
func (c *DataContext) Has(path string) bool {
	_, ok := c.Get(path)
	return ok
}

// Len returns the number of top-level variables.
func (c *DataContext) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.vars)
}

// Vars returns a shallow copy of the top-level variables.
func (c *DataContext) Vars() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]any, len(c.vars))
	for k, v := range c.vars {
		out[k] = v
	}
	return out
}
