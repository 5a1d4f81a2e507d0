// Package species resolves species references with a per-run lookup cache.
package species

import "github.com/s0up4200/swapisort/swapi"

// Cache maps a species URL to its record. It only grows and is not safe for
// concurrent use.
type Cache struct {
	items map[string]swapi.Species
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{items: make(map[string]swapi.Species)}
}

// Get retrieves a species by URL
func (c *Cache) Get(url string) (swapi.Species, bool) {
	s, ok := c.items[url]
	return s, ok
}

// Put stores a species under url
func (c *Cache) Put(url string, s swapi.Species) {
	c.items[url] = s
}

// Len returns the number of cached species
func (c *Cache) Len() int {
	return len(c.items)
}
