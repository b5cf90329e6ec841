package catalog

import (
	"context"
	"sync"
)

// CityCache memoizes the distinct city list so list endpoints do not hit the
// database on every request. The cache is invalidated whenever a place is
// created or updated; the next read reloads.
type CityCache struct {
	mu     sync.Mutex
	loaded bool
	cities []string
	load   func(ctx context.Context) ([]string, error)
}

// NewCityCache wires a cache over the given loader
func NewCityCache(load func(ctx context.Context) ([]string, error)) *CityCache {
	return &CityCache{load: load}
}

// Names returns the cached city list, loading it on first use
func (c *CityCache) Names(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		cities, err := c.load(ctx)
		if err != nil {
			return nil, err
		}
		c.cities = cities
		c.loaded = true
	}

	out := make([]string, len(c.cities))
	copy(out, c.cities)
	return out, nil
}

// Invalidate drops the cached list so the next read reloads
func (c *CityCache) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.cities = nil
	c.mu.Unlock()
}
