package world

import (
	"github.com/zyedidia/generic/cache"
)

type neighborhoodKey struct {
	root   int
	radius int
}

// NeighborhoodCache memoizes bounded neighborhood queries on one grid.
// Every entry is dropped as soon as the grid's link table changes.
type NeighborhoodCache struct {
	grid     *Grid
	version  uint64
	capacity int
	entries  *cache.Cache[neighborhoodKey, *Distances]

	Hits   int
	Misses int
}

// NewNeighborhoodCache creates a cache holding at most capacity neighborhoods.
func NewNeighborhoodCache(g *Grid, capacity int) *NeighborhoodCache {
	if capacity < 1 {
		capacity = 1
	}
	return &NeighborhoodCache{
		grid:     g,
		version:  g.Version(),
		capacity: capacity,
		entries:  cache.New[neighborhoodKey, *Distances](capacity),
	}
}

// Get returns the cells within radius steps of root with their distances.
// The returned table is shared and must not be modified.
func (c *NeighborhoodCache) Get(root *Cell, radius int) *Distances {
	if c.version != c.grid.Version() {
		c.Invalidate()
	}

	key := neighborhoodKey{root: root.ID, radius: radius}
	if d, ok := c.entries.Get(key); ok {
		c.Hits++
		return d
	}
	c.Misses++
	d := c.grid.Neighborhood(root, radius)
	c.entries.Put(key, d)
	return d
}

// Invalidate drops every cached neighborhood.
func (c *NeighborhoodCache) Invalidate() {
	c.entries = cache.New[neighborhoodKey, *Distances](c.capacity)
	c.version = c.grid.Version()
}

// Len returns the number of cached neighborhoods.
func (c *NeighborhoodCache) Len() int {
	return c.entries.Size()
}
