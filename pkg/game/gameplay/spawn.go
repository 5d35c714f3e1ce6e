package gameplay

import (
	"errors"
	"fmt"
	"math/rand"

	"polarmaze/pkg/engine/world"
)

// ErrOutOfSpace is returned when a spawn query finds no free cell. It
// points at a level layout that is too small for what it asks for.
var ErrOutOfSpace = errors.New("gameplay: no free cell to spawn in")

// Spawner finds free cells near a point of the maze.
type Spawner struct {
	grid    *world.Grid
	tracker *Tracker
	cache   *world.NeighborhoodCache
	rng     *rand.Rand
}

// NewSpawner creates a spawner that keeps up to cacheSize neighborhoods.
func NewSpawner(grid *world.Grid, tracker *Tracker, cacheSize int, rng *rand.Rand) *Spawner {
	return &Spawner{
		grid:    grid,
		tracker: tracker,
		cache:   world.NewNeighborhoodCache(grid, cacheSize),
		rng:     rng,
	}
}

// Cache exposes the neighborhood cache, mainly for inspection in tests.
func (s *Spawner) Cache() *world.NeighborhoodCache {
	return s.cache
}

// Candidates returns the unoccupied cells between minDist and maxDist
// steps from center, in ID order.
func (s *Spawner) Candidates(center *world.Cell, minDist, maxDist int) []*world.Cell {
	d := s.cache.Get(center, maxDist)
	var out []*world.Cell
	for _, c := range d.Cells() {
		if v, _ := d.Get(c); v < minDist {
			continue
		}
		if s.tracker != nil && s.tracker.Occupied(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Pick returns a random free cell between minDist and maxDist steps from center.
func (s *Spawner) Pick(center *world.Cell, minDist, maxDist int) (*world.Cell, error) {
	candidates := s.Candidates(center, minDist, maxDist)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %d-%d steps from %v", ErrOutOfSpace, minDist, maxDist, center)
	}
	return candidates[s.rng.Intn(len(candidates))], nil
}
