package gameplay

import (
	"polarmaze/pkg/engine/world"
)

// Tracker knows every mover in the maze and predicts collisions one tick
// ahead by checking both the cell a mover is in and the one it is entering.
type Tracker struct {
	movers []*Navigator
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Add registers a mover. Its move requests are checked against every
// other registered mover from now on.
func (t *Tracker) Add(n *Navigator) {
	n.tracker = t
	t.movers = append(t.movers, n)
}

// Remove unregisters a mover that left the maze. It returns false if the
// mover was not tracked.
func (t *Tracker) Remove(n *Navigator) bool {
	for i, m := range t.movers {
		if m == n {
			t.movers = append(t.movers[:i], t.movers[i+1:]...)
			n.tracker = nil
			return true
		}
	}
	return false
}

// Len returns the number of tracked movers.
func (t *Tracker) Len() int {
	return len(t.movers)
}

// Each calls fn for every mover in the order they were added.
func (t *Tracker) Each(fn func(n *Navigator)) {
	for _, m := range t.movers {
		fn(m)
	}
}

// Obstacle returns a mover other than self that is in, or moving into,
// target. Hostile movers ignore the player so they can reach it; the
// player and neutral movers are blocked by everyone.
func (t *Tracker) Obstacle(self *Navigator, target *world.Cell) *Navigator {
	if t == nil {
		return nil
	}
	for _, m := range t.movers {
		if m == self {
			continue
		}
		if self.Role == RoleHostile && m.Role == RolePlayer {
			continue
		}
		if m.current == target || m.pending == target {
			return m
		}
	}
	return nil
}

// WouldBump reports whether self moving into target would collide.
func (t *Tracker) WouldBump(self *Navigator, target *world.Cell) bool {
	return t.Obstacle(self, target) != nil
}

// At returns the movers in, or moving into, cell.
func (t *Tracker) At(cell *world.Cell) []*Navigator {
	var out []*Navigator
	for _, m := range t.movers {
		if m.current == cell || m.pending == cell {
			out = append(out, m)
		}
	}
	return out
}

// Occupied reports whether any mover is in, or moving into, cell.
func (t *Tracker) Occupied(cell *world.Cell) bool {
	for _, m := range t.movers {
		if m.current == cell || m.pending == cell {
			return true
		}
	}
	return false
}
