package world

import (
	"fmt"
	"sort"
)

// AddDoor turns an open passage into a locked door: the pair leaves the
// removed walls list, joins the doors set and its link is severed.
func (g *Grid) AddDoor(a, b *Cell) error {
	if !g.Contains(a) || !g.Contains(b) {
		return ErrForeignCell
	}
	if !g.IsAdjacent(a, b) {
		return fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
	}
	if !a.IsLinked(b) {
		return fmt.Errorf("%w: %v and %v", ErrNotLinked, a, b)
	}

	p := NewPair(a, b)
	for i, w := range g.removedWalls {
		if w == p {
			g.removedWalls = append(g.removedWalls[:i], g.removedWalls[i+1:]...)
			break
		}
	}
	g.doors.Put(p)
	g.Unlink(a, b)
	return nil
}

// DoorExists reports whether a locked door separates a and b, in either orientation.
func (g *Grid) DoorExists(a, b *Cell) bool {
	if a == nil || b == nil {
		return false
	}
	return g.doors.Has(NewPair(a, b))
}

// OpenDoor removes the door between a and b and restores their link.
// Only the navigation layer opens doors, after taking a key from the mover.
func (g *Grid) OpenDoor(a, b *Cell) error {
	if !g.DoorExists(a, b) {
		return fmt.Errorf("%w: %v and %v", ErrNoDoor, a, b)
	}
	g.doors.Remove(NewPair(a, b))
	_, err := g.Link(a, b)
	return err
}

// Doors returns the locked doors sorted by cell index.
func (g *Grid) Doors() []Pair {
	out := make([]Pair, 0, g.doors.Size())
	g.doors.Each(func(p Pair) {
		out = append(out, p)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// PlaceDoors turns up to n removed walls into doors, taking them in random
// order. It returns the doors placed.
func (g *Grid) PlaceDoors(n int) []Pair {
	walls := g.RemovedWalls()
	g.rng.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})
	var placed []Pair
	for _, w := range walls {
		if len(placed) >= n {
			break
		}
		if err := g.AddDoor(g.cells[w.A], g.cells[w.B]); err == nil {
			placed = append(placed, w)
		}
	}
	return placed
}
