package world

import (
	"fmt"
	"math"
)

// Pair is an unordered pair of cells, stored by arena index with A < B.
type Pair struct {
	A int
	B int
}

// NewPair returns the normalized pair for two cells.
func NewPair(a, b *Cell) Pair {
	return pairOf(a.ID, b.ID)
}

func pairOf(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Algorithm carves passages into a fresh grid, starting from start.
type Algorithm interface {
	Name() string
	Carve(g *Grid, start *Cell) error
}

// Generate runs alg over the grid. A nil start picks a random cell.
//
// Rooms must be carved after generation: pre-linked room cells would look
// visited to the generator and leave part of the maze unreachable.
func (g *Grid) Generate(alg Algorithm, start *Cell) error {
	if g.roomsCarved {
		return ErrRoomsCarved
	}
	if g.generated {
		return ErrAlreadyGenerated
	}
	if start == nil {
		start = g.RandomCell()
	} else if !g.Contains(start) {
		return ErrForeignCell
	}
	if err := alg.Carve(g, start); err != nil {
		return fmt.Errorf("generate with %s: %w", alg.Name(), err)
	}
	g.generated = true
	return nil
}

// Link opens a passage between two adjacent cells. It returns false when
// the passage was already open.
func (g *Grid) Link(a, b *Cell) (bool, error) {
	if !g.Contains(a) || !g.Contains(b) {
		return false, ErrForeignCell
	}
	if !g.IsAdjacent(a, b) {
		return false, fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
	}
	if a.links.Has(b.ID) {
		return false, nil
	}
	a.links.Put(b.ID)
	b.links.Put(a.ID)
	g.version++
	return true, nil
}

// Unlink closes the passage between a and b. It returns false when there was none.
func (g *Grid) Unlink(a, b *Cell) bool {
	if a == nil || b == nil || !a.links.Has(b.ID) {
		return false
	}
	a.links.Remove(b.ID)
	b.links.Remove(a.ID)
	g.version++
	return true
}

// linkExtra links two cells known to be adjacent and records the new
// passage as a removed wall.
func (g *Grid) linkExtra(a, b *Cell) bool {
	if ok, _ := g.Link(a, b); !ok {
		return false
	}
	g.removedWalls = append(g.removedWalls, NewPair(a, b))
	return true
}

// RemovedWalls returns the passages added on top of the generated maze, in
// the order they were added. These are the candidates for doors.
func (g *Grid) RemovedWalls() []Pair {
	out := make([]Pair, len(g.removedWalls))
	copy(out, g.removedWalls)
	return out
}

// IsRemovedWall reports whether the pair was added after generation.
func (g *Grid) IsRemovedWall(a, b *Cell) bool {
	p := NewPair(a, b)
	for _, w := range g.removedWalls {
		if w == p {
			return true
		}
	}
	return false
}

// Braid turns a fraction p of the dead ends into loops. Each dead end,
// visited in random order, is linked to an unlinked neighbor, preferring
// one that is itself a dead end. Cells that stopped being dead ends earlier
// in the pass are skipped. It returns the number of links added.
func (g *Grid) Braid(p float64) int {
	deadEnds := g.DeadEnds()
	g.rng.Shuffle(len(deadEnds), func(i, j int) {
		deadEnds[i], deadEnds[j] = deadEnds[j], deadEnds[i]
	})

	added := 0
	for _, c := range deadEnds {
		if !c.IsDeadEnd() || g.rng.Float64() >= p {
			continue
		}

		candidates := g.UnlinkedNeighbors(c)
		var best []*Cell
		for _, n := range candidates {
			if n.IsDeadEnd() {
				best = append(best, n)
			}
		}
		if len(best) > 0 {
			candidates = best
		}
		if len(candidates) == 0 {
			continue
		}

		if g.linkExtra(c, candidates[g.rng.Intn(len(candidates))]) {
			added++
		}
	}
	return added
}

// RemoveWalls makes floor(p * Size()) random picks, each linking a random
// cell to a random unlinked neighbor. A pick whose cell has no unlinked
// neighbor does nothing. It returns the number of links added.
func (g *Grid) RemoveWalls(p float64) int {
	picks := int(math.Floor(p * float64(len(g.cells))))
	added := 0
	for i := 0; i < picks; i++ {
		c := g.RandomCell()
		candidates := g.UnlinkedNeighbors(c)
		if len(candidates) == 0 {
			continue
		}
		if g.linkExtra(c, candidates[g.rng.Intn(len(candidates))]) {
			added++
		}
	}
	return added
}
