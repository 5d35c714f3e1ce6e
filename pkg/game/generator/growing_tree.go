package generator

import (
	"polarmaze/pkg/engine/world"
)

// Selection decides which active cell the growing tree extends next.
type Selection int

const (
	// SelectRandom picks any active cell, giving short branchy corridors.
	SelectRandom Selection = iota
	// SelectLast picks the newest active cell and behaves like the backtracker.
	SelectLast
)

func (s Selection) String() string {
	switch s {
	case SelectRandom:
		return "random"
	case SelectLast:
		return "last"
	default:
		return "unknown"
	}
}

// GrowingTree keeps a list of active cells. Each step extends one of them
// into an unvisited neighbor, or retires it when it has none left.
type GrowingTree struct {
	Selection Selection
}

// Name returns the name of this generator
func (t *GrowingTree) Name() string {
	return "growing-tree-" + t.Selection.String()
}

func (t *GrowingTree) pick(g *world.Grid, active []*world.Cell) int {
	if t.Selection == SelectLast {
		return len(active) - 1
	}
	return g.Rand().Intn(len(active))
}

// Carve links the grid into a perfect maze starting at start.
func (t *GrowingTree) Carve(g *world.Grid, start *world.Cell) error {
	rng := g.Rand()
	active := []*world.Cell{start}

	for len(active) > 0 {
		i := t.pick(g, active)
		cell := active[i]

		candidates := unvisitedNeighbors(g, cell)
		if len(candidates) == 0 {
			active = append(active[:i], active[i+1:]...)
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		if _, err := g.Link(cell, next); err != nil {
			return err
		}
		active = append(active, next)
	}
	return nil
}
