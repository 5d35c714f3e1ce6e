package generator

import (
	"github.com/zyedidia/generic/stack"

	"polarmaze/pkg/engine/world"
)

// RecursiveBacktracker carves a depth-first spanning tree. It walks as far
// as it can before backing up, which gives long winding corridors.
type RecursiveBacktracker struct{}

// Name returns the name of this generator
func (b *RecursiveBacktracker) Name() string {
	return "backtracker"
}

// Carve links the grid into a perfect maze starting at start.
func (b *RecursiveBacktracker) Carve(g *world.Grid, start *world.Cell) error {
	rng := g.Rand()
	s := stack.New[*world.Cell]()
	s.Push(start)

	for s.Size() > 0 {
		cur := s.Peek()
		candidates := unvisitedNeighbors(g, cur)
		if len(candidates) == 0 {
			s.Pop()
			continue
		}
		next := candidates[rng.Intn(len(candidates))]
		if _, err := g.Link(cur, next); err != nil {
			return err
		}
		s.Push(next)
	}
	return nil
}
