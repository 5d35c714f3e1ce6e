package generator

import (
	"github.com/zyedidia/generic/mapset"

	"polarmaze/pkg/engine/world"
)

// Wilson builds a uniform spanning tree from loop-erased random walks.
// Each walk starts at an unvisited cell and wanders until it hits the
// tree; the loop-free path it took is then carved in.
type Wilson struct{}

// Name returns the name of this generator
func (w *Wilson) Name() string {
	return "wilson"
}

// Carve links the grid into a perfect maze. start seeds the tree.
func (w *Wilson) Carve(g *world.Grid, start *world.Cell) error {
	rng := g.Rand()
	inTree := mapset.New[int]()
	inTree.Put(start.ID)

	var unvisited []*world.Cell
	for _, c := range g.Cells() {
		if c != start {
			unvisited = append(unvisited, c)
		}
	}

	for len(unvisited) > 0 {
		cell := unvisited[rng.Intn(len(unvisited))]

		// exit[c] is the last step taken out of c, which erases loops.
		exit := map[int]*world.Cell{}
		for at := cell; !inTree.Has(at.ID); {
			neighbors := g.Neighbors(at)
			next := neighbors[rng.Intn(len(neighbors))]
			exit[at.ID] = next
			at = next
		}

		for at := cell; !inTree.Has(at.ID); at = exit[at.ID] {
			if _, err := g.Link(at, exit[at.ID]); err != nil {
				return err
			}
			inTree.Put(at.ID)
		}

		remaining := unvisited[:0]
		for _, c := range unvisited {
			if !inTree.Has(c.ID) {
				remaining = append(remaining, c)
			}
		}
		unvisited = remaining
	}
	return nil
}
