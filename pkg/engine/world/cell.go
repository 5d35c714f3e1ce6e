// Package world provides the polar maze primitives: cells arranged in
// concentric rings, their fixed adjacency and the mutable link table that
// records which passages are open.
package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// NoCell marks an absent neighbor slot.
const NoCell = -1

// Cell is a single node of a polar grid.
//
// Adjacency is stored as arena indices into the owning Grid and never
// changes after construction. Links (open passages) are a separate overlay
// and may only be changed through the Grid.
type Cell struct {
	// ID is the cell's index in the grid's arena. Ring 0 is ID 0 and IDs
	// increase ring by ring, column by column.
	ID   int
	Ring int
	Col  int

	cw      int
	ccw     int
	inward  int
	outward []int

	links mapset.Set[int]
}

func newCell(id, ring, col int) *Cell {
	return &Cell{
		ID:     id,
		Ring:   ring,
		Col:    col,
		cw:     NoCell,
		ccw:    NoCell,
		inward: NoCell,
		links:  mapset.New[int](),
	}
}

// IsLinked reports whether there is an open passage between c and other.
func (c *Cell) IsLinked(other *Cell) bool {
	if c == nil || other == nil {
		return false
	}
	return c.links.Has(other.ID)
}

// LinkCount returns the number of open passages leaving the cell.
func (c *Cell) LinkCount() int {
	return c.links.Size()
}

// IsDeadEnd returns true if the cell has exactly one link.
func (c *Cell) IsDeadEnd() bool {
	return c.links.Size() == 1
}

// IsRoot returns true for the single cell of ring 0.
func (c *Cell) IsRoot() bool {
	return c.Ring == 0
}

// OutwardCount returns how many children the cell has in the next ring.
func (c *Cell) OutwardCount() int {
	return len(c.outward)
}

func (c *Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Ring, c.Col)
}
