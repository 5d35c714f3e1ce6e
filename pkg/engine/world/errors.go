package world

import "errors"

var (
	// ErrInvalidRingCount is returned when a grid is requested with fewer than one ring.
	ErrInvalidRingCount = errors.New("world: ring count must be at least 1")
	// ErrNotAdjacent is returned when a link or door is requested between non-adjacent cells.
	ErrNotAdjacent = errors.New("world: cells are not adjacent")
	// ErrNotLinked is returned when a door is placed where there is no passage.
	ErrNotLinked = errors.New("world: cells are not linked")
	// ErrNoDoor is returned when opening a door that does not exist.
	ErrNoDoor = errors.New("world: no door between cells")
	// ErrAlreadyGenerated is returned when Generate is called twice on one grid.
	ErrAlreadyGenerated = errors.New("world: grid already generated")
	// ErrNotGenerated is returned when rooms are carved before generation.
	ErrNotGenerated = errors.New("world: grid has not been generated")
	// ErrRoomsCarved is returned when generation runs after rooms were carved.
	ErrRoomsCarved = errors.New("world: rooms carved before generation")
	// ErrForeignCell is returned when a cell does not belong to the grid.
	ErrForeignCell = errors.New("world: cell does not belong to this grid")
)
