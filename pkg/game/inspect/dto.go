package inspect

import (
	"github.com/google/uuid"
)

// CellRef addresses a cell by ring and column.
type CellRef struct {
	Ring int `json:"ring"`
	Col  int `json:"col"`
}

// PointDTO is a position in maze space.
type PointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MazeResponse summarizes the whole maze.
type MazeResponse struct {
	Rings        int          `json:"rings"`
	Cells        int          `json:"cells"`
	Seed         int64        `json:"seed"`
	RingSizes    []int        `json:"ring_sizes"`
	Ratios       []int        `json:"ratios"`
	DeadEnds     int          `json:"dead_ends"`
	Doors        [][2]CellRef `json:"doors"`
	RemovedWalls [][2]CellRef `json:"removed_walls"`
}

// CellResponse describes one cell and its surroundings.
type CellResponse struct {
	Cell      CellRef   `json:"cell"`
	Center    PointDTO  `json:"center"`
	Angle     float64   `json:"angle"`
	Neighbors []CellRef `json:"neighbors"`
	Links     []CellRef `json:"links"`
	Doors     []CellRef `json:"doors"`
	DeadEnd   bool      `json:"dead_end"`
}

// DistanceEntry is one row of a distance table.
type DistanceEntry struct {
	Cell     CellRef `json:"cell"`
	Distance int     `json:"distance"`
}

// DistancesResponse is a distance table from a root cell.
type DistancesResponse struct {
	Root     CellRef         `json:"root"`
	Max      *int            `json:"max,omitempty"`
	Farthest DistanceEntry   `json:"farthest"`
	Cells    []DistanceEntry `json:"cells"`
}

// MoverResponse describes one mover.
type MoverResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	Cell     CellRef   `json:"cell"`
	Pending  *CellRef  `json:"pending,omitempty"`
	Location PointDTO  `json:"location"`
	Moving   bool      `json:"moving"`
	Keys     int       `json:"keys"`
}
