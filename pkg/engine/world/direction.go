package world

import "fmt"

// Direction is one of the four kinds of polar adjacency.
type Direction int

// Direction constants
const (
	Inward Direction = iota
	Clockwise
	CounterClockwise
	Outward
)

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Inward:
		return "Inward"
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	case Outward:
		return "Outward"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the polar directions
func (d Direction) IsValid() bool {
	return d >= Inward && d <= Outward
}

// Heading is a direction plus, for Outward, the index of the child slot.
// A cell can have several outward neighbors; Slot selects among them.
type Heading struct {
	Dir  Direction
	Slot int
}

// Toward returns a heading for a single-slot direction.
func Toward(d Direction) Heading {
	return Heading{Dir: d}
}

// OutwardSlot returns the heading toward the nth outward child.
func OutwardSlot(n int) Heading {
	return Heading{Dir: Outward, Slot: n}
}

func (h Heading) String() string {
	if h.Dir == Outward {
		return fmt.Sprintf("Outward[%d]", h.Slot)
	}
	return h.Dir.String()
}

// Neighbor resolves a heading against the fixed adjacency of c.
// It returns nil when the slot is absent.
func (g *Grid) Neighbor(c *Cell, h Heading) *Cell {
	if c == nil || !h.Dir.IsValid() {
		return nil
	}
	switch h.Dir {
	case Inward:
		return g.CellByID(c.inward)
	case Clockwise:
		return g.CellByID(c.cw)
	case CounterClockwise:
		return g.CellByID(c.ccw)
	case Outward:
		if h.Slot < 0 || h.Slot >= c.OutwardCount() {
			return nil
		}
		return g.CellByID(c.outward[h.Slot])
	default:
		return nil
	}
}

// HeadingTo returns the heading that leads from one cell to an adjacent one.
func (g *Grid) HeadingTo(from, to *Cell) (Heading, bool) {
	if from == nil || to == nil {
		return Heading{}, false
	}
	switch to.ID {
	case from.cw:
		return Toward(Clockwise), true
	case from.ccw:
		return Toward(CounterClockwise), true
	case from.inward:
		return Toward(Inward), true
	}
	for i, id := range from.outward {
		if id == to.ID {
			return OutwardSlot(i), true
		}
	}
	return Heading{}, false
}
