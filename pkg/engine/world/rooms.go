package world

import (
	"math"

	"github.com/zyedidia/generic/mapset"
)

// Room is a ring/angle rectangle of the grid that is opened up into a
// single chamber. Angles are in radians, measured like Angle, and the
// region covers cells whose center angle lies in [StartAngle, EndAngle).
// A StartAngle greater than EndAngle wraps through zero.
type Room struct {
	Name       string
	MinRing    int
	MaxRing    int
	StartAngle float64
	EndAngle   float64
}

// DefaultRooms returns the two chambers used when MakeRooms is called
// without arguments: opposite eighth-turn sectors two rings deep, halfway
// out from the center. Grids with fewer than four rings get none.
func DefaultRooms(rings int) []Room {
	if rings < 4 {
		return nil
	}
	lo := rings / 2
	hi := lo + 1
	if hi > rings-1 {
		hi = rings - 1
	}
	return []Room{
		{Name: "east", MinRing: lo, MaxRing: hi, StartAngle: 0, EndAngle: math.Pi / 4},
		{Name: "west", MinRing: lo, MaxRing: hi, StartAngle: math.Pi, EndAngle: 5 * math.Pi / 4},
	}
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func (r Room) containsAngle(a float64) bool {
	start, end := normalizeAngle(r.StartAngle), normalizeAngle(r.EndAngle)
	a = normalizeAngle(a)
	if start <= end {
		return a >= start && a < end
	}
	return a >= start || a < end
}

// RoomCells returns the cells covered by a room, ring by ring. Ring 0 is
// never part of a room and rings outside the grid are clipped.
func (g *Grid) RoomCells(room Room) []*Cell {
	lo, hi := room.MinRing, room.MaxRing
	if lo < 1 {
		lo = 1
	}
	if hi > g.rings-1 {
		hi = g.rings - 1
	}
	var out []*Cell
	for r := lo; r <= hi; r++ {
		for _, c := range g.rows[r] {
			if room.containsAngle(g.Angle(c)) {
				out = append(out, c)
			}
		}
	}
	return out
}

// MakeRooms carves rooms into a generated maze. Every adjacent pair inside
// a room is linked and the room's innermost ring is linked to its parents.
// Entrance links that did not exist yet are recorded as removed walls so
// they can become doors; interior links are not.
//
// With no arguments the DefaultRooms layout is used. Calling MakeRooms on
// a grid that has not been generated returns ErrNotGenerated.
func (g *Grid) MakeRooms(rooms ...Room) error {
	if !g.generated {
		return ErrNotGenerated
	}
	if len(rooms) == 0 {
		rooms = DefaultRooms(g.rings)
	}
	for _, room := range rooms {
		g.carveRoom(room)
	}
	g.roomsCarved = true
	return nil
}

// Rooms returns the rooms carved so far.
func (g *Grid) Rooms() []Room {
	out := make([]Room, len(g.rooms))
	copy(out, g.rooms)
	return out
}

func (g *Grid) carveRoom(room Room) {
	cells := g.RoomCells(room)
	if len(cells) == 0 {
		return
	}

	inside := mapset.New[int]()
	innermost := cells[0].Ring
	for _, c := range cells {
		inside.Put(c.ID)
		if c.Ring < innermost {
			innermost = c.Ring
		}
	}

	for _, c := range cells {
		for _, n := range g.Neighbors(c) {
			if n.ID > c.ID && inside.Has(n.ID) {
				g.Link(c, n)
			}
		}
	}
	for _, c := range cells {
		if c.Ring == innermost {
			g.linkExtra(c, g.Inward(c))
		}
	}
	g.rooms = append(g.rooms, room)
}
