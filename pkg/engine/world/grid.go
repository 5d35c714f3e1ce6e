package world

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Grid is a polar maze: concentric rings of cells around a single root.
// Cells live in an arena and refer to each other by index.
type Grid struct {
	rings      int
	ringHeight float64
	rows       [][]*Cell
	cells      []*Cell

	rng  *rand.Rand
	seed int64

	// version is bumped on every link mutation so caches can tell when
	// their results went stale.
	version uint64

	removedWalls []Pair
	doors        mapset.Set[Pair]
	rooms        []Room

	generated   bool
	roomsCarved bool
}

// Option configures a Grid at construction time.
type Option func(*Grid)

// WithSeed makes every random choice on the grid reproducible.
// A zero seed selects a time-based seed.
func WithSeed(seed int64) Option {
	return func(g *Grid) {
		g.seed = seed
	}
}

// WithRand supplies the random source directly. It takes precedence over WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(g *Grid) {
		g.rng = r
	}
}

// WithRingHeight sets the radial thickness of a ring used by the geometry queries.
func WithRingHeight(h float64) Option {
	return func(g *Grid) {
		if h > 0 {
			g.ringHeight = h
		}
	}
}

// NewPolarGrid builds a grid with the given number of rings and wires the
// fixed adjacency of every cell. No passages are open yet.
func NewPolarGrid(rings int, opts ...Option) (*Grid, error) {
	if rings < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRingCount, rings)
	}

	g := &Grid{
		rings:      rings,
		ringHeight: 1,
		doors:      mapset.New[Pair](),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		if g.seed == 0 {
			g.seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(g.seed))
	}

	g.prepareGrid()
	g.configureCells()
	return g, nil
}

// RingCounts returns the number of cells in each ring for a grid of the
// given size. Each ring multiplies the previous count by a whole fan-out
// ratio chosen so cells stay roughly as wide as they are tall.
func RingCounts(rings int) []int {
	if rings < 1 {
		return nil
	}
	counts := make([]int, rings)
	counts[0] = 1
	rowHeight := 1.0 / float64(rings)
	for r := 1; r < rings; r++ {
		radius := float64(r) / float64(rings)
		circumference := 2 * math.Pi * radius
		estimatedWidth := circumference / float64(counts[r-1])
		ratio := int(math.Round(estimatedWidth / rowHeight))
		if ratio < 1 {
			ratio = 1
		}
		counts[r] = counts[r-1] * ratio
	}
	return counts
}

func (g *Grid) prepareGrid() {
	counts := RingCounts(g.rings)
	g.rows = make([][]*Cell, g.rings)
	for r, n := range counts {
		g.rows[r] = make([]*Cell, n)
		for col := 0; col < n; col++ {
			c := newCell(len(g.cells), r, col)
			g.rows[r][col] = c
			g.cells = append(g.cells, c)
		}
	}
}

func (g *Grid) configureCells() {
	for _, c := range g.cells {
		if c.IsRoot() {
			continue
		}
		c.cw = g.Cell(c.Ring, c.Col+1).ID
		c.ccw = g.Cell(c.Ring, c.Col-1).ID

		parent := g.rows[c.Ring-1][c.Col/g.Ratio(c.Ring)]
		parent.outward = append(parent.outward, c.ID)
		c.inward = parent.ID
	}
}

// Rings returns the number of rings
func (g *Grid) Rings() int {
	return g.rings
}

// RingSize returns the number of cells in ring r, or 0 if r is out of range.
func (g *Grid) RingSize(r int) int {
	if r < 0 || r >= g.rings {
		return 0
	}
	return len(g.rows[r])
}

// Ratio returns the fan-out from ring r-1 to ring r. Ring 0 has ratio 1.
func (g *Grid) Ratio(r int) int {
	if r <= 0 || r >= g.rings {
		return 1
	}
	return len(g.rows[r]) / len(g.rows[r-1])
}

// Size returns the total number of cells
func (g *Grid) Size() int {
	return len(g.cells)
}

// Seed returns the seed used for the grid's random source.
func (g *Grid) Seed() int64 {
	return g.seed
}

// Rand returns the grid's random source. Generators draw from it so a
// seeded grid produces the same maze every time.
func (g *Grid) Rand() *rand.Rand {
	return g.rng
}

// RingHeight returns the radial thickness of one ring.
func (g *Grid) RingHeight() float64 {
	return g.ringHeight
}

// Version changes whenever a link is added or removed.
func (g *Grid) Version() uint64 {
	return g.version
}

// Cell returns the cell at the given ring and column. Columns wrap around
// the ring; a ring out of range returns nil.
func (g *Grid) Cell(ring, col int) *Cell {
	if ring < 0 || ring >= g.rings {
		return nil
	}
	n := len(g.rows[ring])
	col %= n
	if col < 0 {
		col += n
	}
	return g.rows[ring][col]
}

// CellByID returns the cell with the given arena index, or nil.
func (g *Grid) CellByID(id int) *Cell {
	if id < 0 || id >= len(g.cells) {
		return nil
	}
	return g.cells[id]
}

// Root returns the single cell of ring 0.
func (g *Grid) Root() *Cell {
	return g.cells[0]
}

// RandomCell returns a uniformly chosen cell.
func (g *Grid) RandomCell() *Cell {
	return g.cells[g.rng.Intn(len(g.cells))]
}

// Contains reports whether c belongs to this grid.
func (g *Grid) Contains(c *Cell) bool {
	return c != nil && g.CellByID(c.ID) == c
}

// Cells returns every cell in ID order. The slice must not be modified.
func (g *Grid) Cells() []*Cell {
	return g.cells
}

// Ring returns the cells of ring r in column order.
func (g *Grid) Ring(r int) []*Cell {
	if r < 0 || r >= g.rings {
		return nil
	}
	return g.rows[r]
}

// ForEachCell iterates over all cells ring by ring, calling fn for each
func (g *Grid) ForEachCell(fn func(ring, col int, cell *Cell)) {
	for r, row := range g.rows {
		for col, cell := range row {
			fn(r, col, cell)
		}
	}
}

// CW returns the clockwise neighbor, nil for the root.
func (g *Grid) CW(c *Cell) *Cell {
	return g.Neighbor(c, Toward(Clockwise))
}

// CCW returns the counterclockwise neighbor, nil for the root.
func (g *Grid) CCW(c *Cell) *Cell {
	return g.Neighbor(c, Toward(CounterClockwise))
}

// Inward returns the parent in the previous ring, nil for the root.
func (g *Grid) Inward(c *Cell) *Cell {
	return g.Neighbor(c, Toward(Inward))
}

// Outward returns the children in the next ring in slot order.
func (g *Grid) Outward(c *Cell) []*Cell {
	out := make([]*Cell, 0, len(c.outward))
	for _, id := range c.outward {
		out = append(out, g.cells[id])
	}
	return out
}

// Neighbors returns every adjacent cell in the order cw, ccw, inward,
// then outward slots. Anything that breaks ties between neighbors relies
// on this order.
func (g *Grid) Neighbors(c *Cell) []*Cell {
	if c == nil {
		return nil
	}
	out := make([]*Cell, 0, 3+len(c.outward))
	for _, id := range [3]int{c.cw, c.ccw, c.inward} {
		if id != NoCell {
			out = append(out, g.cells[id])
		}
	}
	for _, id := range c.outward {
		out = append(out, g.cells[id])
	}
	return out
}

// IsAdjacent reports whether a and b share a wall.
func (g *Grid) IsAdjacent(a, b *Cell) bool {
	_, ok := g.HeadingTo(a, b)
	return ok
}

// IsLinked reports whether there is an open passage between a and b.
func (g *Grid) IsLinked(a, b *Cell) bool {
	return a.IsLinked(b)
}

// Links returns the cells linked to c, in neighbor order.
func (g *Grid) Links(c *Cell) []*Cell {
	var out []*Cell
	for _, n := range g.Neighbors(c) {
		if c.links.Has(n.ID) {
			out = append(out, n)
		}
	}
	return out
}

// UnlinkedNeighbors returns the adjacent cells with no passage to c.
func (g *Grid) UnlinkedNeighbors(c *Cell) []*Cell {
	var out []*Cell
	for _, n := range g.Neighbors(c) {
		if !c.links.Has(n.ID) {
			out = append(out, n)
		}
	}
	return out
}

// DeadEnds returns every cell with exactly one link, in ID order.
func (g *Grid) DeadEnds() []*Cell {
	var out []*Cell
	for _, c := range g.cells {
		if c.IsDeadEnd() {
			out = append(out, c)
		}
	}
	return out
}

// Generated reports whether Generate has completed on this grid.
func (g *Grid) Generated() bool {
	return g.generated
}

// RoomsCarved reports whether MakeRooms has run on this grid.
func (g *Grid) RoomsCarved() bool {
	return g.roomsCarved
}

// Validate checks the adjacency invariants and returns a description of the
// first problem found, or an empty string if the grid is consistent.
func (g *Grid) Validate() string {
	for _, c := range g.cells {
		for _, id := range c.outward {
			if g.cells[id].inward != c.ID {
				return fmt.Sprintf("child %v of %v does not point back inward", g.cells[id], c)
			}
		}
		if c.inward != NoCell {
			found := false
			for _, id := range g.cells[c.inward].outward {
				found = found || id == c.ID
			}
			if !found {
				return fmt.Sprintf("%v missing from parent's outward list", c)
			}
		}
		var bad string
		c.links.Each(func(id int) {
			if bad != "" {
				return
			}
			other := g.cells[id]
			if !g.IsAdjacent(c, other) {
				bad = fmt.Sprintf("link between non-adjacent %v and %v", c, other)
			} else if !other.links.Has(c.ID) {
				bad = fmt.Sprintf("link %v -> %v is not symmetric", c, other)
			}
		})
		if bad != "" {
			return bad
		}
	}
	return ""
}
