package inspect

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"polarmaze/pkg/engine/world"
	"polarmaze/pkg/game/state"
)

// MazeController exposes the grid and its movers.
type MazeController struct {
	game *state.Game
}

// NewMazeController initializes a MazeController.
func NewMazeController(game *state.Game) *MazeController {
	return &MazeController{game: game}
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	maze := route.Group("/maze")
	{
		maze.GET("", mc.summary)
		maze.GET("/cells/:ring/:col", mc.cell)
		maze.GET("/distances/:ring/:col", mc.distances)
		maze.GET("/path/:ring/:col", mc.path)
	}
	route.GET("/movers", mc.movers)
}

func ref(c *world.Cell) CellRef {
	return CellRef{Ring: c.Ring, Col: c.Col}
}

func refs(cells []*world.Cell) []CellRef {
	out := make([]CellRef, 0, len(cells))
	for _, c := range cells {
		out = append(out, ref(c))
	}
	return out
}

func point(p world.Point) PointDTO {
	return PointDTO{X: p.X, Y: p.Y}
}

func (mc *MazeController) pairs(ps []world.Pair) [][2]CellRef {
	g := mc.game.Grid
	out := make([][2]CellRef, 0, len(ps))
	for _, p := range ps {
		out = append(out, [2]CellRef{ref(g.CellByID(p.A)), ref(g.CellByID(p.B))})
	}
	return out
}

// cellParam resolves the :ring/:col path parameters.
func (mc *MazeController) cellParam(ctx *gin.Context, ringKey, colKey string) (*world.Cell, bool) {
	ring, err := strconv.Atoi(ctx.Param(ringKey))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ring must be an integer"})
		return nil, false
	}
	col, err := strconv.Atoi(ctx.Param(colKey))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "col must be an integer"})
		return nil, false
	}
	if col < 0 || col >= mc.game.Grid.RingSize(ring) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "cell not found"})
		return nil, false
	}
	return mc.game.Grid.Cell(ring, col), true
}

func (mc *MazeController) summary(ctx *gin.Context) {
	g := mc.game.Grid
	resp := MazeResponse{
		Rings:        g.Rings(),
		Cells:        g.Size(),
		Seed:         g.Seed(),
		DeadEnds:     len(g.DeadEnds()),
		Doors:        mc.pairs(g.Doors()),
		RemovedWalls: mc.pairs(g.RemovedWalls()),
	}
	for r := 0; r < g.Rings(); r++ {
		resp.RingSizes = append(resp.RingSizes, g.RingSize(r))
		resp.Ratios = append(resp.Ratios, g.Ratio(r))
	}
	ctx.JSON(http.StatusOK, resp)
}

func (mc *MazeController) cell(ctx *gin.Context) {
	c, ok := mc.cellParam(ctx, "ring", "col")
	if !ok {
		return
	}
	g := mc.game.Grid
	resp := CellResponse{
		Cell:      ref(c),
		Center:    point(g.Center(c)),
		Angle:     g.Angle(c),
		Neighbors: refs(g.Neighbors(c)),
		Links:     refs(g.Links(c)),
		Doors:     []CellRef{},
		DeadEnd:   c.IsDeadEnd(),
	}
	for _, n := range g.Neighbors(c) {
		if g.DoorExists(c, n) {
			resp.Doors = append(resp.Doors, ref(n))
		}
	}
	ctx.JSON(http.StatusOK, resp)
}

func (mc *MazeController) distances(ctx *gin.Context) {
	root, ok := mc.cellParam(ctx, "ring", "col")
	if !ok {
		return
	}
	g := mc.game.Grid

	var d *world.Distances
	resp := DistancesResponse{Root: ref(root)}
	if raw, found := ctx.GetQuery("max"); found {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "max must be an integer"})
			return
		}
		resp.Max = &limit
		d = g.Neighborhood(root, limit)
	} else {
		d = g.Distances(root)
	}

	for _, c := range d.Cells() {
		v, _ := d.Get(c)
		resp.Cells = append(resp.Cells, DistanceEntry{Cell: ref(c), Distance: v})
	}
	far, farDist := d.Max()
	resp.Farthest = DistanceEntry{Cell: ref(far), Distance: farDist}
	ctx.JSON(http.StatusOK, resp)
}

// path returns the route from the given cell to the cell named by the
// to_ring and to_col query parameters.
func (mc *MazeController) path(ctx *gin.Context) {
	root, ok := mc.cellParam(ctx, "ring", "col")
	if !ok {
		return
	}
	toRing, err1 := strconv.Atoi(ctx.Query("to_ring"))
	toCol, err2 := strconv.Atoi(ctx.Query("to_col"))
	if err1 != nil || err2 != nil || toCol < 0 || toCol >= mc.game.Grid.RingSize(toRing) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "to_ring and to_col must name a cell"})
		return
	}
	goal := mc.game.Grid.Cell(toRing, toCol)

	path := mc.game.Grid.Distances(root).PathTo(goal)
	if path == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "goal is not reachable"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"path": refs(path)})
}

func (mc *MazeController) movers(ctx *gin.Context) {
	out := []MoverResponse{}
	for _, n := range mc.game.Movers() {
		m := MoverResponse{
			ID:       n.ID,
			Name:     n.Name,
			Role:     n.Role.String(),
			Cell:     ref(n.Current()),
			Location: point(n.Location()),
			Moving:   !n.FinishedMoving(),
			Keys:     n.Inventory.Count(world.KeyItem),
		}
		if p := n.Pending(); p != nil {
			r := ref(p)
			m.Pending = &r
		}
		out = append(out, m)
	}
	ctx.JSON(http.StatusOK, gin.H{"movers": out})
}
