package state

import (
	"fmt"
	"log/slog"

	"polarmaze/pkg/engine/world"
	"polarmaze/pkg/game/gameplay"
	"polarmaze/pkg/game/generator"
	"polarmaze/pkg/game/persist"
)

// Recipe describes how to build a level. The same recipe always builds
// the same level.
type Recipe struct {
	Rings        int
	Seed         int64
	Algorithm    string
	Braid        float64
	RemoveWalls  float64
	Rooms        bool
	Doors        int
	Keys         int
	Monsters     int
	PlayerSpeed  int
	MonsterSpeed int
	SpawnMin     int
	SpawnMax     int
}

// DefaultRecipe is an eight ring maze with two rooms, two doors and three monsters.
func DefaultRecipe() Recipe {
	return Recipe{
		Rings:        8,
		Algorithm:    generator.DefaultGenerator.Name(),
		Braid:        1.0,
		Rooms:        true,
		Doors:        2,
		Keys:         1,
		Monsters:     3,
		PlayerSpeed:  8,
		MonsterSpeed: 12,
		SpawnMin:     3,
		SpawnMax:     12,
	}
}

// Build runs the full pipeline: grid, generation, braiding, wall removal,
// rooms, doors, then the player at the root and monsters around it.
func Build(r Recipe, logger *slog.Logger) (*Game, error) {
	alg, err := generator.ByName(r.Algorithm)
	if err != nil {
		return nil, err
	}
	grid, err := world.NewPolarGrid(r.Rings, world.WithSeed(r.Seed))
	if err != nil {
		return nil, err
	}
	r.Seed = grid.Seed()

	if err := grid.Generate(alg, grid.Root()); err != nil {
		return nil, err
	}
	braided := grid.Braid(r.Braid)
	removed := grid.RemoveWalls(r.RemoveWalls)
	if r.Rooms {
		if err := grid.MakeRooms(); err != nil {
			return nil, err
		}
	}
	doors := grid.PlaceDoors(r.Doors)

	g := NewGame(grid, logger)
	g.Recipe = r
	g.logger.Info("maze built",
		"rings", grid.Rings(),
		"cells", grid.Size(),
		"seed", grid.Seed(),
		"algorithm", alg.Name(),
		"braided", braided,
		"removedWalls", removed,
		"rooms", len(grid.Rooms()),
		"doors", len(doors),
		"deadEnds", len(grid.DeadEnds()),
	)

	player := g.AddPlayer(grid.Root(), r.PlayerSpeed)
	for i := 0; i < r.Keys; i++ {
		player.Inventory.Put(world.NewKey(fmt.Sprintf("key-%d", i+1)))
	}
	if err := g.SpawnMonsters(r.Monsters, r.SpawnMin, r.SpawnMax, r.MonsterSpeed); err != nil {
		g.logger.Warn("monster placement failed", "error", err)
		return nil, err
	}
	return g, nil
}

func cellRef(c *world.Cell) persist.CellRef {
	return persist.CellRef{Ring: c.Ring, Col: c.Col}
}

// Snapshot captures the level in a form the persist stores can save.
func (g *Game) Snapshot() persist.Snapshot {
	snap := persist.Snapshot{
		Rings:       g.Grid.Rings(),
		Seed:        g.Grid.Seed(),
		Algorithm:   g.Recipe.Algorithm,
		Braid:       g.Recipe.Braid,
		RemoveWalls: g.Recipe.RemoveWalls,
		Rooms:       g.Recipe.Rooms,
		DoorCount:   g.Recipe.Doors,
		Tick:        g.Ticks,
	}
	for _, n := range g.Movers() {
		snap.Movers = append(snap.Movers, persist.MoverState{
			ID:   n.ID,
			Role: n.Role.String(),
			Name: n.Name,
			Cell: cellRef(n.Current()),
			Keys: n.Inventory.Count(world.KeyItem),
		})
	}
	for _, d := range g.Grid.Doors() {
		a, b := g.Grid.CellByID(d.A), g.Grid.CellByID(d.B)
		snap.Doors = append(snap.Doors, [2]persist.CellRef{cellRef(a), cellRef(b)})
	}
	return snap
}

// Load rebuilds the level a snapshot was taken from and restores it.
func Load(snap persist.Snapshot, logger *slog.Logger) (*Game, error) {
	r := DefaultRecipe()
	r.Rings = snap.Rings
	r.Seed = snap.Seed
	r.Algorithm = snap.Algorithm
	r.Braid = snap.Braid
	r.RemoveWalls = snap.RemoveWalls
	r.Rooms = snap.Rooms
	r.Doors = snap.DoorCount
	r.Keys = 0
	r.Monsters = 0

	g, err := Build(r, logger)
	if err != nil {
		return nil, fmt.Errorf("rebuild level: %w", err)
	}
	if err := g.Restore(snap); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) cellAt(ref persist.CellRef) (*world.Cell, error) {
	if ref.Col < 0 || ref.Col >= g.Grid.RingSize(ref.Ring) {
		return nil, fmt.Errorf("snapshot cell (%d,%d) is outside the grid", ref.Ring, ref.Col)
	}
	return g.Grid.Cell(ref.Ring, ref.Col), nil
}

// Restore puts movers and doors back where the snapshot had them. The
// grid must have been built from the same recipe.
func (g *Game) Restore(snap persist.Snapshot) error {
	locked := make(map[world.Pair]bool, len(snap.Doors))
	for _, d := range snap.Doors {
		a, err := g.cellAt(d[0])
		if err != nil {
			return err
		}
		b, err := g.cellAt(d[1])
		if err != nil {
			return err
		}
		locked[world.NewPair(a, b)] = true
	}
	for _, d := range g.Grid.Doors() {
		if locked[d] {
			continue
		}
		if err := g.Grid.OpenDoor(g.Grid.CellByID(d.A), g.Grid.CellByID(d.B)); err != nil {
			return err
		}
	}

	for _, n := range g.Movers() {
		g.RemoveMover(n)
	}
	for _, m := range snap.Movers {
		cell, err := g.cellAt(m.Cell)
		if err != nil {
			return err
		}
		opts := []gameplay.NavOption{gameplay.WithID(m.ID)}
		if m.Name != "" {
			opts = append(opts, gameplay.WithName(m.Name))
		}

		var nav *gameplay.Navigator
		switch gameplay.ParseRole(m.Role) {
		case gameplay.RolePlayer:
			nav = g.AddPlayer(cell, g.Recipe.PlayerSpeed, opts...)
		case gameplay.RoleHostile:
			nav = g.AddMonster(cell, g.Recipe.MonsterSpeed, opts...)
		default:
			nav = gameplay.NewNavigator(g.Grid, cell, g.Recipe.MonsterSpeed, append(opts, gameplay.WithLogger(g.logger))...)
			g.Tracker.Add(nav)
		}
		for i := 0; i < m.Keys; i++ {
			nav.Inventory.Put(world.NewKey(fmt.Sprintf("key-%d", i+1)))
		}
	}
	g.Ticks = snap.Tick
	return nil
}
