package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polarmaze/pkg/engine/world"
	"polarmaze/pkg/game/gameplay"
)

func testRecipe() Recipe {
	r := DefaultRecipe()
	r.Seed = 77
	return r
}

func TestBuild_DefaultRecipe(t *testing.T) {
	g, err := Build(testRecipe(), nil)
	require.NoError(t, err)

	assert.Equal(t, 187, g.Grid.Size())
	assert.Empty(t, g.Grid.Validate())
	assert.Len(t, g.Grid.Doors(), 2)
	assert.Len(t, g.Grid.Rooms(), 2)
	assert.Equal(t, g.Grid.Size(), g.Grid.Distances(g.Grid.Root()).Len(), "locked doors never split the maze")

	require.NotNil(t, g.Player)
	assert.Same(t, g.Grid.Root(), g.Player.Current())
	assert.Equal(t, 1, g.Player.Inventory.Count(world.KeyItem))
	assert.Len(t, g.Wanderers, 3)
	assert.Len(t, g.Movers(), 4)

	d := g.Grid.Distances(g.Grid.Root())
	for _, w := range g.Wanderers {
		v, _ := d.Get(w.Nav.Current())
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 12)
	}
}

func TestBuild_Errors(t *testing.T) {
	r := testRecipe()
	r.Algorithm = "nope"
	_, err := Build(r, nil)
	assert.Error(t, err)

	r = testRecipe()
	r.Rings = 2
	r.Monsters = 20
	_, err = Build(r, nil)
	assert.ErrorIs(t, err, gameplay.ErrOutOfSpace)
}

func TestBuild_SameSeedSameMaze(t *testing.T) {
	a, err := Build(testRecipe(), nil)
	require.NoError(t, err)
	b, err := Build(testRecipe(), nil)
	require.NoError(t, err)

	assert.Equal(t, a.Grid.Doors(), b.Grid.Doors())
	assert.Equal(t, a.Grid.RemovedWalls(), b.Grid.RemovedWalls())
	for i := range a.Wanderers {
		assert.Equal(t, a.Wanderers[i].Nav.Current().ID, b.Wanderers[i].Nav.Current().ID)
	}
}

func TestTick_MoversStayOnPassages(t *testing.T) {
	g, err := Build(testRecipe(), nil)
	require.NoError(t, err)

	last := map[*gameplay.Navigator]*world.Cell{}
	for _, n := range g.Movers() {
		last[n] = n.Current()
	}
	for i := 0; i < 200; i++ {
		g.Tick()
		for _, n := range g.Movers() {
			if n.Current() != last[n] {
				require.True(t, last[n].IsLinked(n.Current()), "%s jumped from %v to %v", n.Name, last[n], n.Current())
				last[n] = n.Current()
			}
		}
	}
	assert.Equal(t, 200, g.Ticks)
}

func TestTick_MonsterCatchesPlayer(t *testing.T) {
	grid, err := world.NewPolarGrid(2, world.WithSeed(1))
	require.NoError(t, err)
	_, err = grid.Link(grid.Root(), grid.Cell(1, 0))
	require.NoError(t, err)

	g := NewGame(grid, nil)
	g.AddPlayer(grid.Root(), 5)
	g.AddMonster(grid.Cell(1, 0), 1)

	g.Tick()
	assert.Equal(t, 1, g.Caught)
	assert.Len(t, g.Messages, 1)
}

func TestGame_MessagesAndBumps(t *testing.T) {
	grid, err := world.NewPolarGrid(2, world.WithSeed(1))
	require.NoError(t, err)
	_, err = grid.Link(grid.Root(), grid.Cell(1, 0))
	require.NoError(t, err)

	g := NewGame(grid, nil)
	player := g.AddPlayer(grid.Root(), 2)
	other := gameplay.NewNavigator(grid, grid.Cell(1, 0), 2, gameplay.WithName("crate"))
	g.Tracker.Add(other)

	assert.Equal(t, gameplay.MoveBumped, player.RequestMove(world.OutwardSlot(0)))
	assert.Len(t, g.Messages, 1)

	for i := 0; i < 7; i++ {
		g.AddMessage(fmt.Sprintf("m%d", i))
	}
	assert.Equal(t, []string{"m2", "m3", "m4", "m5", "m6"}, g.Messages)
	g.ClearMessages()
	assert.Empty(t, g.Messages)

	g.RemoveMover(player)
	assert.Nil(t, g.Player)
	assert.Len(t, g.Movers(), 1)
}

func TestSnapshot_LoadRestores(t *testing.T) {
	g, err := Build(testRecipe(), nil)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		g.Tick()
	}
	opened := g.Grid.Doors()[0]
	require.NoError(t, g.Grid.OpenDoor(g.Grid.CellByID(opened.A), g.Grid.CellByID(opened.B)))

	snap := g.Snapshot()
	restored, err := Load(snap, nil)
	require.NoError(t, err)

	assert.Equal(t, g.Grid.Doors(), restored.Grid.Doors())
	assert.Equal(t, 50, restored.Ticks)
	require.Len(t, restored.Movers(), len(g.Movers()))
	for i, n := range g.Movers() {
		m := restored.Movers()[i]
		assert.Equal(t, n.ID, m.ID)
		assert.Equal(t, n.Role, m.Role)
		assert.Equal(t, n.Current().ID, m.Current().ID)
		assert.Equal(t, n.Inventory.Count(world.KeyItem), m.Inventory.Count(world.KeyItem))
	}
	require.NotNil(t, restored.Player)
	assert.Equal(t, g.Player.ID, restored.Player.ID)
	assert.Len(t, restored.Wanderers, len(g.Wanderers))
}
