package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polarmaze/pkg/engine/world"
)

type messageLog struct {
	msgs []string
}

func (m *messageLog) AddMessage(msg string) {
	m.msgs = append(m.msgs, msg)
}

type bumpLog struct {
	bumps [][2]*Navigator
}

func (b *bumpLog) OnBump(mover, obstacle *Navigator) {
	b.bumps = append(b.bumps, [2]*Navigator{mover, obstacle})
}

// newGrid returns an uncarved grid; tests open the passages they need.
func newGrid(t *testing.T, rings int) *world.Grid {
	t.Helper()
	g, err := world.NewPolarGrid(rings, world.WithSeed(1))
	require.NoError(t, err)
	return g
}

func link(t *testing.T, g *world.Grid, a, b *world.Cell) {
	t.Helper()
	_, err := g.Link(a, b)
	require.NoError(t, err)
}

func TestNavigator_RoundTrip(t *testing.T) {
	g := newGrid(t, 2)
	root, out := g.Root(), g.Cell(1, 0)
	link(t, g, root, out)

	nav := NewNavigator(g, root, 3)
	require.Equal(t, MoveStarted, nav.RequestMove(world.OutwardSlot(0)))
	assert.False(t, nav.FinishedMoving())
	assert.Same(t, out, nav.Pending())

	nav.Tick()
	assert.False(t, nav.JustCompleted())
	nav.Tick()
	assert.False(t, nav.JustCompleted())
	assert.Same(t, root, nav.Current(), "move must not commit early")
	assert.InDelta(t, 2.0/3.0, nav.Progress(), 1e-9)

	nav.Tick()
	assert.Same(t, out, nav.Current())
	assert.Same(t, root, nav.Previous())
	assert.True(t, nav.FinishedMoving())
	assert.True(t, nav.JustCompleted())

	nav.Tick()
	assert.False(t, nav.JustCompleted(), "JustCompleted lasts a single tick")

	require.Equal(t, MoveStarted, nav.RequestMove(world.Toward(world.Inward)))
	for i := 0; i < 2; i++ {
		nav.Tick()
		assert.False(t, nav.JustCompleted(), "tick %d", i+1)
	}
	nav.Tick()
	assert.True(t, nav.JustCompleted())
	assert.Same(t, root, nav.Current())
	assert.Equal(t, world.Toward(world.Inward), nav.Facing())
}

func TestNavigator_Rejections(t *testing.T) {
	g := newGrid(t, 3)
	root := g.Root()
	link(t, g, root, g.Cell(1, 0))
	nav := NewNavigator(g, root, 2)

	assert.Equal(t, MoveNoPassage, nav.RequestMove(world.Toward(world.Inward)), "root has no parent")
	assert.Equal(t, MoveNoPassage, nav.RequestMove(world.OutwardSlot(1)), "wall")
	assert.Equal(t, MoveNoPassage, nav.RequestMove(world.OutwardSlot(9)), "no such slot")

	require.Equal(t, MoveStarted, nav.RequestMove(world.OutwardSlot(0)))
	assert.Equal(t, MoveBusy, nav.RequestMove(world.OutwardSlot(0)))
	assert.Same(t, root, nav.Current())
}

func TestNavigator_LocationInterpolates(t *testing.T) {
	g := newGrid(t, 2)
	link(t, g, g.Root(), g.Cell(1, 0))
	nav := NewNavigator(g, g.Root(), 2)

	assert.Equal(t, world.Point{}, nav.Location())
	nav.RequestMove(world.OutwardSlot(0))
	nav.Tick()
	want := world.Point{}.Lerp(g.Center(g.Cell(1, 0)), 0.5)
	assert.InDelta(t, want.X, nav.Location().X, 1e-9)
	assert.InDelta(t, want.Y, nav.Location().Y, 1e-9)
}

func TestNavigator_DoorNeedsKey(t *testing.T) {
	g := newGrid(t, 2)
	root, out := g.Root(), g.Cell(1, 0)
	link(t, g, root, out)
	require.NoError(t, g.AddDoor(root, out))

	sink := &messageLog{}
	nav := NewNavigator(g, root, 1, WithMessages(sink))

	assert.Equal(t, MoveDoorLocked, nav.RequestMove(world.OutwardSlot(0)))
	assert.True(t, g.DoorExists(root, out))
	assert.Len(t, sink.msgs, 1)

	nav.Inventory.Put(world.NewKey("brass"))
	assert.Equal(t, MoveDoorOpened, nav.RequestMove(world.OutwardSlot(0)))
	assert.Same(t, root, nav.Current(), "opening a door does not move the mover")
	assert.Nil(t, nav.Pending())
	assert.False(t, g.DoorExists(root, out))
	assert.True(t, root.IsLinked(out))
	assert.Equal(t, 0, nav.Inventory.Count(world.KeyItem))
	assert.Len(t, sink.msgs, 2)

	assert.Equal(t, MoveStarted, nav.RequestMove(world.OutwardSlot(0)))
	nav.Tick()
	assert.Same(t, out, nav.Current())
}

func TestNavigator_BumpsIntoMover(t *testing.T) {
	g := newGrid(t, 2)
	root, a, b := g.Root(), g.Cell(1, 0), g.Cell(1, 1)
	link(t, g, root, a)
	link(t, g, root, b)
	link(t, g, a, b)

	handler := &bumpLog{}
	tracker := NewTracker()
	player := NewNavigator(g, root, 2, WithRole(RolePlayer), WithHandler(handler))
	other := NewNavigator(g, a, 2)
	tracker.Add(player)
	tracker.Add(other)

	assert.Equal(t, MoveBumped, player.RequestMove(world.OutwardSlot(0)))
	require.Len(t, handler.bumps, 1)
	assert.Same(t, other, handler.bumps[0][1])

	// A cell that is only being entered is already taken.
	require.Equal(t, MoveStarted, other.RequestMove(world.Toward(world.Clockwise)))
	assert.Equal(t, MoveBumped, player.RequestMove(world.OutwardSlot(1)))
	assert.True(t, tracker.WouldBump(player, b))
	assert.Len(t, tracker.At(b), 1)

	assert.True(t, tracker.Remove(other))
	assert.False(t, tracker.Remove(other))
	assert.Equal(t, MoveStarted, player.RequestMove(world.OutwardSlot(1)))
}

func TestTracker_HostileIgnoresPlayer(t *testing.T) {
	g := newGrid(t, 2)
	root, a := g.Root(), g.Cell(1, 0)
	link(t, g, root, a)

	tracker := NewTracker()
	player := NewNavigator(g, root, 1, WithRole(RolePlayer))
	monster := NewNavigator(g, a, 1, WithRole(RoleHostile))
	tracker.Add(player)
	tracker.Add(monster)

	assert.Equal(t, MoveBumped, player.RequestMove(world.OutwardSlot(0)))
	assert.Equal(t, MoveStarted, monster.RequestMove(world.Toward(world.Inward)))
	monster.Tick()
	assert.Same(t, player.Current(), monster.Current())
	assert.True(t, tracker.Occupied(root))
}

func TestRole_RoundTrip(t *testing.T) {
	for _, r := range []Role{RolePlayer, RoleHostile, RoleNeutral} {
		assert.Equal(t, r, ParseRole(r.String()))
	}
	assert.Equal(t, RoleNeutral, ParseRole("ghost"))
	assert.Equal(t, "door opened", MoveDoorOpened.String())
}
