// Package state holds a running maze level: its grid, its movers and the
// message log shown to the player.
package state

import (
	"fmt"
	"log/slog"

	"polarmaze/pkg/engine/logging"
	"polarmaze/pkg/engine/world"
	"polarmaze/pkg/game/gameplay"
)

const maxMessages = 5

// Game represents one level of the maze
type Game struct {
	Grid      *world.Grid
	Tracker   *gameplay.Tracker
	Spawner   *gameplay.Spawner
	Player    *gameplay.Navigator
	Wanderers []*gameplay.Wanderer

	Recipe   Recipe
	Messages []string
	Ticks    int
	Caught   int

	logger *slog.Logger
}

// NewGame wraps an already built grid. Use Build to go from a Recipe.
func NewGame(grid *world.Grid, logger *slog.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	tracker := gameplay.NewTracker()
	return &Game{
		Grid:     grid,
		Tracker:  tracker,
		Spawner:  gameplay.NewSpawner(grid, tracker, 64, grid.Rand()),
		Messages: make([]string, 0),
		logger:   logger,
	}
}

// AddMessage adds a message to the game log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// OnBump reports the player's blocked moves in the message log.
func (g *Game) OnBump(mover, obstacle *gameplay.Navigator) {
	if mover.Role == gameplay.RolePlayer {
		gameplay.Say(g, gameplay.MsgBumped, obstacle.Name)
	}
}

// AddPlayer places the player on cell.
func (g *Game) AddPlayer(cell *world.Cell, speed int, opts ...gameplay.NavOption) *gameplay.Navigator {
	base := []gameplay.NavOption{
		gameplay.WithRole(gameplay.RolePlayer),
		gameplay.WithName("player"),
		gameplay.WithMessages(g),
		gameplay.WithHandler(g),
		gameplay.WithLogger(g.logger),
	}
	nav := gameplay.NewNavigator(g.Grid, cell, speed, append(base, opts...)...)
	g.Tracker.Add(nav)
	g.Player = nav
	return nav
}

// AddMonster places a wandering hostile mover on cell.
func (g *Game) AddMonster(cell *world.Cell, speed int, opts ...gameplay.NavOption) *gameplay.Navigator {
	base := []gameplay.NavOption{
		gameplay.WithRole(gameplay.RoleHostile),
		gameplay.WithName(fmt.Sprintf("monster-%d", len(g.Wanderers)+1)),
		gameplay.WithLogger(g.logger),
	}
	nav := gameplay.NewNavigator(g.Grid, cell, speed, append(base, opts...)...)
	g.Tracker.Add(nav)
	g.Wanderers = append(g.Wanderers, gameplay.NewWanderer(nav, g.Grid.Rand()))
	return nav
}

// SpawnMonsters places n monsters between minDist and maxDist steps from
// the player, or from the root when there is no player.
func (g *Game) SpawnMonsters(n, minDist, maxDist, speed int) error {
	center := g.Grid.Root()
	if g.Player != nil {
		center = g.Player.Current()
	}
	for i := 0; i < n; i++ {
		cell, err := g.Spawner.Pick(center, minDist, maxDist)
		if err != nil {
			return fmt.Errorf("spawn monster %d of %d: %w", i+1, n, err)
		}
		g.AddMonster(cell, speed)
	}
	return nil
}

// RemoveMover takes a mover out of the maze.
func (g *Game) RemoveMover(nav *gameplay.Navigator) {
	g.Tracker.Remove(nav)
	if nav == g.Player {
		g.Player = nil
		return
	}
	for i, w := range g.Wanderers {
		if w.Nav == nav {
			g.Wanderers = append(g.Wanderers[:i], g.Wanderers[i+1:]...)
			return
		}
	}
}

// Movers returns every mover in the order they entered the maze.
func (g *Game) Movers() []*gameplay.Navigator {
	out := make([]*gameplay.Navigator, 0, g.Tracker.Len())
	g.Tracker.Each(func(n *gameplay.Navigator) {
		out = append(out, n)
	})
	return out
}

// Tick runs one frame: wanderers choose their moves, then every mover advances.
func (g *Game) Tick() {
	for _, w := range g.Wanderers {
		w.Update()
	}
	g.Tracker.Each(func(n *gameplay.Navigator) {
		n.Tick()
	})
	g.Ticks++

	if g.Player == nil {
		return
	}
	for _, w := range g.Wanderers {
		if w.Nav.JustCompleted() && w.Nav.Current() == g.Player.Current() {
			g.Caught++
			gameplay.Say(g, gameplay.MsgCaught, w.Nav.Name)
			g.logger.Info("player caught", "by", w.Nav.Name, "cell", w.Nav.Current().String(), "tick", g.Ticks)
		}
	}
}
