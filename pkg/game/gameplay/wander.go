package gameplay

import (
	"math/rand"

	"polarmaze/pkg/engine/world"
)

// Wanderer moves a mover around the maze at random. It does not turn back
// unless it is in a dead end, and it never walks into another mover.
type Wanderer struct {
	Nav *Navigator
	rng *rand.Rand
}

// NewWanderer drives nav with choices drawn from rng.
func NewWanderer(nav *Navigator, rng *rand.Rand) *Wanderer {
	return &Wanderer{Nav: nav, rng: rng}
}

// Options returns the cells the wanderer would choose from this tick.
func (w *Wanderer) Options() []*world.Cell {
	if !w.Nav.FinishedMoving() {
		return nil
	}

	var free []*world.Cell
	for _, c := range w.Nav.LinkedCells() {
		if !w.Nav.tracker.WouldBump(w.Nav, c) {
			free = append(free, c)
		}
	}

	prev := w.Nav.Previous()
	if prev == nil {
		return free
	}
	var forward []*world.Cell
	for _, c := range free {
		if c != prev {
			forward = append(forward, c)
		}
	}
	if len(forward) == 0 {
		return free
	}
	return forward
}

// Update picks the next move if the mover is idle. It returns true when a
// move was started.
func (w *Wanderer) Update() bool {
	options := w.Options()
	if len(options) == 0 {
		return false
	}
	next := options[w.rng.Intn(len(options))]
	h, ok := w.Nav.grid.HeadingTo(w.Nav.current, next)
	if !ok {
		return false
	}
	return w.Nav.RequestMove(h) == MoveStarted
}
