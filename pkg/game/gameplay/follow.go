package gameplay

import (
	"github.com/zyedidia/generic/queue"

	"polarmaze/pkg/engine/world"
)

// Follower walks a mover along the shortest path to a goal cell. When the
// goal is only reachable through locked doors and the mover holds keys, it
// opens the doors that lie on its route. It waits when the next step is
// blocked by another mover.
type Follower struct {
	Nav  *Navigator
	Goal *world.Cell
}

// NewFollower drives nav toward goal.
func NewFollower(nav *Navigator, goal *world.Cell) *Follower {
	return &Follower{Nav: nav, Goal: goal}
}

// Arrived reports whether the mover stands on the goal.
func (f *Follower) Arrived() bool {
	return f.Nav.FinishedMoving() && f.Nav.Current() == f.Goal
}

// Update issues the next move if the mover is idle. It returns the result
// of the request, MoveBusy while a move is in flight or the goal is
// reached, and MoveNoPassage when the goal cannot be reached.
func (f *Follower) Update() MoveResult {
	nav := f.Nav
	if !nav.FinishedMoving() || f.Goal == nil || nav.Current() == f.Goal {
		return MoveBusy
	}
	grid := nav.Grid()
	cur := nav.Current()

	var next *world.Cell
	if path := grid.Distances(cur).PathTo(f.Goal); len(path) >= 2 {
		next = path[1]
	} else if nav.Inventory.Count(world.KeyItem) > 0 {
		next = firstStepThroughDoors(grid, cur, f.Goal)
	}
	if next == nil {
		return MoveNoPassage
	}
	h, ok := grid.HeadingTo(cur, next)
	if !ok {
		return MoveNoPassage
	}
	return nav.RequestMove(h)
}

// firstStepThroughDoors finds the shortest route from start to goal where
// locked doors count as passages, and returns the first cell on it.
func firstStepThroughDoors(grid *world.Grid, start, goal *world.Cell) *world.Cell {
	parent := map[*world.Cell]*world.Cell{start: nil}
	q := queue.New[*world.Cell]()
	q.Enqueue(start)
	for !q.Empty() {
		c := q.Dequeue()
		if c == goal {
			break
		}
		for _, n := range grid.Neighbors(c) {
			if _, seen := parent[n]; seen {
				continue
			}
			if !grid.IsLinked(c, n) && !grid.DoorExists(c, n) {
				continue
			}
			parent[n] = c
			q.Enqueue(n)
		}
	}
	if _, reached := parent[goal]; !reached {
		return nil
	}
	step := goal
	for parent[step] != start {
		step = parent[step]
	}
	return step
}
