package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Distances maps cells to their hop count from a root over the link graph
// as it was when the table was computed.
type Distances struct {
	grid *Grid
	root *Cell
	dist map[int]int
}

func newDistances(g *Grid, root *Cell) *Distances {
	return &Distances{
		grid: g,
		root: root,
		dist: map[int]int{root.ID: 0},
	}
}

// Root returns the cell distances are measured from.
func (d *Distances) Root() *Cell {
	return d.root
}

// Get returns the distance to c and whether c was reached.
func (d *Distances) Get(c *Cell) (int, bool) {
	if c == nil {
		return 0, false
	}
	v, ok := d.dist[c.ID]
	return v, ok
}

// Set records a distance for c.
func (d *Distances) Set(c *Cell, v int) {
	d.dist[c.ID] = v
}

// Len returns the number of reached cells.
func (d *Distances) Len() int {
	return len(d.dist)
}

// Cells returns the reached cells in ID order.
func (d *Distances) Cells() []*Cell {
	ids := make([]int, 0, len(d.dist))
	for id := range d.dist {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]*Cell, len(ids))
	for i, id := range ids {
		out[i] = d.grid.cells[id]
	}
	return out
}

// Max returns the farthest reached cell and its distance. Ties go to the
// cell with the lowest ID.
func (d *Distances) Max() (*Cell, int) {
	best, bestDist := d.root, 0
	for _, c := range d.Cells() {
		if v := d.dist[c.ID]; v > bestDist {
			best, bestDist = c, v
		}
	}
	return best, bestDist
}

// PathTo returns the cells from the root to goal, both included, or nil
// if goal was not reached. Each step walks from the goal to the first
// linked neighbor that is strictly closer, so when several are equally
// close the path follows Neighbors order.
func (d *Distances) PathTo(goal *Cell) []*Cell {
	cur, ok := d.dist[goal.ID]
	if !ok {
		return nil
	}

	path := []*Cell{goal}
	at := goal
	for at != d.root {
		var next *Cell
		for _, n := range d.grid.Links(at) {
			if v, ok := d.dist[n.ID]; ok && v < cur {
				next, cur = n, v
				break
			}
		}
		if next == nil {
			return nil
		}
		path = append(path, next)
		at = next
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// DistancesPerfect computes distances with a breadth-first flood. It is
// meant for perfect mazes, where every cell has exactly one path to root.
func (g *Grid) DistancesPerfect(root *Cell) *Distances {
	d := newDistances(g, root)
	q := queue.New[*Cell]()
	q.Enqueue(root)
	for !q.Empty() {
		c := q.Dequeue()
		for _, n := range g.Links(c) {
			if _, seen := d.dist[n.ID]; seen {
				continue
			}
			d.dist[n.ID] = d.dist[c.ID] + 1
			q.Enqueue(n)
		}
	}
	return d
}

// Distances computes shortest distances from root and stays correct once
// braiding, rooms or wall removal have added cycles.
func (g *Grid) Distances(root *Cell) *Distances {
	return g.dijkstra(root, -1)
}

// DistancesWithin returns the cells at most maxDist steps from root. The
// search stops as soon as nothing closer than maxDist is left to settle,
// so it does not scan the whole maze.
func (g *Grid) DistancesWithin(root *Cell, maxDist int) mapset.Set[*Cell] {
	out := mapset.New[*Cell]()
	if maxDist < 0 {
		return out
	}
	for id := range g.dijkstra(root, maxDist).dist {
		out.Put(g.cells[id])
	}
	return out
}

// Neighborhood is DistancesWithin keeping the distance of each cell.
func (g *Grid) Neighborhood(root *Cell, maxDist int) *Distances {
	if maxDist < 0 {
		return &Distances{grid: g, root: root, dist: map[int]int{}}
	}
	return g.dijkstra(root, maxDist)
}

// dijkstra settles cells in order of distance, picking the closest
// unsettled cell by a linear scan. A negative limit means unbounded.
func (g *Grid) dijkstra(root *Cell, limit int) *Distances {
	d := &Distances{grid: g, root: root, dist: map[int]int{}}
	tentative := map[int]int{root.ID: 0}

	for len(tentative) > 0 {
		best, bestDist := -1, 0
		for id, v := range tentative {
			if best == -1 || v < bestDist || (v == bestDist && id < best) {
				best, bestDist = id, v
			}
		}
		if limit >= 0 && bestDist > limit {
			break
		}

		delete(tentative, best)
		d.dist[best] = bestDist

		for _, n := range g.Links(g.cells[best]) {
			if _, settled := d.dist[n.ID]; settled {
				continue
			}
			if v, ok := tentative[n.ID]; !ok || bestDist+1 < v {
				tentative[n.ID] = bestDist + 1
			}
		}
	}
	return d
}
