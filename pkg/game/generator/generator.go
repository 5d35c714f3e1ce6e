// Package generator carves passages into a polar grid. Every generator
// produces a perfect maze: all cells reachable, no loops.
package generator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"polarmaze/pkg/engine/world"
)

// ErrUnknownAlgorithm is returned by ByName for names it does not know.
var ErrUnknownAlgorithm = errors.New("generator: unknown algorithm")

// Available generators
var (
	Backtracker       = &RecursiveBacktracker{}
	GrowingTreeRandom = &GrowingTree{Selection: SelectRandom}
	GrowingTreeLast   = &GrowingTree{Selection: SelectLast}
	WilsonWalk        = &Wilson{}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator world.Algorithm = GrowingTreeRandom

var registry = map[string]world.Algorithm{
	Backtracker.Name():       Backtracker,
	GrowingTreeRandom.Name(): GrowingTreeRandom,
	GrowingTreeLast.Name():   GrowingTreeLast,
	WilsonWalk.Name():        WilsonWalk,
}

// ByName looks up a generator by its Name, ignoring case.
func ByName(name string) (world.Algorithm, error) {
	alg, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownAlgorithm, name, strings.Join(Names(), ", "))
	}
	return alg, nil
}

// Names returns the registered generator names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// unvisitedNeighbors returns the neighbors of c that have no links yet.
func unvisitedNeighbors(g *world.Grid, c *world.Cell) []*world.Cell {
	var out []*world.Cell
	for _, n := range g.Neighbors(c) {
		if n.LinkCount() == 0 {
			out = append(out, n)
		}
	}
	return out
}
