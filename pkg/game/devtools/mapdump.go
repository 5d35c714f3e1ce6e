// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gookit/color"

	"polarmaze/pkg/engine/world"
	"polarmaze/pkg/game/gameplay"
	"polarmaze/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// Symbol styles
var (
	stylePlayer  = color.Style{color.FgGreen, color.OpBold}
	styleMonster = color.Style{color.FgRed, color.OpBold}
	styleDoor    = color.Style{color.FgYellow, color.OpBold}
	styleDeadEnd = color.Style{color.FgGray}
	styleWall    = color.Style{color.FgBlue}
)

// Legend describes the symbols used by Render.
const Legend = `. = cell  o = dead end  @ = player  M = monster  N = other mover
| = wall to the clockwise neighbor  D = door  (blank) = open passage
above each cell: ^ = open toward the center  - = wall  D = door`

type painter struct {
	colored bool
}

func (p painter) paint(st color.Style, s string) string {
	if !p.colored {
		return s
	}
	return st.Sprint(s)
}

// cellSymbol returns the symbol for a cell, with movers drawn over it.
func cellSymbol(g *state.Game, cell *world.Cell, p painter) string {
	for _, n := range g.Tracker.At(cell) {
		if n.Current() != cell {
			continue
		}
		switch n.Role {
		case gameplay.RolePlayer:
			return p.paint(stylePlayer, "@")
		case gameplay.RoleHostile:
			return p.paint(styleMonster, "M")
		default:
			return "N"
		}
	}
	if cell.IsDeadEnd() {
		return p.paint(styleDeadEnd, "o")
	}
	return "."
}

// inwardSymbol shows the passage between a cell and its parent.
func inwardSymbol(grid *world.Grid, cell *world.Cell, p painter) string {
	parent := grid.Inward(cell)
	switch {
	case cell.IsLinked(parent):
		return "^"
	case grid.DoorExists(cell, parent):
		return p.paint(styleDoor, "D")
	default:
		return p.paint(styleWall, "-")
	}
}

// cwSymbol shows the passage between a cell and its clockwise neighbor.
func cwSymbol(grid *world.Grid, cell *world.Cell, p painter) string {
	next := grid.CW(cell)
	switch {
	case cell.IsLinked(next):
		return " "
	case grid.DoorExists(cell, next):
		return p.paint(styleDoor, "D")
	default:
		return p.paint(styleWall, "|")
	}
}

// Render draws the maze ring by ring. Each cell takes two columns and
// rings wider than width are wrapped.
func Render(g *state.Game, colored bool, width int) string {
	p := painter{colored: colored}
	grid := g.Grid
	perLine := (width - 4) / 2
	if perLine < 1 {
		perLine = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "ring 0: %s\n", cellSymbol(g, grid.Root(), p))
	for r := 1; r < grid.Rings(); r++ {
		cells := grid.Ring(r)
		fmt.Fprintf(&b, "ring %d (%d cells, ratio %d)\n", r, len(cells), grid.Ratio(r))
		for start := 0; start < len(cells); start += perLine {
			end := start + perLine
			if end > len(cells) {
				end = len(cells)
			}
			b.WriteString("    ")
			for _, c := range cells[start:end] {
				b.WriteString(inwardSymbol(grid, c, p))
				b.WriteString(" ")
			}
			b.WriteString("\n    ")
			for _, c := range cells[start:end] {
				b.WriteString(cellSymbol(g, c, p))
				b.WriteString(cwSymbol(grid, c, p))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// DumpMapToFile writes a debug dump to map.txt in dir: metadata, legend,
// the maze and the movers.
func DumpMapToFile(g *state.Game, dir string) (string, error) {
	if g.Grid == nil {
		return "", fmt.Errorf("no grid")
	}

	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	grid := g.Grid

	// --- Metadata ---
	fmt.Fprintln(f, "=== MAP DUMP (polar maze) ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "seed: %d\n", grid.Seed())
	fmt.Fprintf(f, "algorithm: %s\n", g.Recipe.Algorithm)
	fmt.Fprintf(f, "rings: %d\n", grid.Rings())
	fmt.Fprintf(f, "cells: %d\n", grid.Size())
	fmt.Fprintf(f, "coordinate_system: ring,col (ring 0 = center, col clockwise from angle 0)\n")
	fmt.Fprintf(f, "dead_ends: %d\n", len(grid.DeadEnds()))
	fmt.Fprintf(f, "removed_walls: %d\n", len(grid.RemovedWalls()))
	fmt.Fprintf(f, "doors: %d\n", len(grid.Doors()))
	fmt.Fprintf(f, "ticks: %d\n", g.Ticks)
	fmt.Fprintf(f, "caught: %d\n", g.Caught)
	fmt.Fprintln(f, "")

	// --- Legend ---
	fmt.Fprintln(f, "--- Legend ---")
	fmt.Fprintln(f, Legend)
	fmt.Fprintln(f, "")

	// --- Map ---
	fmt.Fprintln(f, "--- Map ---")
	fmt.Fprint(f, Render(g, false, 120))
	fmt.Fprintln(f, "")

	// --- Doors ---
	fmt.Fprintln(f, "--- Doors ---")
	for _, d := range grid.Doors() {
		fmt.Fprintf(f, "  %v <-> %v\n", grid.CellByID(d.A), grid.CellByID(d.B))
	}
	fmt.Fprintln(f, "")

	// --- Movers ---
	fmt.Fprintln(f, "--- Movers ---")
	for _, n := range g.Movers() {
		fmt.Fprintf(f, "  id: %s name: %q role: %s cell: %v moving: %v keys: %d\n",
			n.ID, n.Name, n.Role, n.Current(), !n.FinishedMoving(), n.Inventory.Count(world.KeyItem))
	}
	fmt.Fprintln(f, "")

	// --- Messages ---
	fmt.Fprintln(f, "--- Messages ---")
	for _, m := range g.Messages {
		fmt.Fprintf(f, "  %s\n", m)
	}

	return absPath, nil
}
