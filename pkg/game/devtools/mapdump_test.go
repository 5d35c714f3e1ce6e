package devtools

import (
	"os"
	"strings"
	"testing"

	"polarmaze/pkg/game/state"
)

func buildGame(t *testing.T) *state.Game {
	t.Helper()
	r := state.DefaultRecipe()
	r.Seed = 12
	g, err := state.Build(r, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return g
}

func TestRender_PlainText(t *testing.T) {
	g := buildGame(t)
	out := Render(g, false, 80)

	if !strings.HasPrefix(out, "ring 0: @\n") {
		t.Errorf("Render() should start with the player on the root, got %q", out[:20])
	}
	if got := strings.Count(out, "M"); got != 3 {
		t.Errorf("Render() shows %d monsters, want 3", got)
	}
	if !strings.Contains(out, "D") {
		t.Error("Render() should show the locked doors")
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("Render(colored=false) must not emit escape codes")
	}
}

func TestRender_NarrowWidthWraps(t *testing.T) {
	g := buildGame(t)
	wide := strings.Count(Render(g, false, 200), "\n")
	narrow := strings.Count(Render(g, false, 20), "\n")
	if narrow <= wide {
		t.Errorf("narrow render has %d lines, wide %d", narrow, wide)
	}
}

func TestDumpMapToFile(t *testing.T) {
	g := buildGame(t)
	path, err := DumpMapToFile(g, t.TempDir())
	if err != nil {
		t.Fatalf("DumpMapToFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"=== MAP DUMP", "rings: 8", "cells: 187", "--- Movers ---", "role: player"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("dump is missing %q", want)
		}
	}
}
