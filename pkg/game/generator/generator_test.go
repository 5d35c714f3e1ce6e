package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polarmaze/pkg/engine/world"
)

func allAlgorithms() []world.Algorithm {
	return []world.Algorithm{Backtracker, GrowingTreeRandom, GrowingTreeLast, WilsonWalk}
}

// TestAlgorithms_PerfectMaze checks every generator yields a spanning tree:
// all cells reachable and exactly one passage fewer than cells.
func TestAlgorithms_PerfectMaze(t *testing.T) {
	for _, alg := range allAlgorithms() {
		for _, rings := range []int{2, 3, 5, 8, 10} {
			g, err := world.NewPolarGrid(rings, world.WithSeed(int64(rings)*17))
			require.NoError(t, err)
			require.NoError(t, g.Generate(alg, nil), alg.Name())

			d := g.Distances(g.Root())
			assert.Equal(t, g.Size(), d.Len(), "%s with %d rings left cells unreachable", alg.Name(), rings)

			links := 0
			for _, c := range g.Cells() {
				links += c.LinkCount()
			}
			assert.Equal(t, g.Size()-1, links/2, "%s with %d rings is not a tree", alg.Name(), rings)
			assert.Empty(t, g.Validate())
		}
	}
}

func TestAlgorithms_Deterministic(t *testing.T) {
	for _, alg := range allAlgorithms() {
		a, _ := world.NewPolarGrid(6, world.WithSeed(5))
		b, _ := world.NewPolarGrid(6, world.WithSeed(5))
		require.NoError(t, a.Generate(alg, a.Root()))
		require.NoError(t, b.Generate(alg, b.Root()))
		for i, c := range a.Cells() {
			for _, n := range a.Links(c) {
				assert.True(t, b.Cells()[i].IsLinked(b.CellByID(n.ID)), "%s differs at %v", alg.Name(), c)
			}
		}
	}
}

func TestAlgorithms_SingleCell(t *testing.T) {
	for _, alg := range allAlgorithms() {
		g, err := world.NewPolarGrid(1, world.WithSeed(1))
		require.NoError(t, err)
		require.NoError(t, g.Generate(alg, nil))
		assert.Equal(t, 0, g.Root().LinkCount())
	}
}

// An eight ring maze is generated from the root, fully braided and given
// rooms; it must stay connected with no dead ends outside the rooms.
func TestPipeline_BraidedWithRooms(t *testing.T) {
	g, err := world.NewPolarGrid(8, world.WithSeed(2024))
	require.NoError(t, err)
	require.Equal(t, 187, g.Size())

	require.NoError(t, g.Generate(DefaultGenerator, g.Root()))
	g.Braid(1.0)
	require.NoError(t, g.MakeRooms())

	assert.Empty(t, g.DeadEnds())
	assert.Equal(t, g.Size(), g.Distances(g.Root()).Len())
	assert.Len(t, g.Rooms(), 2)
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		alg, err := ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, alg.Name())
	}

	alg, err := ByName("  Backtracker ")
	require.NoError(t, err)
	assert.Same(t, Backtracker, alg)

	_, err = ByName("kruskal")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Equal(t, []string{"backtracker", "growing-tree-last", "growing-tree-random", "wilson"}, Names())
}
