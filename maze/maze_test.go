// Package maze_test validates the recursive-backtracker generator:
// input validation, determinism under seed, and the perfect-maze
// (connected, acyclic) invariants checked from first principles.
package maze_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karesztrk/pathfinder/grid"
	"github.com/karesztrk/pathfinder/maze"
)

// origin is the canonical odd/odd start used throughout.
var origin = grid.Coordinate{X: 1, Y: 1}

// floodFrom walks Successors-adjacency from start and returns every reached cell.
func floodFrom(g *grid.Grid, start grid.Coordinate) map[grid.Coordinate]bool {
	reached := map[grid.Coordinate]bool{start: true}
	queue := []grid.Coordinate{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Successors(cur) {
			if !reached[n] {
				reached[n] = true
				queue = append(queue, n)
			}
		}
	}

	return reached
}

// countOpen tallies Open cells over the whole grid.
func countOpen(g *grid.Grid) int {
	open := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if s, _ := g.Get(x, y); s == grid.Open {
				open++
			}
		}
	}

	return open
}

func TestGenerate_InvalidDimensions(t *testing.T) {
	_, err := maze.Generate(0, 5, origin)
	assert.ErrorIs(t, err, grid.ErrInvalidDimensions)

	_, err = maze.Generate(5, 0, origin)
	assert.ErrorIs(t, err, grid.ErrInvalidDimensions)
}

func TestGenerate_StartOutOfBounds(t *testing.T) {
	cases := []grid.Coordinate{
		{X: 5, Y: 1},
		{X: 1, Y: 5},
		{X: -1, Y: 1},
		{X: 1, Y: -1},
	}
	for _, start := range cases {
		_, err := maze.Generate(5, 5, start)
		assert.ErrorIs(t, err, maze.ErrStartOutOfBounds, "start %v", start)
	}
}

func TestGenerate_StartIsOpen(t *testing.T) {
	g, err := maze.Generate(5, 5, origin, maze.WithSeed(1))
	require.NoError(t, err)

	s, ok := g.Get(1, 1)
	require.True(t, ok)
	assert.Equal(t, grid.Open, s)
}

// TestGenerate_OffLatticeStaysWall: cells off the odd/odd sublattice are
// never carved — (0,0) in particular.
func TestGenerate_OffLatticeStaysWall(t *testing.T) {
	g, err := maze.Generate(5, 5, origin, maze.WithSeed(3))
	require.NoError(t, err)

	s, ok := g.Get(0, 0)
	require.True(t, ok)
	assert.Equal(t, grid.Wall, s, "(0,0) lies off the room lattice and must stay Wall")

	// Even/even coordinates are wall intersections, never rooms or passages.
	for y := 0; y < g.Height(); y += 2 {
		for x := 0; x < g.Width(); x += 2 {
			s, _ := g.Get(x, y)
			assert.Equal(t, grid.Wall, s, "cell (%d,%d)", x, y)
		}
	}
}

// TestGenerate_Connectivity: every Open cell is reachable from the start via
// Successors-adjacency.
func TestGenerate_Connectivity(t *testing.T) {
	g, err := maze.Generate(21, 21, origin, maze.WithSeed(42))
	require.NoError(t, err)

	reached := floodFrom(g, origin)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if s, _ := g.Get(x, y); s == grid.Open {
				assert.True(t, reached[grid.Coordinate{X: x, Y: y}],
					"open cell (%d,%d) unreachable from start", x, y)
			}
		}
	}
}

// TestGenerate_SpanningTree: acyclicity by counting. R rooms joined by R-1
// carved walls means 2R-1 Open cells in total — one more carved wall would
// close a cycle, one fewer would disconnect the maze.
func TestGenerate_SpanningTree(t *testing.T) {
	for _, dim := range []struct{ w, h int }{{5, 5}, {9, 7}, {21, 21}} {
		g, err := maze.Generate(dim.w, dim.h, origin, maze.WithSeed(7))
		require.NoError(t, err)

		// Rooms carved from (1,1) sit at odd coordinates.
		roomsX := (dim.w - 1) / 2
		roomsY := (dim.h - 1) / 2
		rooms := roomsX * roomsY

		assert.Equal(t, 2*rooms-1, countOpen(g), "%dx%d maze", dim.w, dim.h)
	}
}

// TestGenerate_Determinism: identical dimensions, start and seed produce an
// identical grid.
func TestGenerate_Determinism(t *testing.T) {
	a, err := maze.Generate(21, 21, origin, maze.WithSeed(99))
	require.NoError(t, err)
	b, err := maze.Generate(21, 21, origin, maze.WithSeed(99))
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
}

// TestGenerate_SeedsDiffer: distinct seeds should not collide on a grid this
// large (the 10×10 room lattice admits astronomically many spanning trees).
func TestGenerate_SeedsDiffer(t *testing.T) {
	a, err := maze.Generate(21, 21, origin, maze.WithSeed(1))
	require.NoError(t, err)
	b, err := maze.Generate(21, 21, origin, maze.WithSeed(2))
	require.NoError(t, err)

	assert.NotEqual(t, a.String(), b.String())
}

// TestGenerate_WithRand: injecting rand.New(rand.NewSource(s)) is equivalent
// to WithSeed(s).
func TestGenerate_WithRand(t *testing.T) {
	seeded, err := maze.Generate(11, 11, origin, maze.WithSeed(5))
	require.NoError(t, err)
	injected, err := maze.Generate(11, 11, origin, maze.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)

	assert.Equal(t, seeded.String(), injected.String())
}

// TestGenerate_SingleRoom: a grid with exactly one room degenerates to a
// single open cell.
func TestGenerate_SingleRoom(t *testing.T) {
	g, err := maze.Generate(3, 3, origin, maze.WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, 1, countOpen(g))
	s, _ := g.Get(1, 1)
	assert.Equal(t, grid.Open, s)
}

// TestGenerate_MisalignedStart: starting off the odd/odd sublattice still
// terminates and carves the sublattice reachable from that start. Documented
// behavior, not a defect.
func TestGenerate_MisalignedStart(t *testing.T) {
	g, err := maze.Generate(5, 5, grid.Coordinate{X: 0, Y: 0}, maze.WithSeed(1))
	require.NoError(t, err)

	// Rooms now sit on even/even coordinates: a 3×3 room lattice.
	assert.Equal(t, 2*9-1, countOpen(g))
	s, _ := g.Get(1, 1)
	assert.Equal(t, grid.Wall, s)
}
