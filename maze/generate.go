// Package maze implements the randomized recursive backtracker (iterative,
// explicit stack) over the doubled-step room lattice of a grid.
package maze

import (
	"math/rand"

	"github.com/karesztrk/pathfinder/grid"
)

// carver encapsulates mutable generation state for a single run.
type carver struct {
	g       *grid.Grid
	rng     *rand.Rand
	stack   []grid.Coordinate
	visited map[grid.Coordinate]bool
}

// Generate allocates a width×height grid and carves a perfect maze into it,
// starting from start. The returned grid should be treated as read-only.
//
// Returns grid.ErrInvalidDimensions for non-positive dimensions and
// ErrStartOutOfBounds when start does not lie inside the grid.
//
// Start at an odd/odd coordinate (e.g. (1,1)) to cover the intended room
// lattice; see the package documentation for the alignment rule.
//
// Complexity: O(W×H) time and memory.
func Generate(width, height int, start grid.Coordinate, opts ...Option) (*grid.Grid, error) {
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	if !g.InBounds(start.X, start.Y) {
		return nil, ErrStartOutOfBounds
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &carver{
		g:       g,
		rng:     resolveRNG(o),
		stack:   make([]grid.Coordinate, 0, width*height/4+1),
		visited: make(map[grid.Coordinate]bool, width*height/4+1),
	}
	c.run(start)

	return g, nil
}

// run walks the room lattice depth-first. The top of the stack is the
// current room; a dead end (no unvisited room neighbors) pops it, so the
// loop terminates once every reachable room has been carved.
func (c *carver) run(start grid.Coordinate) {
	c.g.Set(start.X, start.Y, grid.Open)
	c.visited[start] = true
	c.stack = append(c.stack, start)

	for len(c.stack) > 0 {
		current := c.stack[len(c.stack)-1] // peek, do not pop

		candidates := c.unvisitedRooms(current)
		if len(candidates) == 0 {
			c.stack = c.stack[:len(c.stack)-1] // backtrack
			continue
		}

		next := candidates[c.rng.Intn(len(candidates))]
		c.carve(current, next)
		c.visited[next] = true
		c.stack = append(c.stack, next)
	}
}

// unvisitedRooms filters the doubled-step neighbors of current down to the
// rooms not yet visited this run.
func (c *carver) unvisitedRooms(current grid.Coordinate) []grid.Coordinate {
	neighbors := c.g.RoomNeighbors(current)
	candidates := neighbors[:0]
	for _, n := range neighbors {
		if !c.visited[n] {
			candidates = append(candidates, n)
		}
	}

	return candidates
}

// carve opens next and the wall cell at the arithmetic midpoint between
// current and next. The two rooms are two cells apart on an axis, so the
// midpoint is exact.
func (c *carver) carve(current, next grid.Coordinate) {
	wallX := (current.X + next.X) / 2
	wallY := (current.Y + next.Y) / 2
	c.g.Set(wallX, wallY, grid.Open)
	c.g.Set(next.X, next.Y, grid.Open)
}
