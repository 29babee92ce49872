// Package grid provides the dense rectangular cell field shared by the maze
// generator and the pathfinding strategies. A Grid starts out all Wall; the
// generator carves Open cells into it, after which it should be treated as
// read-only and may be queried concurrently.
package grid

import "strings"

// roomOffsets is the doubled-step adjacency used during maze generation:
// rooms sit two cells apart so that a wall cell remains between them.
var roomOffsets = [4][2]int{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}

// stepOffsets is the unit-step adjacency used during traversal.
var stepOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is a fixed-size rectangular field of cells, stored row-major.
// Dimensions are set at construction and never change.
type Grid struct {
	width, height int
	cells         []CellState
}

// New allocates a width×height grid with every cell set to Wall.
// Returns ErrInvalidDimensions if width or height is less than 1.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimensions
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the state of cell (x,y) and true, or (Wall, false) when (x,y)
// is out of bounds. It never panics: neighbor enumeration near the edges is
// expected to probe out-of-range coordinates.
// Complexity: O(1).
func (g *Grid) Get(x, y int) (CellState, bool) {
	if !g.InBounds(x, y) {
		return Wall, false
	}

	return g.cells[g.index(x, y)], true
}

// Set writes the state of cell (x,y). The coordinate must be in bounds;
// Set panics otherwise, exactly like a slice index. All internal call
// sites validate before writing.
// Complexity: O(1).
func (g *Grid) Set(x, y int, s CellState) {
	g.cells[g.index(x, y)] = s
}

// RoomNeighbors returns the up-to-4 in-bounds coordinates at Manhattan
// distance 2 in the axis directions from c. This is the generation-time
// adjacency: the cell halfway between c and each result is the wall the
// carver may open.
// Complexity: O(1).
func (g *Grid) RoomNeighbors(c Coordinate) []Coordinate {
	neighbors := make([]Coordinate, 0, len(roomOffsets))
	for _, d := range roomOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if g.InBounds(nx, ny) {
			neighbors = append(neighbors, Coordinate{X: nx, Y: ny})
		}
	}

	return neighbors
}

// Successors returns the up-to-4 coordinates at Manhattan distance 1 from c
// whose state is Open. This is the traversal adjacency consumed by the
// search strategies; together with Get it is the entire graph interface.
// Complexity: O(1).
func (g *Grid) Successors(c Coordinate) []Coordinate {
	succ := make([]Coordinate, 0, len(stepOffsets))
	for _, d := range stepOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if s, ok := g.Get(nx, ny); ok && s == Open {
			succ = append(succ, Coordinate{X: nx, Y: ny})
		}
	}

	return succ
}

// String renders the grid one row per line: '#' for Wall, '.' for Open.
// Debugging aid only; this is not a persisted format.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteRune(CellRune(g, x, y))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// CellRune maps cell (x,y) to its dump rune: '#' for Wall, '.' for Open,
// ' ' for out-of-bounds.
func CellRune(g *Grid, x, y int) rune {
	s, ok := g.Get(x, y)
	switch {
	case !ok:
		return ' '
	case s == Open:
		return '.'
	default:
		return '#'
	}
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}
