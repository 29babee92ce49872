// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/karesztrk/pathfinder.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrInvalidDimensions indicates a grid requested with a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: width and height must be positive")
)

// CellState is the state of a single grid cell.
type CellState uint8

const (
	// Wall blocks traversal. Every cell of a freshly allocated Grid is Wall.
	Wall CellState = iota
	// Open is a carved cell that searches may traverse.
	Open
)

// String returns "Wall" or "Open".
func (s CellState) String() string {
	if s == Open {
		return "Open"
	}

	return "Wall"
}

// Coordinate identifies a single cell by column (X) and row (Y).
// It is a value type: compared and hashed by value, safe as a map key.
// Coordinates are never negative inside a Grid; out-of-range values are
// rejected by Get, not clamped.
type Coordinate struct {
	X, Y int
}

// String formats the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
