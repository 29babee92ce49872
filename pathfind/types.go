// Package pathfind defines the strategy selector, tunable options and error
// definitions for grid pathfinding.
package pathfind

import (
	"context"
	"errors"
)

// Sentinel errors for pathfinding.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrInvalidEndpoint is returned when start or goal is out of bounds or a Wall cell.
	ErrInvalidEndpoint = errors.New("pathfind: endpoint is out of bounds or a wall")

	// ErrNoPath is returned when no open-cell route connects start and goal.
	ErrNoPath = errors.New("pathfind: no path between start and goal")

	// ErrUnknownAlgorithm is returned for an Algorithm value outside the known set.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm selector")
)

// Algorithm selects the search strategy used by FindPath.
type Algorithm int

const (
	// BFS explores level by level and returns a minimum-step path.
	BFS Algorithm = iota
	// DFS explores one branch greedily before backtracking and returns some
	// valid path, with no length guarantee.
	DFS
	// Dijkstra explores in order of accumulated cost. With every step costing
	// 1 it matches BFS; it exists as the extension point for weighted grids.
	Dijkstra
)

// String returns the conventional name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case Dijkstra:
		return "Dijkstra"
	default:
		return "Unknown"
	}
}

// Option configures FindPath behavior via functional arguments.
type Option func(*Options)

// Options holds parameters to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
