// Package pathfind dispatches FindPath to one of the closed set of search
// strategies and hosts the plumbing they share.
package pathfind

import (
	"fmt"

	"github.com/karesztrk/pathfinder/grid"
)

// FindPath returns the ordered coordinate sequence from start to goal
// inclusive, routed over Open cells of g using the selected algorithm.
// It is a pure function of its inputs: g is never mutated and no state
// survives the call.
//
// The path has length ≥ 1; length 1 exactly when start == goal.
//
// Returns ErrNilGrid, ErrInvalidEndpoint, ErrUnknownAlgorithm for invalid
// input, ErrNoPath when the endpoints are disconnected, or the context error
// when a WithContext deadline fires mid-search.
func FindPath(g *grid.Grid, start, goal grid.Coordinate, algo Algorithm, opts ...Option) ([]grid.Coordinate, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !isOpen(g, start) {
		return nil, fmt.Errorf("%w: start %v", ErrInvalidEndpoint, start)
	}
	if !isOpen(g, goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrInvalidEndpoint, goal)
	}
	if start == goal {
		return []grid.Coordinate{start}, nil
	}

	switch algo {
	case BFS:
		return searchBFS(g, start, goal, o)
	case DFS:
		return searchDFS(g, start, goal, o)
	case Dijkstra:
		return searchDijkstra(g, start, goal, o)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}

// isOpen reports whether c resolves to an Open cell of g.
func isOpen(g *grid.Grid, c grid.Coordinate) bool {
	s, ok := g.Get(c.X, c.Y)

	return ok && s == grid.Open
}

// reconstruct walks the parent links from goal back to start and reverses
// the result. Every strategy records one parent per first discovery, so the
// chain is a simple path.
func reconstruct(parent map[grid.Coordinate]grid.Coordinate, start, goal grid.Coordinate) []grid.Coordinate {
	path := []grid.Coordinate{goal}
	for cur := goal; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
