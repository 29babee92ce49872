// Package pathfind - breadth-first strategy.
//
// BFS explores cells in non-decreasing distance (step count) from start, so
// the first time the goal is discovered the recorded parent chain is a
// minimum-step path.
package pathfind

import "github.com/karesztrk/pathfinder/grid"

// bfsWalker encapsulates mutable BFS state.
type bfsWalker struct {
	g       *grid.Grid
	queue   []grid.Coordinate
	visited map[grid.Coordinate]bool
	parent  map[grid.Coordinate]grid.Coordinate
}

// searchBFS runs breadth-first search from start until goal is discovered or
// the frontier empties.
// Complexity: O(R) time and memory, R = reachable open cells.
func searchBFS(g *grid.Grid, start, goal grid.Coordinate, o Options) ([]grid.Coordinate, error) {
	w := &bfsWalker{
		g:       g,
		queue:   []grid.Coordinate{start},
		visited: map[grid.Coordinate]bool{start: true},
		parent:  make(map[grid.Coordinate]grid.Coordinate),
	}

	for len(w.queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		current := w.queue[0]
		w.queue = w.queue[1:]

		for _, next := range w.g.Successors(current) {
			if w.visited[next] {
				continue
			}
			w.visited[next] = true
			w.parent[next] = current
			if next == goal {
				return reconstruct(w.parent, start, goal), nil
			}
			w.queue = append(w.queue, next)
		}
	}

	return nil, ErrNoPath
}
