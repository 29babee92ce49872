// Package pathfind - depth-first strategy.
//
// DFS commits to one branch until it dead-ends, then backtracks. The parent
// links recorded at first discovery form a tree, so the chain from goal back
// to start is always a valid simple path — just not necessarily a shortest
// one. On a perfect maze the route is unique, so DFS and BFS agree there.
package pathfind

import "github.com/karesztrk/pathfinder/grid"

// searchDFS runs iterative depth-first search from start until goal is
// discovered or the stack empties.
// Complexity: O(R) time and memory, R = reachable open cells.
func searchDFS(g *grid.Grid, start, goal grid.Coordinate, o Options) ([]grid.Coordinate, error) {
	stack := []grid.Coordinate{start}
	visited := map[grid.Coordinate]bool{start: true}
	parent := make(map[grid.Coordinate]grid.Coordinate)

	for len(stack) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, next := range g.Successors(current) {
			if visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = current
			if next == goal {
				return reconstruct(parent, start, goal), nil
			}
			stack = append(stack, next)
		}
	}

	return nil, ErrNoPath
}
