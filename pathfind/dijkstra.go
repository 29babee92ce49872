// Package pathfind - uniform-cost (Dijkstra) strategy.
//
// Dijkstra processes cells in order of accumulated cost using a min-heap
// priority queue with the "lazy decrease-key" pattern: a shorter route to an
// already-queued cell pushes a duplicate entry, and stale entries are skipped
// when popped. Every step on this grid costs 1, so the result matches BFS;
// the strategy is retained as the extension point toward weighted terrain.
//
// Complexity:
//
//   - Time:  O(R log R) — each reachable cell is finalized once, each
//     relaxation may push one heap entry.
//   - Space: O(R) for the distance, parent and visited maps plus the heap.
package pathfind

import (
	"container/heap"

	"github.com/karesztrk/pathfinder/grid"
)

// stepCost is the uniform cost of moving between adjacent open cells.
const stepCost = 1

// dijkstraRunner holds the mutable state for a single Dijkstra execution.
type dijkstraRunner struct {
	g       *grid.Grid
	dist    map[grid.Coordinate]int
	parent  map[grid.Coordinate]grid.Coordinate
	visited map[grid.Coordinate]bool
	pq      nodePQ
}

// searchDijkstra runs uniform-cost search from start until the goal's
// distance is finalized or the frontier empties.
func searchDijkstra(g *grid.Grid, start, goal grid.Coordinate, o Options) ([]grid.Coordinate, error) {
	r := &dijkstraRunner{
		g:       g,
		dist:    map[grid.Coordinate]int{start: 0},
		parent:  make(map[grid.Coordinate]grid.Coordinate),
		visited: make(map[grid.Coordinate]bool),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{c: start, dist: 0})

	for r.pq.Len() > 0 {
		// cancellation check (once per extraction)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.c] {
			continue // stale heap entry, a shorter route was finalized earlier
		}
		r.visited[item.c] = true

		if item.c == goal {
			return reconstruct(r.parent, start, goal), nil
		}

		r.relax(item.c)
	}

	return nil, ErrNoPath
}

// relax attempts to improve the distance of every successor of u, pushing a
// new heap entry for each strict improvement.
func (r *dijkstraRunner) relax(u grid.Coordinate) {
	for _, v := range r.g.Successors(u) {
		newDist := r.dist[u] + stepCost
		if best, seen := r.dist[v]; seen && newDist >= best {
			continue
		}
		r.dist[v] = newDist
		r.parent[v] = u
		heap.Push(&r.pq, &nodeItem{c: v, dist: newDist})
	}
}

// nodeItem pairs a cell with its tentative distance from start.
type nodeItem struct {
	c    grid.Coordinate
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by tentative distance: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
