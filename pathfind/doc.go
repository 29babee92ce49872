// Package pathfind computes a route between two open cells of a grid using a
// selectable search strategy.
//
// What:
//
//   - FindPath(g, start, goal, algo) returns the ordered cell sequence from
//     start to goal inclusive, or an error when none exists.
//   - The strategy set is closed: BFS, DFS and Dijkstra, selected by the
//     Algorithm value — a plain switch, no dynamic dispatch.
//   - All strategies consume the same grid.Successors function; no graph is
//     materialized and the grid is never mutated.
//
// Why:
//
//   - BFS guarantees the minimum number of steps on a unit-cost grid.
//   - DFS returns some valid path with less frontier bookkeeping — on a
//     perfect maze it finds the same unique route as BFS.
//   - Dijkstra matches BFS here (all edges cost 1) and is kept as the
//     extension point toward weighted terrain.
//
// Guarantees:
//
//   - If a path exists, one is returned; otherwise ErrNoPath — never a panic.
//   - Returned paths start at start, end at goal, and every consecutive pair
//     is unit-distance apart with both cells Open.
//   - BFS/Dijkstra paths are shortest; tie-breaking between equal-length
//     routes follows successor enumeration order and is not part of the
//     contract.
//
// Complexity (R = reachable open cells):
//
//   - BFS/DFS: O(R) time, O(R) memory.
//   - Dijkstra: O(R log R) time, O(R) memory (lazy decrease-key heap).
//
// Options:
//
//   - WithContext(ctx): cancel a long search; the context is checked once per
//     expansion.
//
// Errors:
//
//   - ErrNilGrid          if the grid pointer is nil.
//   - ErrInvalidEndpoint  if start or goal is out of bounds or a Wall cell.
//   - ErrNoPath           if the endpoints are valid but disconnected.
//   - ErrUnknownAlgorithm if the selector is not BFS, DFS or Dijkstra.
package pathfind
