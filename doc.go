// Package pathfinder generates perfect grid mazes and finds routes through
// them with a selectable search strategy.
//
// 🚀 What is pathfinder?
//
//	A small, focused library for maze-shaped problems:
//		• Grid primitives: bounds-safe cell access over a dense rectangular field
//		• Maze generation: randomized recursive backtracker, seedable & reproducible
//		• Pathfinding: BFS, DFS and Dijkstra over the same successor function
//
// ✨ Why choose pathfinder?
//
//   - Minimal API – three packages, clear and intuitive naming
//   - Deterministic – inject a seed (or a *rand.Rand) and regenerate the exact maze
//   - Pure Go – no cgo, no hidden deps
//   - Renderer-agnostic – the core knows cells and coordinates, nothing else
//
// Everything is organized under three subpackages:
//
//	grid/     — Coordinate, CellState and the Grid field with both adjacency rules
//	maze/     — the carving algorithm that turns an all-Wall grid into a perfect maze
//	pathfind/ — FindPath with the BFS | DFS | Dijkstra strategy selector
//
// Quick ASCII example, a generated 9×9 maze (# wall, . open):
//
//	#########
//	#.......#
//	#.#####.#
//	#.#...#.#
//	#.#.#.#.#
//	#...#...#
//	#.#####.#
//	#.......#
//	#########
//
// A perfect maze has exactly one simple path between any two open cells, so
// every strategy returns the same route — BFS and Dijkstra additionally
// guarantee it is the shortest one on arbitrary (imperfect) grids.
//
//	go get github.com/karesztrk/pathfinder
package pathfinder
