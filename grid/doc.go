// Package grid models a rectangular field of Wall/Open cells as the substrate
// for maze generation and pathfinding.
//
// What:
//
//   - Grid is a fixed-size, row-major field of CellState values.
//   - Get is the bounds-safe accessor every other component relies on:
//     out-of-range queries return (Wall, false) instead of panicking.
//   - RoomNeighbors lists in-bounds cells at Manhattan distance 2 along the
//     axes — the doubled-step adjacency used while carving, which leaves a
//     one-cell wall between any two adjacent rooms.
//   - Successors lists the Open cells at Manhattan distance 1 — the traversal
//     adjacency consumed directly by the search strategies. No separate graph
//     is materialized; this function is the graph.
//
// Why:
//
//   - Maze carving and route finding disagree about adjacency (step 2 vs.
//     step 1); keeping both rules on the Grid keeps that distinction explicit.
//   - A dense slice with O(1) arithmetic adjacency beats any edge-list or
//     spatial-index representation for a lattice of this shape.
//
// Complexity:
//
//   - New:            O(W×H) time and memory.
//   - Get/Set/InBounds: O(1).
//   - RoomNeighbors/Successors: O(1) (at most four candidates).
//   - String:         O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: New called with width or height < 1.
package grid
