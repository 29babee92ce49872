// Package maze carves a perfect maze into a grid using a randomized
// recursive backtracker.
//
// What:
//
//   - Generate allocates a Wall-filled grid and carves it from a start
//     coordinate, using an explicit stack instead of recursion.
//   - Rooms live on the doubled-step lattice (grid.RoomNeighbors); carving a
//     passage opens the room cell and the single wall cell between rooms, so
//     corridors are exactly one cell wide.
//   - The result is a spanning tree over the reachable room lattice: between
//     any two Open cells there is exactly one simple path.
//
// Why:
//
//   - The backtracker produces long, winding corridors with few junctions,
//     the classic maze look, in a single O(W×H) pass.
//   - Only the neighbor choice is randomized, so injecting a seed (or a
//     *rand.Rand) makes generation fully reproducible.
//
// Lattice alignment:
//
//	Doubled-step adjacency from the start visits a fixed sublattice. Start at
//	an odd/odd coordinate such as (1,1) to carve the intended room grid of an
//	odd-sized maze; cells off that sublattice stay Wall permanently. This is
//	intrinsic to the algorithm, not a defect — pick the start accordingly.
//
// Complexity:
//
//   - Time:   O(W×H) — each room is pushed and popped exactly once.
//   - Memory: O(W×H) for the stack and visited set.
//
// Options:
//
//   - WithSeed(s):  deterministic generation; same seed ⇒ identical maze.
//   - WithRand(r):  fully custom random source (overrides WithSeed).
//
// Errors:
//
//   - grid.ErrInvalidDimensions: width or height < 1.
//   - ErrStartOutOfBounds: start coordinate outside the grid.
package maze
