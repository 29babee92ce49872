package pathfind_test

import (
	"testing"

	"github.com/karesztrk/pathfinder/grid"
	"github.com/karesztrk/pathfinder/maze"
	"github.com/karesztrk/pathfinder/pathfind"
)

// benchGrid builds a 101×101 maze and the corner-to-corner endpoints.
func benchGrid(b *testing.B) (*grid.Grid, grid.Coordinate, grid.Coordinate) {
	b.Helper()
	start := grid.Coordinate{X: 1, Y: 1}
	g, err := maze.Generate(101, 101, start, maze.WithSeed(42))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}

	return g, start, grid.Coordinate{X: 99, Y: 99}
}

// BenchmarkFindPath_BFS measures breadth-first search corner to corner.
func BenchmarkFindPath_BFS(b *testing.B) {
	g, start, goal := benchGrid(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathfind.FindPath(g, start, goal, pathfind.BFS); err != nil {
			b.Fatalf("FindPath failed: %v", err)
		}
	}
}

// BenchmarkFindPath_DFS measures depth-first search corner to corner.
func BenchmarkFindPath_DFS(b *testing.B) {
	g, start, goal := benchGrid(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathfind.FindPath(g, start, goal, pathfind.DFS); err != nil {
			b.Fatalf("FindPath failed: %v", err)
		}
	}
}

// BenchmarkFindPath_Dijkstra measures uniform-cost search corner to corner.
func BenchmarkFindPath_Dijkstra(b *testing.B) {
	g, start, goal := benchGrid(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathfind.FindPath(g, start, goal, pathfind.Dijkstra); err != nil {
			b.Fatalf("FindPath failed: %v", err)
		}
	}
}
