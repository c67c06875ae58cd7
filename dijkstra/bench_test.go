package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkDijkstra_Open measures corner-to-corner search on an open 100×100 grid.
func BenchmarkDijkstra_Open(b *testing.B) {
	const n = 100
	g, _ := grid.New(n, n)
	snap := g.Snapshot()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(snap, grid.C(0, 0), grid.C(n-1, n-1))
	}
}

// BenchmarkDijkstra_Scattered runs on a 100×100 grid with ~25% walls.
func BenchmarkDijkstra_Scattered(b *testing.B) {
	const n = 100
	r := rand.New(rand.NewSource(7))
	g, _ := grid.New(n, n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if r.Intn(4) == 0 {
				_ = g.SetObstacle(grid.C(row, col))
			}
		}
	}
	_ = g.Clear(grid.C(0, 0))
	_ = g.Clear(grid.C(n-1, n-1))
	snap := g.Snapshot()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(snap, grid.C(0, 0), grid.C(n-1, n-1))
	}
}
