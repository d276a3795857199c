// Package dijkstra_test provides benchmarks for the shortest-path engine.
package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// gridGraph builds a side×side grid with seeded weights in [1, 9].
func gridGraph(b *testing.B, side int) core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
		builder.Grid(side, side),
	)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkShortestPath_Grid measures a corner-to-corner query on a 50×50 grid.
func BenchmarkShortestPath_Grid(b *testing.B) {
	g := gridGraph(b, 50)
	to := builder.GridID(49, 49)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath(g, builder.GridID(0, 0), to)
	}
}

// BenchmarkShortestPath_Complete measures a dense K_200 query.
func BenchmarkShortestPath_Complete(b *testing.B) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
		builder.Complete(200),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath(g, "V0", "V199")
	}
}

// BenchmarkDistances_Grid measures the exhaustive variant on the same grid.
func BenchmarkDistances_Grid(b *testing.B) {
	g := gridGraph(b, 50)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Distances(g, builder.GridID(0, 0))
	}
}
