// Package shortpath finds minimum-weight paths in weighted, undirected graphs.
//
// What is shortpath?
//
//	A small, deterministic shortest-path toolkit built from four layers:
//		• core/     — Graph as map[string]map[string]int64, validation & helpers
//		• frontier/ — min-priority queue with decrease-key and FIFO tie-breaking
//		• dijkstra/ — ShortestPath, Distances and PathTo over a core.Graph
//		• graphio/  — adjacency-list, adjacency-matrix and YAML notations
//
// Supporting packages:
//
//	builder/        — seeded generators (grid, path, cycle, complete, G(n,p))
//	render/         — Graphviz DOT output with the found path highlighted
//	cmd/shortpath/  — CLI: path, convert, generate
//
// Quick start:
//
//	g := core.New()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	res, err := dijkstra.ShortestPath(g, "A", "C")
//	if errors.Is(err, dijkstra.ErrNotFound) {
//		// missing node or disconnected
//	}
//	fmt.Println(res.Path, res.Distance) // [A B C] 3
//
// Guarantees:
//
//   - Searches never mutate the input graph; concurrent searches over one
//     graph are safe as long as nobody writes to it.
//   - Equal-distance ties resolve the same way on every run.
//   - "No path" is a distinguishable outcome (ErrNotFound), never a sentinel value.
package shortpath
