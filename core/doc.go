// Package core provides the Graph value shared by every shortpath package:
// an undirected, non-negatively weighted adjacency map
//
//	Graph[node][neighbor] = weight
//
// The representation is deliberately plain. A Graph literal is a valid input
// to the engine, so tests and callers can write graphs inline:
//
//	g := core.Graph{
//	    "A": {"B": 1},
//	    "B": {"A": 1},
//	    "C": {},          // isolated node
//	}
//
// Invariants (kept by AddEdge, checked by Validate):
//
//   - Symmetry: g[a][b] == g[b][a] for every adjacent pair.
//   - Non-negative weights, no self-loops, no empty IDs.
//   - Every neighbor is itself a key of the map.
//
// The shortest-path engine does not re-check these; producers such as
// graphio run Validate before handing a graph over.
//
// Core Methods:
//
//	New() Graph                              // O(1)
//	AddNode(id string) error                 // O(1)
//	AddEdge(a, b string, w int64) error      // O(1), mirrored
//	HasNode(id) / HasEdge(a, b) / Weight(a, b)
//	Nodes() []string                         // O(V·log V), sorted
//	NeighborIDs(id string) ([]string, error) // O(d·log d), sorted
//	Edges() []Edge                           // O(E·log E), each pair once
//	NodeCount() / EdgeCount() / Degree(id)
//	Clone() Graph                            // O(V+E), deep copy
//	Validate() error                         // O(V·log V + E·log d)
//
// Thread safety:
//
//	Graph is a map. Concurrent reads are safe; any write requires external
//	synchronization. Hand the engine a Clone if the graph keeps changing.
package core
