// File: methods_vertices.go
// Role: Node lifecycle & queries: New, AddNode, HasNode, Nodes, NodeCount.
// Determinism:
//   - Nodes() returns IDs sorted lex asc.

package core

import "sort"

// New returns an empty Graph ready for AddNode/AddEdge.
func New() Graph {
	return make(Graph)
}

// AddNode inserts an isolated node. Adding an existing node is a no-op.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//
// Complexity: O(1).
func (g Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, ok := g[id]; !ok {
		g[id] = make(map[string]int64)
	}

	return nil
}

// HasNode reports whether id is a key of the graph.
func (g Graph) HasNode(id string) bool {
	_, ok := g[id]

	return ok
}

// Nodes returns every node ID, sorted ascending.
// Complexity: O(V log V).
func (g Graph) Nodes() []string {
	ids := make([]string, 0, len(g))
	for id := range g {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the number of nodes.
func (g Graph) NodeCount() int { return len(g) }
