package core_test

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// ExampleGraph demonstrates building a graph and inspecting it.
func ExampleGraph() {
	// 1) Edges are mirrored automatically; endpoints are created on demand.
	g := core.New()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	// 2) An isolated node is a key with no neighbors.
	_ = g.AddNode("D")

	fmt.Println("Nodes:", g.Nodes())
	fmt.Println("B—A weight:", g["B"]["A"])
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Valid:", g.Validate() == nil)

	// Output:
	// Nodes: [A B C D]
	// B—A weight: 1
	// Edges: 2
	// Valid: true
}

// ExampleGraph_Validate shows a hand-written literal that forgot a mirror edge.
func ExampleGraph_Validate() {
	g := core.Graph{
		"A": {"B": 4},
		"B": {},
	}
	fmt.Println(g.Validate())

	// Output:
	// core: adjacency is not symmetric: A→B has no mirror
}
