// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge, HasEdge, Weight, Edges, EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc, each pair once.

package core

import (
	"fmt"
	"sort"
)

// AddEdge records an undirected edge a—b with weight w, mirroring it in both
// neighbor maps and creating missing endpoints.
//
// Steps:
//  1. Validate IDs, self-loop and weight.
//  2. If the pair already exists, accept an identical weight and reject a different one.
//  3. Ensure both endpoints exist, then store g[a][b] = g[b][a] = w.
//
// Errors:
//   - ErrEmptyNodeID, ErrSelfLoop, ErrNegativeWeight, ErrWeightConflict (wrapped with context).
//
// Complexity: O(1).
func (g Graph) AddEdge(a, b string, w int64) error {
	if a == "" || b == "" {
		return ErrEmptyNodeID
	}
	if a == b {
		return fmt.Errorf("%w: %s", ErrSelfLoop, a)
	}
	if w < 0 {
		return fmt.Errorf("%w: %s—%s weight=%d", ErrNegativeWeight, a, b, w)
	}
	if old, ok := g.Weight(a, b); ok && old != w {
		return fmt.Errorf("%w: %s—%s has %d, got %d", ErrWeightConflict, a, b, old, w)
	}

	_ = g.AddNode(a)
	_ = g.AddNode(b)
	g[a][b] = w
	g[b][a] = w

	return nil
}

// HasEdge reports whether a and b are adjacent.
func (g Graph) HasEdge(a, b string) bool {
	_, ok := g.Weight(a, b)

	return ok
}

// Weight returns the weight of edge a—b as seen from a's neighbor map.
func (g Graph) Weight(a, b string) (int64, bool) {
	nbrs, ok := g[a]
	if !ok {
		return 0, false
	}
	w, ok := nbrs[b]

	return w, ok
}

// Edges returns each undirected edge once, normalized so From < To,
// sorted by (From, To).
// Complexity: O(E log E).
func (g Graph) Edges() []Edge {
	var out []Edge
	for a, nbrs := range g {
		for b, w := range nbrs {
			if a < b {
				out = append(out, Edge{From: a, To: b, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of undirected edges (each mirrored pair counted once).
func (g Graph) EdgeCount() int {
	n := 0
	for a, nbrs := range g {
		for b := range nbrs {
			if a < b {
				n++
			}
		}
	}

	return n
}
