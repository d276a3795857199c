// File: methods_clone.go
// Role: Snapshotting and validation of graph values.

package core

import "fmt"

// Clone returns a deep copy of the graph. Callers that keep editing a graph
// hand the engine a Clone so one computation sees a fixed snapshot.
// Complexity: O(V + E).
func (g Graph) Clone() Graph {
	out := make(Graph, len(g))
	for id, nbrs := range g {
		cp := make(map[string]int64, len(nbrs))
		for v, w := range nbrs {
			cp[v] = w
		}
		out[id] = cp
	}

	return out
}

// Validate checks the invariants the engine relies on but does not enforce:
// no empty IDs, no self-loops, no negative weights, every neighbor is a key,
// and g[a][b] == g[b][a] for every pair.
//
// The first violation found in sorted (a, b) order is returned, wrapped with context.
// Complexity: O(V log V + E log d).
func (g Graph) Validate() error {
	for _, a := range g.Nodes() {
		if a == "" {
			return ErrEmptyNodeID
		}
		nbrs, _ := g.NeighborIDs(a)
		for _, b := range nbrs {
			w := g[a][b]
			switch {
			case b == "":
				return fmt.Errorf("%w: neighbor of %s", ErrEmptyNodeID, a)
			case a == b:
				return fmt.Errorf("%w: %s", ErrSelfLoop, a)
			case w < 0:
				return fmt.Errorf("%w: %s—%s weight=%d", ErrNegativeWeight, a, b, w)
			}
			back, ok := g.Weight(b, a)
			if !ok {
				return fmt.Errorf("%w: %s→%s has no mirror", ErrAsymmetric, a, b)
			}
			if back != w {
				return fmt.Errorf("%w: %s→%s=%d but %s→%s=%d", ErrAsymmetric, a, b, w, b, a, back)
			}
		}
	}

	return nil
}
