// File: methods_adjacent.go
// Role: Neighborhood API.
// Determinism:
//   - NeighborIDs() returns IDs sorted lex asc so relaxation order is stable across runs.

package core

import "sort"

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if id is not a key of the graph.
//
// Complexity: O(d log d).
func (g Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	nbrs, ok := g[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	ids := make([]string, 0, len(nbrs))
	for v := range nbrs {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of neighbors of id.
func (g Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	nbrs, ok := g[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(nbrs), nil
}
