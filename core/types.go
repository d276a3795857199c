// Package core defines the Graph value consumed by the shortest-path engine,
// the Edge view type, and the sentinel errors returned by graph builders.
//
// Errors:
//
//	ErrEmptyNodeID     - node ID is the empty string.
//	ErrNodeNotFound    - requested node does not exist.
//	ErrNegativeWeight  - edge weight is below zero.
//	ErrSelfLoop        - edge from a node to itself.
//	ErrAsymmetric      - A→B and B→A disagree (or one of them is missing).
//	ErrWeightConflict  - the same pair was added twice with different weights.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeWeight indicates an edge with a weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrAsymmetric indicates that the neighbor maps are not mirrored.
	ErrAsymmetric = errors.New("core: adjacency is not symmetric")

	// ErrWeightConflict indicates that an existing edge was re-added with a different weight.
	ErrWeightConflict = errors.New("core: conflicting weight for existing edge")
)

// Graph maps a node ID to its neighbors and the weight of the connecting edge.
//
// The representation is undirected: whenever g[a][b] == w, g[b][a] == w must hold.
// A node with no neighbors is a key mapped to an empty (non-nil) map.
// Builders in this package keep both invariants; Validate checks them for
// graphs assembled by hand.
type Graph map[string]map[string]int64

// Edge is a read-only view of one undirected edge, normalized so that From < To.
type Edge struct {
	// From is the lexicographically smaller endpoint.
	From string

	// To is the lexicographically larger endpoint.
	To string

	// Weight is the non-negative cost of traversing the edge.
	Weight int64
}
