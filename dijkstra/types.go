package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Infinity is the distance recorded for nodes not (yet) reached from the start.
const Infinity int64 = math.MaxInt64

// ErrNotFound is the "no result" signal. Every error describing a missing
// node or a missing path wraps it, so callers only need errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("dijkstra: no path")

// Not-found variants, each wrapping ErrNotFound.
var (
	// ErrNilGraph indicates that a nil graph was passed in.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrNotFound)

	// ErrNodeNotFound indicates that the start or end node is not a key of the graph.
	ErrNodeNotFound = fmt.Errorf("%w: node not in graph", ErrNotFound)

	// ErrUnreachable indicates that no edge sequence connects start and end.
	ErrUnreachable = fmt.Errorf("%w: end is unreachable from start", ErrNotFound)
)

// ErrBrokenChain indicates that the predecessor table does not lead back to the
// start node even though the end node has a finite distance. It is a
// bookkeeping defect, never an expected outcome, and does NOT wrap ErrNotFound.
var ErrBrokenChain = errors.New("dijkstra: predecessor chain does not reach start")

// Configuration errors, raised as panics by the option constructors.
var (
	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a negative value,
	// which would make every edge (zero-weight ones included) impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Result is a minimum-weight path and its total weight.
type Result struct {
	// Path lists node IDs from start to end, both inclusive.
	Path []string

	// Distance is the sum of edge weights along Path.
	Distance int64
}

// Options configures a run.
//
// MaxDistance      – candidates farther than this from the start are not recorded.
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are treated as impassable.
//
//	Must be > 0. Default is Infinity (no walls).
type Options struct {
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed max stay at Infinity.
// Panics with ErrBadMaxDistance if max < 0.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks every edge with weight ≥ threshold as impassable.
// Panics with ErrBadInfThreshold if threshold ≤ 0.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}
