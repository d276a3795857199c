package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/frontier"
)

// ShortestPath returns a minimum-weight path from start to end in g.
//
// Returns:
//
//   - Result{Path, Distance} on success; Path runs start..end inclusive.
//   - an error wrapping ErrNotFound if g is nil, start or end is not a key of g,
//     or end cannot be reached (including through MaxDistance / InfEdgeThreshold).
//   - ErrBrokenChain if path reconstruction fails; this signals a defect.
//
// start == end (present in g) yields Path [start] and Distance 0.
// g is only read; the same graph may be searched concurrently.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func ShortestPath(g core.Graph, start, end string, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.HasNode(start) {
		return Result{}, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}
	if !g.HasNode(end) {
		return Result{}, fmt.Errorf("%w: end %q", ErrNodeNotFound, end)
	}

	r := newRunner(g, start, opts)
	r.init()
	if !r.process(end, true) {
		return Result{}, fmt.Errorf("%w: %q → %q", ErrUnreachable, start, end)
	}

	path, err := PathTo(r.prev, start, end)
	if err != nil {
		return Result{}, err
	}

	return Result{Path: path, Distance: r.dist[end]}, nil
}

// Distances runs the search from start to exhaustion and returns the full
// distance table (Infinity for unreachable nodes) and predecessor table
// ("" for the start and for unreachable nodes).
//
// Errors: ErrNilGraph, or ErrNodeNotFound if start is not a key of g.
func Distances(g core.Graph, start string, opts ...Option) (map[string]int64, map[string]string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, nil, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}

	r := newRunner(g, start, opts)
	r.init()
	r.process("", false)

	return r.dist, r.prev, nil
}

// PathTo rebuilds the start..end path from a predecessor table.
//
// prev[v] == "" marks "no predecessor". start == end yields [start].
// A walk that hits an unset predecessor, or runs longer than the table
// (a cycle), returns ErrBrokenChain and no partial path.
//
// Complexity: O(path length).
func PathTo(prev map[string]string, start, end string) ([]string, error) {
	if start == end {
		return []string{start}, nil
	}

	path := []string{end}
	for cur := end; cur != start; {
		p := prev[cur]
		if p == "" || len(path) > len(prev) {
			return nil, fmt.Errorf("%w: stuck at %q while walking back from %q", ErrBrokenChain, cur, end)
		}
		path = append(path, p)
		cur = p
	}

	// Reverse into start→end order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       core.Graph         // The input graph; read-only.
	start   string             // Source node.
	options Options            // Distance cap and impassable-edge threshold.
	dist    map[string]int64   // Node → current best distance from start.
	prev    map[string]string  // Node → predecessor on the best path, "" if none.
	pq      *frontier.Frontier // Tentative nodes ordered by distance.
}

func newRunner(g core.Graph, start string, opts []Option) *runner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	v := len(g)

	return &runner{
		g:       g,
		start:   start,
		options: cfg,
		dist:    make(map[string]int64, v),
		prev:    make(map[string]string, v),
		pq:      frontier.New(v),
	}
}

// init sets every distance to Infinity (start to 0) and queues every node.
// Nodes are queued in sorted order so equal-distance ties resolve the same way on every run.
func (r *runner) init() {
	nodes := r.g.Nodes()
	for _, v := range nodes {
		r.dist[v] = Infinity
		r.prev[v] = ""
	}
	r.dist[r.start] = 0

	for _, v := range nodes {
		r.pq.Insert(v, r.dist[v])
	}
}

// process is the main loop. It extracts the closest tentative node and relaxes
// its neighbors until the frontier is exhausted, the remaining nodes are
// unreachable, or end is extracted (only when stopAtEnd is set). It reports
// whether end was reached.
func (r *runner) process(end string, stopAtEnd bool) bool {
	for {
		u, d, ok := r.pq.ExtractMin()
		if !ok {
			return false
		}

		// Stale duplicate; the live entry carries dist[u].
		if d != r.dist[u] {
			continue
		}

		if d == Infinity {
			// Every live entry left is unreachable.
			return stopAtEnd && u == end && end == r.start
		}

		if stopAtEnd && u == end {
			return true
		}

		r.relax(u)
	}
}

// relax tries to improve each neighbor of u through u.
// Neighbors that are not keys of the graph are ignored; the engine never adds nodes.
func (r *runner) relax(u string) {
	du := r.dist[u]
	nbrs, _ := r.g.NeighborIDs(u)
	for _, v := range nbrs {
		w := r.g[u][v]
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		dv, known := r.dist[v]
		if !known {
			continue
		}
		// Saturate instead of overflowing int64.
		if w > Infinity-du {
			continue
		}

		candidate := du + w
		if candidate > r.options.MaxDistance || candidate >= dv {
			continue
		}

		r.dist[v] = candidate
		r.prev[v] = u
		// v already left the frontier; unreachable with non-negative weights.
		if !r.pq.DecreasePriority(v, candidate) {
			r.pq.Insert(v, candidate)
		}
	}
}
