// Package dijkstra computes a minimum-weight path between two nodes of an
// undirected graph with non-negative integer edge weights.
//
// Overview:
//
//   - ShortestPath(g, start, end) returns the path start..end and its total weight.
//   - Nodes are finalized in non-decreasing distance order, driven by a
//     frontier.Frontier (indexed binary heap with in-place decrease-key).
//   - The search stops as soon as end is extracted from the frontier.
//   - Distances(g, start) runs the same search to exhaustion and exposes the
//     distance and predecessor tables; PathTo rebuilds a path from the latter.
//
// Algorithm:
//
//  1. dist[v] = Infinity and prev[v] = "" for every key of g; dist[start] = 0.
//     Every node is queued with its initial priority.
//  2. Extract the minimum entry:
//     • frontier empty → not found;
//     • priority != dist[u] → stale, skip;
//     • dist[u] == Infinity → not found (start == end cannot get here);
//     • u == end → done;
//     • otherwise relax: candidate = dist[u] + w, and if candidate < dist[v],
//     update dist[v], prev[v] and the frontier.
//  3. Walk prev back from end to start and reverse.
//
// Error handling:
//
//   - ErrNotFound is the "no result" signal. ErrNilGraph, ErrNodeNotFound and
//     ErrUnreachable all wrap it:
//
//     res, err := dijkstra.ShortestPath(g, "A", "F")
//     if errors.Is(err, dijkstra.ErrNotFound) {
//     // no path
//     }
//
//   - ErrBrokenChain means the predecessor table does not lead back to start.
//     It indicates a bookkeeping bug and never carries a partial path.
//
//   - Negative or asymmetric weights are not detected here. Producers (core.Graph.AddEdge,
//     graphio parsers) reject them; hand-built graphs should call core.Graph.Validate.
//
// Options:
//
//   - WithMaxDistance(x): candidates with distance > x are not recorded (x ≥ 0).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable (t > 0).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V); decrease-key happens in place, so the frontier never exceeds V live entries.
//
// Thread safety:
//
//   - Each call owns its tables and frontier. Concurrent calls on the same graph are safe as
//     long as nobody writes to it; pass core.Graph.Clone() if it is being edited.
package dijkstra
