// Package frontier implements the priority frontier used by the shortest-path
// engine: a min-heap of (node, priority) entries with in-place decrease-key.
//
// Ordering:
//
//   - Smallest priority first.
//   - Equal priorities leave in insertion order (first inserted, first extracted).
//     DecreasePriority keeps an entry's original insertion rank.
//
// Duplicates:
//
//	Insert never rejects a node that is already queued; the second entry simply
//	coexists with the first. Only the lowest-priority entry per node is "live"
//	(reachable through DecreasePriority, Contains and Priority); the others are
//	returned by ExtractMin in due course and are expected to be discarded by the
//	caller as stale.
//
// Complexity:
//
//   - Insert, ExtractMin, DecreasePriority: O(log N).
//   - Contains, Priority, Len: O(1).
//
// A Frontier is not safe for concurrent use; the engine creates one per run.
package frontier

import "container/heap"

// entry is one queued (node, priority) pair.
type entry struct {
	node     string
	priority int64
	seq      uint64 // insertion rank, tie-breaker
	index    int    // position in the heap, -1 once popped
}

// entryHeap implements heap.Interface over *entry, keeping index up to date.
type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}

// Frontier is an indexed min-heap of node priorities.
type Frontier struct {
	heap    entryHeap
	live    map[string]*entry
	nextSeq uint64
}

// New returns an empty Frontier with room for capacity entries.
func New(capacity int) *Frontier {
	if capacity < 0 {
		capacity = 0
	}

	return &Frontier{
		heap: make(entryHeap, 0, capacity),
		live: make(map[string]*entry, capacity),
	}
}

// Len returns the number of queued entries, stale duplicates included.
func (f *Frontier) Len() int { return f.heap.Len() }

// Insert queues node with the given priority.
// If node is already queued, the new entry becomes live only when its
// priority is lower than the current live one.
func (f *Frontier) Insert(node string, priority int64) {
	e := &entry{node: node, priority: priority, seq: f.nextSeq}
	f.nextSeq++
	heap.Push(&f.heap, e)

	if cur, ok := f.live[node]; !ok || priority < cur.priority {
		f.live[node] = e
	}
}

// ExtractMin removes and returns the entry with the smallest priority.
// ok is false when the frontier is empty.
func (f *Frontier) ExtractMin() (node string, priority int64, ok bool) {
	if f.heap.Len() == 0 {
		return "", 0, false
	}
	e := heap.Pop(&f.heap).(*entry)
	if f.live[e.node] == e {
		delete(f.live, e.node)
	}

	return e.node, e.priority, true
}

// DecreasePriority lowers the live entry of node to priority in place.
// It returns false, leaving the frontier untouched, when node has no live
// entry or priority is not strictly lower; callers then Insert instead.
func (f *Frontier) DecreasePriority(node string, priority int64) bool {
	e, ok := f.live[node]
	if !ok || priority >= e.priority {
		return false
	}
	e.priority = priority
	heap.Fix(&f.heap, e.index)

	return true
}

// Contains reports whether node has a live entry.
func (f *Frontier) Contains(node string) bool {
	_, ok := f.live[node]

	return ok
}

// Priority returns the priority of node's live entry.
func (f *Frontier) Priority(node string) (int64, bool) {
	e, ok := f.live[node]
	if !ok {
		return 0, false
	}

	return e.priority, true
}
