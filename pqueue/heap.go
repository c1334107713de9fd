package pqueue

import "container/heap"

// item is one (vertex, priority) pair stored in the heap.
type item struct {
	vertex   int
	priority float64
}

// innerHeap is the container/heap-compatible slice backing Queue. It also
// maintains each item's index so Queue can fix up position on DecreaseKey.
type innerHeap struct {
	items []*item
	pos   map[int]int // vertex -> index into items
}

func (h innerHeap) Len() int { return len(h.items) }

func (h innerHeap) Less(i, j int) bool { return h.items[i].priority < h.items[j].priority }

func (h innerHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].vertex] = i
	h.pos[h.items[j].vertex] = j
}

func (h *innerHeap) Push(x interface{}) {
	it := x.(*item)
	h.pos[it.vertex] = len(h.items)
	h.items = append(h.items, it)
}

func (h *innerHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	delete(h.pos, it.vertex)

	return it
}

// Queue is an addressable min-heap of vertices ordered by a float64 priority.
//
// Queue is not safe for concurrent use; BMSSP's single-writer discipline
// (spec.md §5) never requires it to be.
type Queue struct {
	h innerHeap
}

// New creates an empty Queue. capacity is a sizing hint, not a hard limit.
func New(capacity int) *Queue {
	return &Queue{h: innerHeap{
		items: make([]*item, 0, capacity),
		pos:   make(map[int]int, capacity),
	}}
}

// Len returns the number of vertices currently queued.
func (q *Queue) Len() int { return len(q.h.items) }

// IsEmpty reports whether the queue holds no vertices.
func (q *Queue) IsEmpty() bool { return len(q.h.items) == 0 }

// Has reports whether v is currently present in the queue.
func (q *Queue) Has(v int) bool {
	_, ok := q.h.pos[v]
	return ok
}

// Insert adds v with priority p. Behavior is undefined if v is already
// present; callers must guarantee first-insertion (spec.md §4.1).
func (q *Queue) Insert(v int, p float64) {
	heap.Push(&q.h, &item{vertex: v, priority: p})
}

// ExtractMin removes and returns the vertex with the lowest priority.
// ok is false if the queue is empty.
func (q *Queue) ExtractMin() (v int, ok bool) {
	if q.IsEmpty() {
		return 0, false
	}

	it := heap.Pop(&q.h).(*item)

	return it.vertex, true
}

// DecreaseKey lowers v's priority to p if v is present and p is strictly
// less than its current priority; otherwise it is a no-op.
func (q *Queue) DecreaseKey(v int, p float64) {
	idx, ok := q.h.pos[v]
	if !ok {
		return
	}
	if p >= q.h.items[idx].priority {
		return
	}

	q.h.items[idx].priority = p
	heap.Fix(&q.h, idx)
}
