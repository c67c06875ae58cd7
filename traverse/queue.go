package traverse

import "container/heap"

// Queue is a min-priority frontier over items of type T. Items are ordered
// by the caller's less function; items that compare equal leave in the order
// they were pushed, which keeps priority searches deterministic.
//
// Push and Pop cost O(log n). The zero value is not usable; call NewQueue.
type Queue[T any] struct {
	h entries[T]
}

// NewQueue returns an empty Queue ordered by less.
func NewQueue[T any](less func(a, b T) bool, capacity int) *Queue[T] {
	return &Queue[T]{h: entries[T]{
		items: make([]entry[T], 0, capacity),
		less:  less,
	}}
}

// Len returns the number of queued items, stale ones included.
func (q *Queue[T]) Len() int { return q.h.Len() }

// Push adds v to the queue.
func (q *Queue[T]) Push(v T) {
	heap.Push(&q.h, entry[T]{val: v, seq: q.h.next})
	q.h.next++
}

// Pop removes and returns the highest-priority item. It panics on an empty
// queue, like container/heap.
func (q *Queue[T]) Pop() T {
	return heap.Pop(&q.h).(entry[T]).val
}

// entry pairs a value with its insertion sequence number.
type entry[T any] struct {
	val T
	seq uint64
}

// entries implements heap.Interface with sequence tie-breaking.
type entries[T any] struct {
	items []entry[T]
	less  func(a, b T) bool
	next  uint64
}

func (e entries[T]) Len() int { return len(e.items) }

func (e entries[T]) Less(i, j int) bool {
	a, b := e.items[i], e.items[j]
	if e.less(a.val, b.val) {
		return true
	}
	if e.less(b.val, a.val) {
		return false
	}

	return a.seq < b.seq
}

func (e entries[T]) Swap(i, j int) { e.items[i], e.items[j] = e.items[j], e.items[i] }

func (e *entries[T]) Push(x any) { e.items = append(e.items, x.(entry[T])) }

func (e *entries[T]) Pop() any {
	old := e.items
	n := len(old)
	item := old[n-1]
	e.items = old[:n-1]

	return item
}
