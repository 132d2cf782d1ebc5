package util

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

type _PQEntry[T any, P constraints.Ordered] struct {
	value    T
	priority P
}

type _PQHeap[T any, P constraints.Ordered] []_PQEntry[T, P]

func (self _PQHeap[T, P]) Len() int           { return len(self) }
func (self _PQHeap[T, P]) Less(i, j int) bool { return self[i].priority < self[j].priority }
func (self _PQHeap[T, P]) Swap(i, j int)      { self[i], self[j] = self[j], self[i] }
func (self *_PQHeap[T, P]) Push(x any) {
	*self = append(*self, x.(_PQEntry[T, P]))
}
func (self *_PQHeap[T, P]) Pop() any {
	old := *self
	n := len(old)
	item := old[n-1]
	*self = old[:n-1]
	return item
}

// Min-priority queue, lowest priority is dequeued first.
//
// Entries are never updated in place, callers enqueue again and skip stale entries.
type PriorityQueue[T any, P constraints.Ordered] struct {
	heap _PQHeap[T, P]
}

func NewPriorityQueue[T any, P constraints.Ordered](capacity int) PriorityQueue[T, P] {
	return PriorityQueue[T, P]{
		heap: make(_PQHeap[T, P], 0, capacity),
	}
}

func (self *PriorityQueue[T, P]) Enqueue(value T, priority P) {
	heap.Push(&self.heap, _PQEntry[T, P]{value: value, priority: priority})
}

func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	if len(self.heap) == 0 {
		var t T
		return t, false
	}
	item := heap.Pop(&self.heap).(_PQEntry[T, P])
	return item.value, true
}

func (self *PriorityQueue[T, P]) Length() int {
	return len(self.heap)
}

//*******************************************
// node flags
//*******************************************

// Per-node search state with a default value.
type Flags[T any] struct {
	flags    Array[T]
	_default T
}

func NewFlags[T any](count int32, _default T) Flags[T] {
	flags := NewArray[T](int(count))
	for i := range flags {
		flags[i] = _default
	}
	return Flags[T]{
		flags:    flags,
		_default: _default,
	}
}

func (self *Flags[T]) Get(id int32) *T {
	return &self.flags[id]
}

func (self *Flags[T]) Reset() {
	for i := range self.flags {
		self.flags[i] = self._default
	}
}
