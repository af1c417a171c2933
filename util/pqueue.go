package util

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

// min-heap keyed by priority, lazy decrease-key (duplicates allowed)
type PriorityQueue[T any, P constraints.Ordered] struct {
	heap _PQHeap[T, P]
}

func NewPriorityQueue[T any, P constraints.Ordered](cap int) PriorityQueue[T, P] {
	return PriorityQueue[T, P]{
		heap: make([]_PQEntry[T, P], 0, cap),
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
	entry := heap.Pop(&self.heap).(_PQEntry[T, P])
	return entry.value, true
}

func (self *PriorityQueue[T, P]) Length() int {
	return len(self.heap)
}

type _PQEntry[T any, P constraints.Ordered] struct {
	value    T
	priority P
}

type _PQHeap[T any, P constraints.Ordered] []_PQEntry[T, P]

func (self _PQHeap[T, P]) Len() int { return len(self) }

func (self _PQHeap[T, P]) Less(i, j int) bool {
	return self[i].priority < self[j].priority
}

func (self _PQHeap[T, P]) Swap(i, j int) {
	self[i], self[j] = self[j], self[i]
}

func (self *_PQHeap[T, P]) Push(x any) {
	*self = append(*self, x.(_PQEntry[T, P]))
}

func (self *_PQHeap[T, P]) Pop() any {
	old := *self
	n := len(old)
	entry := old[n-1]
	*self = old[:n-1]
	return entry
}
