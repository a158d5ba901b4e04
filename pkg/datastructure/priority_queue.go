package datastructure

import (
	"golang.org/x/exp/constraints"
)

type priorityQueueNode[T any, G constraints.Ordered] struct {
	rank  G
	index int
	item  T
}

func NewPriorityQueueNode[T any, G constraints.Ordered](rank G, item T) *priorityQueueNode[T, G] {
	return &priorityQueueNode[T, G]{rank: rank, item: item}
}

func (node *priorityQueueNode[T, G]) GetItem() T {
	return node.item
}

func (node *priorityQueueNode[T, G]) GetRank() G {
	return node.rank
}

// MinPriorityQueue. smallest rank at the root, so keeping the queue capped at
// k nodes leaves the k largest-ranked items inside.
type MinPriorityQueue[T any, G constraints.Ordered] []*priorityQueueNode[T, G]

func NewMinPriorityQueue[T any, G constraints.Ordered]() *MinPriorityQueue[T, G] {
	return &MinPriorityQueue[T, G]{}
}

func (pq MinPriorityQueue[T, G]) Len() int {
	return len(pq)
}

func (pq MinPriorityQueue[T, G]) Size() int {
	return len(pq)
}

func (pq MinPriorityQueue[T, G]) GetMin() *priorityQueueNode[T, G] {
	return pq[0]
}

func (pq MinPriorityQueue[T, G]) Less(i, j int) bool {
	return pq[i].rank < pq[j].rank
}

func (pq MinPriorityQueue[T, G]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *MinPriorityQueue[T, G]) Push(x interface{}) {
	n := len(*pq)
	node := x.(*priorityQueueNode[T, G])
	node.index = n
	*pq = append(*pq, node)
}

func (pq *MinPriorityQueue[T, G]) Pop() interface{} {
	old := *pq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*pq = old[:n-1]
	return node
}
