package datastructure

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinPriorityQueue(t *testing.T) {
	pq := NewMinPriorityQueue[int, float64]()

	heap.Push(pq, NewPriorityQueueNode(0.7, 1))
	heap.Push(pq, NewPriorityQueueNode(0.2, 2))
	heap.Push(pq, NewPriorityQueueNode(0.9, 3))

	require.Equal(t, 3, pq.Size())
	assert.Equal(t, 2, pq.GetMin().GetItem())

	popped := []float64{}
	for pq.Size() > 0 {
		node := pq.GetMin()
		heap.Pop(pq)
		popped = append(popped, node.GetRank())
	}
	assert.Equal(t, []float64{0.2, 0.7, 0.9}, popped)
}

func TestMinPriorityQueueBoundedTopK(t *testing.T) {
	// keep the 2 largest of 4 by evicting the root when a bigger rank arrives
	pq := NewMinPriorityQueue[int, float64]()
	for docID, score := range map[int]float64{1: 0.1, 2: 0.8, 3: 0.5, 4: 0.9} {
		if pq.Size() < 2 {
			heap.Push(pq, NewPriorityQueueNode(score, docID))
			continue
		}
		if score > pq.GetMin().GetRank() {
			heap.Pop(pq)
			heap.Push(pq, NewPriorityQueueNode(score, docID))
		}
	}

	require.Equal(t, 2, pq.Size())
	assert.InDelta(t, 0.8, pq.GetMin().GetRank(), 1e-9)
}
