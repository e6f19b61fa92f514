package solver

import "container/heap"

// node is one point in the include/exclude decision tree. Nodes are never
// modified after being pushed.
type node struct {
	level    int // index of the last decided item, -1 at the root
	profit   float64
	cost     float64
	selected []bool
	bound    float64
	seq      uint64
}

// nodeQueue is a max-heap on bound. Equal bounds pop in insertion order.
type nodeQueue struct {
	nodes   []*node
	nextSeq uint64
}

func (q *nodeQueue) Len() int { return len(q.nodes) }

func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.nodes[i], q.nodes[j]
	if a.bound != b.bound {
		return a.bound > b.bound
	}
	return a.seq < b.seq
}

func (q *nodeQueue) Swap(i, j int) { q.nodes[i], q.nodes[j] = q.nodes[j], q.nodes[i] }

func (q *nodeQueue) Push(x any) { q.nodes = append(q.nodes, x.(*node)) }

func (q *nodeQueue) Pop() any {
	old := q.nodes
	n := old[len(old)-1]
	old[len(old)-1] = nil
	q.nodes = old[:len(old)-1]
	return n
}

func (q *nodeQueue) push(n *node) {
	n.seq = q.nextSeq
	q.nextSeq++
	heap.Push(q, n)
}

func (q *nodeQueue) pop() *node {
	return heap.Pop(q).(*node)
}
