package graph

// element is a queue entry: a tentative distance for a vertex.
type element struct {
	vertex   VertexID
	priority float64
	index    int
}

// priorityQueue implements heap.Interface so that Pop returns the element
// with the lowest priority.
type priorityQueue []*element

func newPriorityQueue(initialCapacity int) priorityQueue {
	return make(priorityQueue, 0, initialCapacity)
}

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Empty() bool { return len(pq) == 0 }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority == pq[j].priority {
		return pq[i].vertex < pq[j].vertex
	}
	return pq[i].priority < pq[j].priority
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push is used by heap.Interface and should not be called directly.
func (pq *priorityQueue) Push(x any) {
	e := x.(*element)
	e.index = len(*pq)
	*pq = append(*pq, e)
}

// Pop is used by heap.Interface and should not be called directly.
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*pq = old[:n-1]
	return e
}
