package buildorder

// pending is one queue entry. Entries for a module become stale once a
// fresher, lower-count entry for it has been pushed.
type pending struct {
	count int
	name  string
}

// pendingQueue is a min-heap of pending entries ordered by (count, name).
// It implements container/heap.Interface.
type pendingQueue []pending

func (q pendingQueue) Len() int { return len(q) }

func (q pendingQueue) Less(i, j int) bool {
	if q[i].count != q[j].count {
		return q[i].count < q[j].count
	}
	return q[i].name < q[j].name
}

func (q pendingQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *pendingQueue) Push(x any) {
	*q = append(*q, x.(pending))
}

func (q *pendingQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
