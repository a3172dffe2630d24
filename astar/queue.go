package astar

// openQueue is a min-heap of cell indices over a shared node slice.
// Order: lower F first, then lower H, then earlier insertion. This is the
// order a front-to-back linear scan with strict comparisons would pick.
// Each node tracks its own heap slot so improved costs can be re-sifted
// with heap.Fix instead of pushing duplicates.
type openQueue struct {
	cells []int
	nodes []Node
}

// Len returns the number of queued cells.
func (q *openQueue) Len() int { return len(q.cells) }

// Less orders by (F, H, seq).
func (q *openQueue) Less(i, j int) bool {
	a, b := &q.nodes[q.cells[i]], &q.nodes[q.cells[j]]
	if fa, fb := a.G+a.H, b.G+b.H; fa != fb {
		return fa < fb
	}
	if a.H != b.H {
		return a.H < b.H
	}

	return a.seq < b.seq
}

// Swap swaps two queued cells and their recorded slots.
func (q *openQueue) Swap(i, j int) {
	q.cells[i], q.cells[j] = q.cells[j], q.cells[i]
	q.nodes[q.cells[i]].slot = i
	q.nodes[q.cells[j]].slot = j
}

// Push appends cell x; called by heap.Push.
func (q *openQueue) Push(x interface{}) {
	c := x.(int)
	q.nodes[c].slot = len(q.cells)
	q.cells = append(q.cells, c)
}

// Pop removes the last cell; called by heap.Pop.
func (q *openQueue) Pop() interface{} {
	n := len(q.cells)
	c := q.cells[n-1]
	q.cells = q.cells[:n-1]
	q.nodes[c].slot = -1

	return c
}
