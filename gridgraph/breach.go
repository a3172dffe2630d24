package gridgraph

import (
	"container/list"
)

// Breach finds the cheapest route from cell from to cell to when blocked
// cells may be cleared at a cost of 1 each. Walkable cells cost nothing.
// Returns the sequence of cell‐indices (row‐major) from from to to inclusive
// and the number of obstacles on it. A cost of 0 means the cells are already
// connected.
//
// Behavior:
//  1. Validate indices (ErrIndex).
//  2. 0–1‐BFS from from:
//     • Moving into a walkable cell → cost 0
//     • Moving into a blocked cell  → cost 1
//  3. Stop when to is popped.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *Grid) Breach(from, to int) (path []int, cost int, err error) {
	n := len(gg.walkable)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, 0, ErrIndex
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}
	dist[from] = gg.stepCost(from)

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dq.PushFront(from)
	done := make([]bool, n)
	buf := make([]int, 0, len(gg.neighborOffsets))

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == to {
			break
		}
		buf = gg.AppendNeighbors(buf[:0], u)
		for _, v := range buf {
			step := gg.stepCost(v)
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Every cell is reachable once obstacles may be cleared, so to is done.
	for at := to; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[to], nil
}

func (gg *Grid) stepCost(i int) int {
	if gg.walkable[i] {
		return 0
	}

	return 1
}
