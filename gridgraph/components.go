package gridgraph

// ConnectedComponents finds all contiguous regions (“islands”) of walkable
// cells according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS discovery order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *Grid) ConnectedComponents() [][]int {
	labels := gg.Labels()
	count := 0
	for _, l := range labels {
		if l+1 > count {
			count = l + 1
		}
	}
	if count == 0 {
		return nil
	}
	comps := make([][]int, count)
	// Second pass keeps BFS order inside each component.
	seen := make([]bool, len(labels))
	buf := make([]int, 0, len(gg.neighborOffsets))
	for i, l := range labels {
		if l < 0 || seen[i] {
			continue
		}
		queue := []int{i}
		seen[i] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comps[l] = append(comps[l], u)
			buf = gg.AppendNeighbors(buf[:0], u)
			for _, v := range buf {
				if labels[v] == l && !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
	}

	return comps
}

// Labels assigns every walkable cell the id of its component (0, 1, …, in
// row-major order of each component's first cell). Blocked cells get -1.
// Two walkable cells are mutually reachable iff their labels are equal.
//
// Time:   O(W·H·d). Memory: O(W·H).
func (gg *Grid) Labels() []int {
	labels := make([]int, len(gg.walkable))
	for i := range labels {
		labels[i] = -1
	}
	next := 0
	buf := make([]int, 0, len(gg.neighborOffsets))
	for i0, ok := range gg.walkable {
		if !ok || labels[i0] >= 0 {
			continue
		}
		// BFS to label the component
		queue := []int{i0}
		labels[i0] = next
		for qi := 0; qi < len(queue); qi++ {
			buf = gg.AppendNeighbors(buf[:0], queue[qi])
			for _, v := range buf {
				if gg.walkable[v] && labels[v] < 0 {
					labels[v] = next
					queue = append(queue, v)
				}
			}
		}
		next++
	}

	return labels
}
