package astar

import "fmt"

// Path rebuilds the route of a successful run by walking parent indices
// from goal back to start and reversing. It returns an empty slice when
// the run has not found the goal.
//
// A chain that dead-ends or runs longer than the number of cells is an
// invariant violation reported as ErrBrokenChain.
func (s *Searcher) Path() ([]Coord, error) {
	if s.status != Found {
		return []Coord{}, nil
	}

	path := make([]Coord, 0, 16)
	at := s.goal
	for {
		if at < 0 || len(path) >= len(s.nodes) {
			return nil, fmt.Errorf("%w: stopped after %d cells", ErrBrokenChain, len(path))
		}
		path = append(path, s.nodes[at].Coord())
		if at == s.start {
			break
		}
		at = s.nodes[at].Parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
