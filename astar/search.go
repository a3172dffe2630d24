package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// Search finds a minimal-cost path from start to goal on g using octile
// step costs. It accepts functional options to customize behavior
// (WithHeuristic, WithOnExpand, WithOnOpen).
//
// Returns:
//
//   - Result with the start→goal path and its cost when Found is true.
//   - Result with Found == false and an empty Path when no path exists.
//   - err if g is nil, an option is invalid, start or goal is out of bounds
//     or not walkable, or reconstruction detects a broken parent chain.
//
// Complexity:
//
//   - Time:  O(N log N) for N = W×H cells
//   - Space: O(N)
func Search(g *gridgraph.Grid, start, goal Coord, opts ...Option) (Result, error) {
	s, err := NewSearcher(g, opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Run(start, goal)
}
