// Package astar finds minimal-cost paths between two cells of a
// gridgraph.Grid with the A* algorithm and octile movement costs.
//
// Overview:
//
//   - Straight steps cost 10 and diagonal steps 14 (≈10·√2 kept integral).
//   - The octile distance is both the step cost and the default heuristic,
//     which is admissible and consistent on 8-connected grids.
//   - Every cell of the 3×3 neighbourhood is a candidate move; there is no
//     corner-cutting rule, so a diagonal between two walls is allowed.
//
// Selection order:
//
//   - The open cell with minimal F = G + H is expanded first.
//   - Ties go to the minimal H, then to the cell inserted into the open set
//     earliest. Results are therefore fully reproducible.
//   - Closed cells are never re-opened.
//
// Entry points:
//
//   - Search: run one search to completion and get a Result.
//   - Searcher: reusable engine bound to one grid; Reset + Step drive the
//     search one expansion at a time for animations and debugging, Run
//     loops to completion, Node exposes per-cell G/H/Parent.
//
// Outcomes:
//
//   - Found: Result.Path runs from start to goal inclusive.
//   - Not found: Result.Found is false and Result.Path is empty; this is not an error.
//
// Errors (sentinel):
//
//   - ErrNilGrid          if the grid pointer is nil.
//   - ErrOutOfBounds      if start or goal lies outside the grid.
//   - ErrStartBlocked     if the start cell is not walkable.
//   - ErrGoalBlocked      if the goal cell is not walkable.
//   - ErrNotStarted       if Step is called before Reset.
//   - ErrOptionViolation  if an Option is invalid (e.g. nil heuristic).
//   - ErrBrokenChain      if path reconstruction hits a broken parent chain.
//
// Complexity:
//
//   - Time:  O(N log N), N = W×H; each cell is closed at most once.
//   - Space: O(N) for node state, open heap and membership sets.
//
// Example usage:
//
//	g, _ := gridgraph.NewGrid(40, 20, gridgraph.WithObstacles(0.2), gridgraph.WithSeed(7))
//	res, err := astar.Search(g, astar.Coord{X: 0, Y: 0}, astar.Coord{X: 39, Y: 19})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Found {
//	    fmt.Println("no path")
//	}
package astar
