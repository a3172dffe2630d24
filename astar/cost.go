package astar

// Movement costs scaled by 10 so that a diagonal (≈10·√2) stays an integer.
const (
	StraightCost = 10
	DiagonalCost = 14
)

// Octile returns the octile distance between a and b:
// DiagonalCost per diagonal step plus StraightCost per remaining straight step.
// It is the exact step cost between adjacent cells and an admissible,
// consistent heuristic on 8-connected grids.
func Octile(a, b Coord) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx > dy {
		return DiagonalCost*dy + StraightCost*(dx-dy)
	}

	return DiagonalCost*dx + StraightCost*(dy-dx)
}

// Zero is the null heuristic.
func Zero(_, _ Coord) int { return 0 }

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
