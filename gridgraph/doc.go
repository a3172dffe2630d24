// Package gridgraph treats a 2D field of walkable and blocked cells as a
// graph, the substrate for grid path searches.
//
// What:
//
//   - Grid wraps a rectangular field of walkability flags, immutable once built.
//   - Random obstacle placement from an injectable *rand.Rand (reproducible by seed).
//   - Neighbor enumeration in a fixed order (dx outer, dy inner) for Conn8 or Conn4.
//   - Identifies connected components (“islands”) of walkable cells.
//   - Computes the minimum number of obstacles to clear (0-1 BFS) to join two cells.
//
// Why:
//
//   - Game maps: random terrain, reachability checks before a search.
//   - Diagnostics: explain a failed search by how many walls block it.
//
// Complexity:
//
//   - NewGrid, From2D, Parse: O(W×H), Memory: O(W×H).
//   - Neighbors:              O(d)                       (d = 4 or 8).
//   - ConnectedComponents:    O(W×H×d), Memory: O(W×H).
//   - Breach:                 O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - WithObstacles(density): block each cell with probability density ∈ [0,1].
//   - WithSeed / WithRand: source of randomness (default seed DefaultSeed).
//   - WithConnectivity: Conn8 (default) or Conn4.
//
// Errors:
//
//   - ErrBadDimensions: width or height not positive.
//   - ErrBadDensity: obstacle density outside [0,1].
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrIndex: cell index out of range.
package gridgraph
