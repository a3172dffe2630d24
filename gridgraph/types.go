// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import "math/rand"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity: the 3×3 neighbourhood minus the cell itself.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4
)

// DefaultSeed seeds obstacle generation when no source is supplied.
const DefaultSeed int64 = 1

// Cell represents a single grid cell with its coordinates and walkability.
type Cell struct {
	X, Y     int  // Coordinates within the grid
	Walkable bool // Fixed at construction
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Obstacles enables random obstacle placement.
	Obstacles bool
	// Density is the per-cell probability of an obstacle, in [0, 1].
	Density float64
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Rand is the random source for obstacle placement.
	Rand *rand.Rand
}

// Option configures grid construction.
type Option func(*GridOptions)

// DefaultGridOptions returns a GridOptions with default settings:
// no obstacles, Conn8, and a generator seeded with DefaultSeed.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Obstacles: false,
		Density:   0,
		Conn:      Conn8,
		Rand:      rand.New(rand.NewSource(DefaultSeed)),
	}
}

// WithObstacles enables random obstacles with the given density.
func WithObstacles(density float64) Option {
	return func(o *GridOptions) {
		o.Obstacles = true
		o.Density = density
	}
}

// WithSeed makes obstacle placement reproducible from seed.
func WithSeed(seed int64) Option {
	return func(o *GridOptions) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for obstacle placement. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *GridOptions) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithConnectivity selects Conn4 or Conn8 neighbourhoods.
func WithConnectivity(c Connectivity) Option {
	return func(o *GridOptions) {
		o.Conn = c
	}
}

// Grid is a rectangular field of walkable and blocked cells. It is immutable once built.
// Width and Height define dimensions; walkable holds one flag per cell in row-major order.
// neighborOffsets is precomputed for efficient adjacency lookups.
type Grid struct {
	Width, Height   int
	Conn            Connectivity
	walkable        []bool
	neighborOffsets [][2]int
}
