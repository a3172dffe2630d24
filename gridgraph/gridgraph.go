// Package gridgraph provides utilities to treat a 2D field of walkable and
// blocked cells as a graph. It supports:
//
//   - Eight- or four-connectivity (Conn8 or Conn4)
//   - Random obstacle placement from an injectable source
//   - Identification of connected components of walkable cells
//   - Minimal obstacle-clearing paths between two cells
//
// Cells are addressed either by (x,y) or by their row-major index y*Width + x.
package gridgraph

import (
	"math"
	"strings"
)

// conn8Offsets lists the 3×3 neighbourhood with dx as the outer and dy as the
// inner loop. Search tie-breaking depends on this order staying fixed.
var conn8Offsets = [][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var conn4Offsets = [][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// NewGrid constructs a width×height grid. Every cell is walkable unless
// WithObstacles is given, in which case each cell is independently blocked
// with probability equal to the density.
// Returns ErrBadDimensions for non-positive sizes and ErrBadDensity for a
// density outside [0, 1].
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int, opts ...Option) (*Grid, error) {
	cfg := DefaultGridOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	if cfg.Obstacles && (math.IsNaN(cfg.Density) || cfg.Density < 0 || cfg.Density > 1) {
		return nil, ErrBadDensity
	}

	gg := newGrid(width, height, cfg.Conn)
	// Draw in column-major order so a given seed yields the same field
	// regardless of how rows are later traversed.
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			walkable := true
			if cfg.Obstacles {
				walkable = cfg.Rand.Float64() >= cfg.Density
			}
			gg.walkable[gg.Index(x, y)] = walkable
		}
	}

	return gg, nil
}

// From2D constructs a Grid from a non-empty, rectangular 2D slice where
// cells[y][x] reports whether (x,y) is walkable.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
func From2D(cells [][]bool, conn Connectivity) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	gg := newGrid(w, h, conn)
	for y := 0; y < h; y++ {
		copy(gg.walkable[y*w:(y+1)*w], cells[y])
	}

	return gg, nil
}

// Parse builds a Grid from a textual map, one string per row.
// '#' marks a blocked cell; any other rune is walkable.
func Parse(rows []string, conn Connectivity) (*Grid, error) {
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		cells[y] = make([]bool, len(runes))
		for x, r := range runes {
			cells[y][x] = r != '#'
		}
	}

	return From2D(cells, conn)
}

func newGrid(w, h int, conn Connectivity) *Grid {
	offsets := conn8Offsets
	if conn == Conn4 {
		offsets = conn4Offsets
	}

	return &Grid{
		Width:           w,
		Height:          h,
		Conn:            conn,
		walkable:        make([]bool, w*h),
		neighborOffsets: offsets,
	}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Walkable reports whether (x,y) is in bounds and not blocked.
func (gg *Grid) Walkable(x, y int) bool {
	return gg.InBounds(x, y) && gg.walkable[gg.Index(x, y)]
}

// WalkableAt is Walkable addressed by row-major index.
func (gg *Grid) WalkableAt(i int) bool {
	return i >= 0 && i < len(gg.walkable) && gg.walkable[i]
}

// Cell returns the cell at (x,y). The caller must ensure InBounds(x,y).
func (gg *Grid) Cell(x, y int) Cell {
	return Cell{X: x, Y: y, Walkable: gg.walkable[gg.Index(x, y)]}
}

// Len returns the number of cells.
func (gg *Grid) Len() int {
	return len(gg.walkable)
}

// Blocked returns the number of non-walkable cells.
func (gg *Grid) Blocked() int {
	n := 0
	for _, ok := range gg.walkable {
		if !ok {
			n++
		}
	}

	return n
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
func (gg *Grid) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Neighbors returns the in-bounds neighbours of cell i in NeighborOffsets order.
// Walkability is not filtered.
func (gg *Grid) Neighbors(i int) []int {
	return gg.AppendNeighbors(make([]int, 0, len(gg.neighborOffsets)), i)
}

// AppendNeighbors appends the in-bounds neighbours of cell i to dst.
// It lets hot loops reuse one buffer.
func (gg *Grid) AppendNeighbors(dst []int, i int) []int {
	x, y := gg.Coordinate(i)
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if gg.InBounds(nx, ny) {
			dst = append(dst, gg.Index(nx, ny))
		}
	}

	return dst
}

// String renders the grid with '.' for walkable and '#' for blocked cells.
func (gg *Grid) String() string {
	var sb strings.Builder
	sb.Grow((gg.Width + 1) * gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.walkable[gg.Index(x, y)] {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *Grid) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *Grid) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
