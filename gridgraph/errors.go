package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("gridgraph: width and height must be positive")
	// ErrBadDensity indicates an obstacle density outside [0, 1].
	ErrBadDensity = errors.New("gridgraph: obstacle density must lie in [0, 1]")
	// ErrIndex indicates a cell index outside the grid.
	ErrIndex = errors.New("gridgraph: cell index out of range")
)
