package animate

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Glyph is the visual class of a cell in one frame.
type Glyph int

const (
	GlyphOpen Glyph = iota
	GlyphBlocked
	GlyphExplored
	GlyphTrail
	GlyphWalker
)

// Scene is the static content of an animation.
type Scene struct {
	Grid *gridgraph.Grid
	Path []astar.Coord

	onPath   mapset.Set[int]
	explored mapset.Set[int]
}

// NewScene returns a Scene over g with no path and nothing explored.
func NewScene(g *gridgraph.Grid) *Scene {
	return &Scene{
		Grid:     g,
		onPath:   mapset.New[int](),
		explored: mapset.New[int](),
	}
}

// SetPath replaces the animated path. Coordinates outside the grid are ignored
// when drawing.
func (s *Scene) SetPath(path []astar.Coord) {
	s.Path = path
	s.onPath = mapset.New[int]()
	for _, c := range path {
		if s.Grid.InBounds(c.X, c.Y) {
			s.onPath.Put(s.Grid.Index(c.X, c.Y))
		}
	}
}

// MarkExplored records c as expanded by the search. Its signature matches
// astar.WithOnExpand.
func (s *Scene) MarkExplored(c astar.Coord) {
	if s.Grid.InBounds(c.X, c.Y) {
		s.explored.Put(s.Grid.Index(c.X, c.Y))
	}
}

// Explored returns the number of recorded expanded cells.
func (s *Scene) Explored() int {
	return s.explored.Size()
}

// Frames returns the number of frames Play will draw.
func (s *Scene) Frames() int {
	return len(s.Path)
}

// Glyph classifies (x,y) in the frame for step.
// Priority: walker, trail, blocked, explored, open.
func (s *Scene) Glyph(x, y, step int) Glyph {
	if step >= 0 && step < len(s.Path) && s.Path[step] == (astar.Coord{X: x, Y: y}) {
		return GlyphWalker
	}
	i := s.Grid.Index(x, y)
	switch {
	case s.onPath.Has(i):
		return GlyphTrail
	case !s.Grid.WalkableAt(i):
		return GlyphBlocked
	case s.explored.Has(i):
		return GlyphExplored
	default:
		return GlyphOpen
	}
}
