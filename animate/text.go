package animate

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Symbols maps each Glyph to the text drawn for it.
type Symbols struct {
	Open, Blocked, Explored, Trail, Walker string
}

// EmojiSymbols draws double-width emoji squares.
var EmojiSymbols = Symbols{
	Open:     "🟩",
	Blocked:  "🟥",
	Explored: "🟦",
	Trail:    "🌟",
	Walker:   "🚶",
}

// ASCIISymbols draws one byte per cell, for terminals without emoji.
var ASCIISymbols = Symbols{
	Open:     ".",
	Blocked:  "#",
	Explored: "~",
	Trail:    "*",
	Walker:   "@",
}

// For returns the symbol of g.
func (sym Symbols) For(g Glyph) string {
	switch g {
	case GlyphBlocked:
		return sym.Blocked
	case GlyphExplored:
		return sym.Explored
	case GlyphTrail:
		return sym.Trail
	case GlyphWalker:
		return sym.Walker
	default:
		return sym.Open
	}
}

// TextAnimator writes frames as text lines. From the second frame on it
// moves the cursor up by the grid height first, so frames overwrite in place.
type TextAnimator struct {
	w     io.Writer
	sym   Symbols
	drawn bool
}

// NewTextAnimator writes frames to w using sym.
func NewTextAnimator(w io.Writer, sym Symbols) *TextAnimator {
	return &TextAnimator{w: w, sym: sym}
}

// Frame writes the frame for step.
func (t *TextAnimator) Frame(s *Scene, step int) error {
	var sb strings.Builder
	if t.drawn {
		fmt.Fprintf(&sb, "\033[%dA", s.Grid.Height)
	}
	for y := 0; y < s.Grid.Height; y++ {
		for x := 0; x < s.Grid.Width; x++ {
			sb.WriteString(t.sym.For(s.Glyph(x, y, step)))
		}
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(t.w, sb.String()); err != nil {
		return err
	}
	t.drawn = true

	return nil
}

// PrintMap writes the walkability map of g, one row per line.
func PrintMap(w io.Writer, g *gridgraph.Grid, sym Symbols) error {
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Walkable(x, y) {
				sb.WriteString(sym.Open)
			} else {
				sb.WriteString(sym.Blocked)
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}
