package animate

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var (
	styleOpen     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBlocked  = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorMaroon)
	styleExplored = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	styleTrail    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleWalker   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkGreen).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// ScreenAnimator draws frames on a tcell screen: the grid at the top-left
// corner and a status line under it.
type ScreenAnimator struct {
	screen tcell.Screen
}

// NewScreenAnimator draws on screen. The caller owns Init and Fini.
func NewScreenAnimator(screen tcell.Screen) *ScreenAnimator {
	return &ScreenAnimator{screen: screen}
}

// Frame draws the frame for step and shows it.
func (a *ScreenAnimator) Frame(s *Scene, step int) error {
	a.screen.Clear()
	for y := 0; y < s.Grid.Height; y++ {
		for x := 0; x < s.Grid.Width; x++ {
			r, st := glyphCell(s.Glyph(x, y, step))
			a.screen.SetContent(x, y, r, nil, st)
		}
	}
	status := fmt.Sprintf("step %d/%d", step+1, len(s.Path))
	if step >= 0 && step < len(s.Path) {
		status += " at " + s.Path[step].String()
	}
	a.drawText(0, s.Grid.Height, status, styleStatus)
	a.screen.Show()

	return nil
}

// Message draws text on the line after the status line and shows it.
func (a *ScreenAnimator) Message(s *Scene, text string) {
	a.drawText(0, s.Grid.Height+1, text, styleStatus)
	a.screen.Show()
}

func (a *ScreenAnimator) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func glyphCell(g Glyph) (rune, tcell.Style) {
	switch g {
	case GlyphBlocked:
		return '#', styleBlocked
	case GlyphExplored:
		return '~', styleExplored
	case GlyphTrail:
		return '*', styleTrail
	case GlyphWalker:
		return '@', styleWalker
	default:
		return '.', styleOpen
	}
}
