// Package animate replays a found path over its grid, one frame per step.
//
// A Scene pairs a gridgraph.Grid with the path returned by astar and,
// optionally, the set of cells the search expanded. Each cell of a frame
// resolves to a Glyph:
//
//	Walker   – the path cell reached at the current step
//	Trail    – any other path cell
//	Blocked  – a non-walkable cell
//	Explored – a cell the search closed (when recorded)
//	Open     – everything else
//
// Two Animators are provided:
//
//   - TextAnimator writes frames to an io.Writer and rewinds the cursor with
//     ANSI escapes so each frame overwrites the previous one.
//   - ScreenAnimator draws on a tcell.Screen.
//
// Play drives an Animator through the path with a fixed delay between
// frames and stops early when its context is cancelled.
package animate
