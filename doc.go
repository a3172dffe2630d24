// Package gridpath is a small toolkit for finding and watching shortest
// paths on 2-D grids of walkable and blocked cells.
//
// 🚀 What is gridpath?
//
//	Three subpackages and a command:
//		• gridgraph: the grid itself, random obstacles, components, wall breaching
//		• astar: A* search with octile costs, stepping and hooks
//		• animate: frame-by-frame playback to a terminal or a tcell screen
//		• cmd/gridpath: the interactive program tying them together
//
// ✨ Why gridpath?
//
//   - Deterministic – ties resolve by lowest F, then lowest H, then first queued
//   - Observable – OnExpand/OnOpen hooks and a Step API for visualisers
//   - Reproducible – obstacle fields come from a seed
//
// Costs are in tenths of a cell: 10 for a straight move and 14 for a diagonal.
//
// Quick ASCII example (S start, G goal, * path):
//
//	S . # . .
//	. * # . G
//	. . * * .
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
