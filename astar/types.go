// Package astar defines core types, configuration options and sentinel
// errors for A* search over a gridgraph.Grid.
package astar

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates a start or goal coordinate outside the grid.
	ErrOutOfBounds = errors.New("astar: coordinate out of bounds")

	// ErrStartBlocked indicates that the start cell is not walkable.
	ErrStartBlocked = errors.New("astar: start cell is not walkable")

	// ErrGoalBlocked indicates that the goal cell is not walkable.
	ErrGoalBlocked = errors.New("astar: goal cell is not walkable")

	// ErrNotStarted indicates Step was called before Reset.
	ErrNotStarted = errors.New("astar: search not started")

	// ErrBrokenChain indicates the parent chain from goal does not reach start.
	// It signals an internal invariant violation and is never expected.
	ErrBrokenChain = errors.New("astar: parent chain does not reach start")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Unvisited is the G cost of a node the current run has not reached yet.
// It is larger than any real path cost on a grid that fits in memory.
const Unvisited = math.MaxInt

// Coord is a 0-indexed grid position.
type Coord struct {
	X, Y int
}

// String formats c as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Node is the per-cell search state of one run.
//
// G is the cost of the best known path from start (Unvisited until reached),
// H the heuristic estimate to goal and Parent the row-major index of the
// predecessor on that path (-1 for none).
type Node struct {
	X, Y   int
	G      int
	H      int
	Parent int

	seq  int // insertion order into the open set, the last tie-breaker
	slot int // position inside the open heap, -1 when not queued
}

// F returns G + H, or Unvisited for a node the run has not reached.
func (n Node) F() int {
	if !n.Visited() {
		return Unvisited
	}

	return n.G + n.H
}

// Visited reports whether the run has assigned a real G cost.
func (n Node) Visited() bool {
	return n.G != Unvisited
}

// Coord returns the node position.
func (n Node) Coord() Coord {
	return Coord{X: n.X, Y: n.Y}
}

// Status is the state of a Searcher.
type Status int

const (
	// Idle means no search has been started.
	Idle Status = iota
	// Running means the open set is non-empty and goal not yet selected.
	Running
	// Found means goal was selected; a path is available.
	Found
	// NotFound means the open set was exhausted without reaching goal.
	NotFound
)

// String returns a lowercase name for s.
func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Found:
		return "found"
	case NotFound:
		return "not found"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result contains the outcome of a search.
//
// Path runs from start to goal inclusive and is empty when Found is false.
// Cost is the G cost of goal; Expanded counts cells moved to the closed set.
type Result struct {
	Path     []Coord
	Cost     int
	Expanded int
	Found    bool
}

// Heuristic estimates the cost from a to b. It must never overestimate
// for the result to be a shortest path.
type Heuristic func(a, b Coord) int

// Options configures a Searcher.
//
// Heuristic – estimate used for H (default Octile).
// OnExpand  – called when a cell is moved to the closed set.
// OnOpen    – called when a cell is inserted into or improved in the open set.
type Options struct {
	Heuristic Heuristic
	OnExpand  func(c Coord)
	OnOpen    func(c Coord, g, h int)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a Searcher.
type Option func(*Options)

// DefaultOptions returns Options with the Octile heuristic and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic: Octile,
		OnExpand:  func(Coord) {},
		OnOpen:    func(Coord, int, int) {},
	}
}

// WithHeuristic replaces the Octile heuristic. Passing Zero turns the
// search into Dijkstra's algorithm. A nil h is an ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic cannot be nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithOnExpand registers a callback run for every expanded cell.
func WithOnExpand(fn func(c Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnOpen registers a callback run whenever a cell enters the open set
// or its cost improves there.
func WithOnOpen(fn func(c Coord, g, h int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnOpen = fn
		}
	}
}
