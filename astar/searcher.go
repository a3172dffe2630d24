package astar

import (
	"container/heap"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Searcher runs A* searches over one grid. Per-cell state lives in a node
// slice indexed like the grid, so parents are plain indices and a Reset
// restores every node before the next run. A Searcher is not safe for
// concurrent use.
type Searcher struct {
	grid    *gridgraph.Grid
	options Options

	nodes  []Node
	open   openQueue
	inOpen mapset.Set[int]
	closed mapset.Set[int]
	buf    []int

	start, goal int
	seq         int
	expanded    int
	status      Status
}

// NewSearcher binds a Searcher to g.
// Returns ErrNilGrid for a nil grid and ErrOptionViolation for invalid options.
func NewSearcher(g *gridgraph.Grid, opts ...Option) (*Searcher, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	nodes := make([]Node, g.Len())
	for i := range nodes {
		x, y := g.Coordinate(i)
		nodes[i] = Node{X: x, Y: y, G: Unvisited, Parent: -1, slot: -1}
	}

	return &Searcher{
		grid:    g,
		options: cfg,
		nodes:   nodes,
		open:    openQueue{nodes: nodes},
		inOpen:  mapset.New[int](),
		closed:  mapset.New[int](),
		buf:     make([]int, 0, len(g.NeighborOffsets())),
		start:   -1,
		goal:    -1,
	}, nil
}

// Reset validates start and goal, clears all per-run state and seeds the
// open set with start. It must precede Step.
//
// Errors: ErrOutOfBounds, ErrStartBlocked, ErrGoalBlocked. On error the
// Searcher is left Idle.
func (s *Searcher) Reset(start, goal Coord) error {
	s.status = Idle
	if !s.grid.InBounds(start.X, start.Y) {
		return fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, s.grid.Width, s.grid.Height)
	}
	if !s.grid.InBounds(goal.X, goal.Y) {
		return fmt.Errorf("%w: goal %v in %dx%d grid", ErrOutOfBounds, goal, s.grid.Width, s.grid.Height)
	}
	if !s.grid.Walkable(start.X, start.Y) {
		return fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	if !s.grid.Walkable(goal.X, goal.Y) {
		return fmt.Errorf("%w: %v", ErrGoalBlocked, goal)
	}

	for i := range s.nodes {
		n := &s.nodes[i]
		n.G, n.H, n.Parent, n.seq, n.slot = Unvisited, 0, -1, 0, -1
	}
	s.open.cells = s.open.cells[:0]
	s.inOpen = mapset.New[int]()
	s.closed = mapset.New[int]()
	s.seq, s.expanded = 0, 0

	s.start = s.grid.Index(start.X, start.Y)
	s.goal = s.grid.Index(goal.X, goal.Y)
	s.nodes[s.start].G = 0
	s.nodes[s.start].H = s.options.Heuristic(start, goal)
	s.enqueue(s.start)
	s.status = Running

	return nil
}

// Step performs one iteration: it selects the open cell with minimal F
// (ties: minimal H, then earliest inserted), closes it and, unless it is
// the goal, relaxes its walkable, unclosed neighbours. A neighbour is
// updated when it is not yet open or the new G is strictly lower. Closed
// cells are never re-opened.
//
// Once the search has terminated, Step keeps returning the terminal status.
func (s *Searcher) Step() (Status, error) {
	switch s.status {
	case Idle:
		return Idle, ErrNotStarted
	case Found, NotFound:
		return s.status, nil
	}
	if s.open.Len() == 0 {
		s.status = NotFound
		return s.status, nil
	}

	cur := heap.Pop(&s.open).(int)
	s.inOpen.Remove(cur)
	s.closed.Put(cur)
	s.expanded++
	curCoord := s.nodes[cur].Coord()
	s.options.OnExpand(curCoord)

	if cur == s.goal {
		s.status = Found
		return s.status, nil
	}

	goal := s.nodes[s.goal].Coord()
	s.buf = s.grid.AppendNeighbors(s.buf[:0], cur)
	for _, nb := range s.buf {
		if !s.grid.WalkableAt(nb) || s.closed.Has(nb) {
			continue
		}
		n := &s.nodes[nb]
		tentative := s.nodes[cur].G + Octile(curCoord, n.Coord())
		queued := s.inOpen.Has(nb)
		if queued && tentative >= n.G {
			continue
		}
		n.G = tentative
		n.H = s.options.Heuristic(n.Coord(), goal)
		n.Parent = cur
		if queued {
			heap.Fix(&s.open, n.slot)
		} else {
			s.enqueue(nb)
		}
		s.options.OnOpen(n.Coord(), n.G, n.H)
	}

	return s.status, nil
}

// Run resets the Searcher and steps until the search terminates.
// A missing path is reported as Result.Found == false with a nil error.
func (s *Searcher) Run(start, goal Coord) (Result, error) {
	if err := s.Reset(start, goal); err != nil {
		return Result{}, err
	}
	for s.status == Running {
		if _, err := s.Step(); err != nil {
			return Result{}, err
		}
	}

	return s.Result()
}

// Result reports the outcome of the last run.
func (s *Searcher) Result() (Result, error) {
	path, err := s.Path()
	if err != nil {
		return Result{}, err
	}
	res := Result{Path: path, Expanded: s.expanded, Found: s.status == Found}
	if res.Found {
		res.Cost = s.nodes[s.goal].G
	}

	return res, nil
}

// Status returns the state of the current run.
func (s *Searcher) Status() Status { return s.status }

// Expanded returns how many cells the current run has closed.
func (s *Searcher) Expanded() int { return s.expanded }

// Grid returns the grid the Searcher is bound to.
func (s *Searcher) Grid() *gridgraph.Grid { return s.grid }

// Node returns a copy of the search state at c. The caller must ensure c is in bounds.
func (s *Searcher) Node(c Coord) Node {
	return s.nodes[s.grid.Index(c.X, c.Y)]
}

// Open reports whether c is currently in the open set.
func (s *Searcher) Open(c Coord) bool {
	return s.grid.InBounds(c.X, c.Y) && s.inOpen.Has(s.grid.Index(c.X, c.Y))
}

// Closed reports whether c has been expanded in the current run.
func (s *Searcher) Closed(c Coord) bool {
	return s.grid.InBounds(c.X, c.Y) && s.closed.Has(s.grid.Index(c.X, c.Y))
}

func (s *Searcher) enqueue(i int) {
	s.nodes[i].seq = s.seq
	s.seq++
	heap.Push(&s.open, i)
	s.inOpen.Put(i)
}
