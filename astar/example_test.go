package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleSearch routes around a wall that leaves only the bottom row open.
//
//	. . # . .
//	. . # . .
//	. . # . .
//	. . # . .
//	. . . . .
func ExampleSearch() {
	g, _ := gridgraph.Parse([]string{
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".....",
	}, gridgraph.Conn8)

	res, err := astar.Search(g, astar.Coord{X: 0, Y: 0}, astar.Coord{X: 4, Y: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", res.Found, "cost:", res.Cost)
	fmt.Println(res.Path)
	// Output:
	// found: true cost: 96
	// [(0,0) (1,1) (1,2) (1,3) (2,4) (3,3) (4,2) (4,1) (4,0)]
}

// ExampleSearcher_Step advances a search one expansion at a time.
func ExampleSearcher_Step() {
	g, _ := gridgraph.NewGrid(3, 3)
	s, _ := astar.NewSearcher(g,
		astar.WithOnExpand(func(c astar.Coord) { fmt.Println("expand", c) }),
	)
	_ = s.Reset(astar.Coord{X: 0, Y: 0}, astar.Coord{X: 2, Y: 2})

	for {
		st, _ := s.Step()
		if st != astar.Running {
			fmt.Println(st)
			break
		}
	}
	// Output:
	// expand (0,0)
	// expand (1,1)
	// expand (2,2)
	// found
}

// ExampleSearch_noPath shows that an unreachable goal is a normal outcome.
func ExampleSearch_noPath() {
	g, _ := gridgraph.Parse([]string{
		"...",
		".##",
		".#.",
	}, gridgraph.Conn8)

	res, err := astar.Search(g, astar.Coord{X: 0, Y: 0}, astar.Coord{X: 2, Y: 2})
	fmt.Println(res.Found, len(res.Path), err)
	// Output:
	// false 0 <nil>
}
