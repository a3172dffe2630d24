// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ConnectedComponents demonstrates how to identify
// contiguous “islands” of walkable cells.
// Scenario:
//
//   - '.' walkable, '#' blocked
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Expect two islands.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleGrid_ConnectedComponents() {
	gg, _ := gridgraph.Parse([]string{
		"#..#",
		"..##",
		"##..",
	}, gridgraph.Conn4)

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (1,0) (1,1) (2,0) (0,1)
	// component 1: (2,2) (3,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: Breach
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Breach counts the walls standing between two cells.
func ExampleGrid_Breach() {
	gg, _ := gridgraph.Parse([]string{
		"..#..",
		"..#..",
	}, gridgraph.Conn8)

	path, cost, _ := gg.Breach(gg.Index(0, 0), gg.Index(4, 0))
	fmt.Printf("clear %d wall(s) along path:\n", cost)
	for _, idx := range path {
		x, y := gg.Coordinate(idx)
		fmt.Printf("(%d,%d) ", x, y)
	}
	// Output:
	// clear 1 wall(s) along path:
	// (0,0) (1,1) (2,0) (3,1) (4,0)
}
