package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleAStar shows the heuristic keeping the search on the straight row:
// only the five cells of row 2 are expanded.
func ExampleAStar() {
	g, _ := grid.New(5, 5)
	_ = g.SetStart(grid.C(2, 0))
	_ = g.SetGoal(grid.C(2, 4))

	res, err := astar.AStar(g.Snapshot(), grid.C(2, 0), grid.C(2, 4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", res.Path)
	fmt.Println("expanded:", len(res.Visited))
	// Output:
	// path: [2,0 2,1 2,2 2,3 2,4]
	// expanded: 5
}

// ExampleManhattan prints the heuristic between two cells.
func ExampleManhattan() {
	fmt.Println(astar.Manhattan(grid.C(0, 4), grid.C(3, 1)))
	// Output: 6
}
