package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleDFS shows the characteristic non-shortest path: with the goal one
// step below the start, DFS still sweeps right along the top row first.
func ExampleDFS() {
	g, _ := grid.Parse(`
		S..
		G..
	`)
	start, _ := g.Start()
	goal, _ := g.Goal()

	res, err := dfs.DFS(g.Snapshot(), start, goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", res.Path)
	fmt.Println("edges:", res.Length())
	// Output:
	// path: [0,0 0,1 0,2 1,2 1,1 1,0]
	// edges: 5
}
