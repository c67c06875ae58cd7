// Package dijkstra implements uniform-cost search (Dijkstra's algorithm) on a
// grid.View.
//
// Every move to one of the four neighbors costs 1. With uniform weights the
// resulting path length equals BFS's, but the implementation is the general
// one: a priority frontier ordered by accumulated cost from start.
//
// Rules:
//
//	– Frontier: min-heap on accumulated cost g; equal-cost entries leave in
//	  insertion order, which follows traverse.Directions.
//	– Relaxation: a neighbor's cost and predecessor are replaced only by a
//	  strictly cheaper path ("<", never "≤").
//	– Lazy decrease-key: improved cells are pushed again; stale entries are
//	  skipped when popped because the cell is already settled.
//	– Termination: goal popped (Succeeded) or frontier empty (Exhausted).
//	– Result.Visited is the order cells were settled.
//
// Complexity:
//
//	– Time:  O(V log V)   where V = rows×cols (each cell pushes at most 4 entries).
//	– Space: O(V)         cost map, predecessor map, settled set, heap.
//
// Errors: the traverse sentinels (invalid invocation, option violation,
// expansion limit) and wrapped OnVisit errors.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(snap, start, goal)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Length(), res.Path)
package dijkstra
