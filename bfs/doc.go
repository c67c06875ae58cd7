// Package bfs provides breadth-first search over a grid.View, returning a
// fewest-edges path from start to goal and the order cells were expanded.
//
// What
//
//   - Explore cells in non-decreasing edge distance from start.
//   - FIFO frontier seeded with start; neighbors come from
//     traverse.Neighbors in the fixed up, down, left, right order.
//   - A cell is marked discovered when enqueued, so it enters the queue once
//     and its predecessor is the first cell that reached it.
//   - Stops when goal is dequeued (Succeeded) or the queue empties (Exhausted).
//   - Result.Visited is dequeue order.
//
// Why
//
//   - Shortest path in edge count on unweighted 4-connected grids, O(V).
//   - The layer-by-layer "ripple" is the baseline every other algorithm in
//     gridpath is compared against.
//
// Determinism
//
//	The queue order depends only on the grid, start and traverse.Directions,
//	so two runs on the same snapshot produce identical Path and Visited.
//
// Complexity (V = rows×cols)
//
//   - Time:   O(V)   (each cell enqueued and expanded at most once)
//   - Memory: O(V)   (queue, discovered set, predecessor map)
//
// Usage
//
//	res, err := bfs.BFS(snap, start, goal)
//	if err != nil {
//	    // traverse.ErrInvalidInvocation family, ErrOptionViolation,
//	    // ErrExpansionLimit, or a wrapped OnVisit error
//	}
//	if !res.Found() {
//	    // no path: res.Visited is start's whole reachable region
//	}
//
// Options: every traverse.Option (WithOnVisit, WithOnDiscover, WithMaxExpansions).
package bfs
