// Package search is the single entry point to the grid search engine.
//
// What:
//
//   - Algorithm names the four strategies: BFS, DFS, Dijkstra and AStar.
//   - Search dispatches one synchronous run on a grid.View.
//   - Run wraps Search with wall-clock timing into an Outcome.
//   - Race snapshots a Grid once and runs several algorithms side by side.
//
// Why:
//
//   - Callers (the CLI, a UI, tests) pick an algorithm by name at run time;
//     the per-algorithm packages stay free of any registry.
//   - Race compares strategies on identical input: every goroutine reads the
//     same immutable Snapshot, so results are independent of scheduling.
//
// Errors:
//
//   - ErrUnknownAlgorithm for an Algorithm outside the declared set.
//   - ErrNoStart / ErrNoGoal when Race is given a Grid without them.
//   - Everything the algorithm packages return, unchanged.
//
// Usage:
//
//	alg, _ := search.ParseAlgorithm("astar")
//	res, err := search.Search(alg, g.Snapshot(), start, goal)
//	if err != nil {
//	    // invalid invocation: fix the grid
//	}
//	if !res.Found() {
//	    // no path
//	}
package search
