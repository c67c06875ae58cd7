// Package traverse is the contract every gridpath search algorithm shares:
// the Result they return, the options they accept, the precondition check
// they run first, and the utilities they build on.
//
// What
//
//   - Result: Path (start→goal inclusive, empty when unreachable) and
//     Visited (expansion order, no duplicates).
//   - State: Initialized → Running → Succeeded | Exhausted.
//   - Neighbors: the traversable 4-connected neighbors of a cell in the fixed
//     order up, down, left, right. This order is the tie-breaker for BFS and
//     DFS and for equal-priority entries in Dijkstra and A*.
//   - PathTo: predecessor-map walk from goal back to start, reversed.
//   - Validate: rejects invalid invocations before any frontier exists.
//   - Queue: stable min-priority frontier (container/heap + insertion seq).
//
// Determinism
//
//	Nothing in a search iterates a Go map. Frontier order is a function of
//	the grid, start, goal and Directions only, so repeating a search on the
//	same snapshot reproduces Path and Visited exactly.
//
// Options
//
//   - DefaultOptions(): no hooks, no expansion cap.
//   - WithOnVisit(fn):       hook on every expansion; an error aborts the run.
//   - WithOnDiscover(fn):    hook when a cell first enters the frontier.
//   - WithMaxExpansions(n):  defensive cap on expansions (0 = unlimited).
//
// Errors
//
//   - ErrInvalidInvocation wraps ErrNilGrid, ErrStartOutOfBounds,
//     ErrGoalOutOfBounds, ErrStartBlocked, ErrGoalBlocked.
//   - ErrOptionViolation for a negative expansion cap.
//   - ErrExpansionLimit when the cap is hit; the partial Result is returned.
//
// "No path" is not an error: the Result is Exhausted with an empty Path.
package traverse
