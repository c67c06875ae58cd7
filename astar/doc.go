// Package astar implements A* search on a grid.View with the Manhattan
// distance heuristic.
//
// What:
//
//   - Priority frontier ordered by f = g + h, where g is the accumulated cost
//     from start (unit steps, as in package dijkstra) and h = Manhattan(c, goal).
//   - Ties on f go to the lower g, then to insertion order (which follows
//     traverse.Directions).
//   - Relaxation and termination mirror Dijkstra: strict improvement only,
//     lazy decrease-key, goal popped = Succeeded, empty frontier = Exhausted.
//
// Why:
//
//   - Manhattan distance never overestimates the remaining cost on a
//     4-connected uniform-cost grid (admissible) and changes by at most one
//     per step (consistent), so the first time goal is popped its path is
//     optimal and no settled cell ever needs reopening.
//   - The heuristic steers expansion toward the goal: on open ground A*
//     settles far fewer cells than BFS or Dijkstra for the same path length.
//
// Complexity:
//
//   - Time:   O(V log V) worst case, V = rows×cols.
//   - Memory: O(V).
//
// Errors: the traverse sentinels and wrapped OnVisit errors.
package astar
