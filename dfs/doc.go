// Package dfs implements depth-first search over a grid.View.
//
// DFS gives no shortest-path guarantee. It follows one branch until it dead
// ends, then backtracks, which produces the long "winding" paths it is known
// for.
//
// Key features:
//   - Explicit LIFO stack, no recursion, so grid size never threatens the
//     goroutine stack.
//   - Neighbors are pushed in traverse.Directions order (up, down, left,
//     right), so the last one pushed (right) is the first one explored.
//   - A cell is marked visited when popped; entries for already-visited cells
//     are discarded. This guarantees termination on any finite grid, cycles
//     included, and keeps Result.Visited free of duplicates.
//   - Each stack entry remembers the cell that pushed it; that cell becomes
//     the predecessor when the entry is expanded, so Path follows the actual
//     DFS tree.
//   - Goal popped = Succeeded; empty stack = Exhausted.
//
// Complexity:
//
//   - Time:   O(V) expansions, O(4V) pushes (V = rows×cols).
//   - Memory: O(V) for the stack, visited set and predecessor map.
//
// Options: every traverse.Option.
//
// Errors:
//
//   - traverse.ErrInvalidInvocation family for bad start/goal.
//   - traverse.ErrOptionViolation, traverse.ErrExpansionLimit.
//   - any error returned by OnVisit, wrapped.
package dfs
