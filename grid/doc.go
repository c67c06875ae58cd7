// Package grid is the Grid Model of gridpath: a fixed-size rows×cols
// arrangement of cells, each holding exactly one Role.
//
// What:
//
//   - Coord addresses a cell as (Row, Col), 0-indexed from the top-left.
//   - Role is a closed enumeration: Empty, Start, Goal, Obstacle.
//   - Grid is the caller-owned, mutable model. Its mutators keep the
//     rule "at most one Start, at most one Goal, one Role per cell".
//   - Snapshot is an immutable deep copy of a Grid, safe to share across
//     goroutines. Search algorithms read a Snapshot, never a live Grid.
//   - View is the read-only interface both satisfy; algorithms accept it.
//
// Why:
//
//   - Out-of-range probes answer "not traversable" instead of panicking, so
//     traversal code can test neighbors uniformly.
//   - Snapshot-passing removes shared mutable state between the owner of the
//     grid and any number of concurrent searches.
//
// Text form:
//
//	S..#.
//	.#.#.
//	...#G
//
//	'.' Empty, 'S' Start, 'G' Goal, '#' Obstacle. Parse reads it, Format writes it.
//
// Complexity:
//
//   - Role, InBounds, Traversable: O(1).
//   - Snapshot, Obstacles, Format: O(rows×cols).
//   - Region: O(rows×cols), Memory: O(rows×cols).
//
// Errors:
//
//   - ErrEmptyGrid: rows or cols < 1, or empty text.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrNonRectangular: text rows of differing lengths.
//   - ErrUnknownGlyph: text contains a character that is not a Role glyph.
//   - ErrDuplicateStart / ErrDuplicateGoal: text places a role twice.
//   - ErrBadCoord: a coordinate string is not "row,col".
package grid
