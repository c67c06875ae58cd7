// Package gridpath is a small grid pathfinding engine: place a start, a goal
// and obstacles on a rectangular grid, pick an algorithm, and get back the
// path together with the order in which cells were explored.
//
// What is in the box?
//
//   - Grid model: mutable Grid, immutable Snapshot, text form ('.', 'S', 'G', '#')
//   - Traversals: BFS, DFS
//   - Shortest paths: Dijkstra, A* (Manhattan heuristic)
//   - One entry point: search.Search, timed search.Run, concurrent search.Race
//   - Around the engine: run records, a BadgerDB history, Prometheus metrics,
//     terminal rendering with playback, TOML configuration and a CLI
//
// Why gridpath?
//
//   - Deterministic – fixed neighbor order (up, down, left, right) and stable
//     tie-breaking, so the same grid always yields the same exploration
//   - Observable – every algorithm reports its expansion order and accepts
//     OnVisit / OnDiscover hooks and an expansion cap
//   - Safe to share – algorithms read a Snapshot and keep no state between
//     calls
//
// Layout:
//
//	grid/       Coord, Role, Grid, Snapshot, View, Parse/Format, Region
//	traverse/   Result, State, Options, Neighbors, PathTo, the priority Queue
//	bfs/ dfs/ dijkstra/ astar/  the four algorithms
//	search/     Algorithm enum and dispatch
//	record/     run records with "r,c;r,c" coordinate encoding
//	history/    BadgerDB store, JSONL export/import
//	metrics/    Prometheus collectors and textfile output
//	render/     lipgloss rendering and timed playback
//	config/     TOML + GRIDPATH_* environment settings
//	cmd/gridpath  the command line
//
// Quick ASCII example:
//
//	S # # # G        S # # # G
//	. . . . .   →    * * * * *
//	. . . . .        . . . . .
//
// BFS, Dijkstra and A* all return the same 6-step detour.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
