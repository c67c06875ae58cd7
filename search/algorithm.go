package search

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned for an Algorithm value or name that does
// not denote one of the four strategies.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Algorithm selects a search strategy.
type Algorithm uint8

const (
	// BFS is breadth-first search; optimal in edge count.
	BFS Algorithm = iota
	// DFS is depth-first search; finds a path, not necessarily the shortest.
	DFS
	// Dijkstra is uniform-cost search; optimal.
	Dijkstra
	// AStar is A* with the Manhattan heuristic; optimal.
	AStar
)

// All returns every Algorithm in declaration order.
func All() []Algorithm {
	return []Algorithm{BFS, DFS, Dijkstra, AStar}
}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
}

// Valid reports whether a is one of the declared strategies.
func (a Algorithm) Valid() bool { return a <= AStar }

// Optimal reports whether a always returns a shortest path.
func (a Algorithm) Optimal() bool { return a == BFS || a == Dijkstra || a == AStar }

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseAlgorithm.
func (a *Algorithm) UnmarshalText(b []byte) error {
	parsed, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}

// ParseAlgorithm maps a name to an Algorithm. Matching ignores case and
// surrounding space; "a*" and "a-star" are accepted for AStar, "ucs" for
// Dijkstra.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "dijkstra", "ucs":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}
