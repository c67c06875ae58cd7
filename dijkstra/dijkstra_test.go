// Package dijkstra_test contains unit tests for the uniform-cost search.
// They cover input validation, the settle order, the strict-improvement
// relaxation rule, and the exhaustive no-path outcome.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/traverse"
)

func parse(t *testing.T, text string) *grid.Snapshot {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)

	return g.Snapshot()
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	snap := parse(t, "..\n.#")

	_, err := dijkstra.Dijkstra(nil, grid.C(0, 0), grid.C(0, 1))
	assert.ErrorIs(t, err, traverse.ErrNilGrid)

	_, err = dijkstra.Dijkstra(snap, grid.C(0, 0), grid.C(1, 1))
	assert.ErrorIs(t, err, traverse.ErrGoalBlocked)

	_, err = dijkstra.Dijkstra(snap, grid.C(0, -1), grid.C(0, 1))
	assert.ErrorIs(t, err, traverse.ErrStartOutOfBounds)

	_, err = dijkstra.Dijkstra(snap, grid.C(0, 0), grid.C(0, 1), traverse.WithMaxExpansions(-2))
	assert.ErrorIs(t, err, traverse.ErrOptionViolation)
}

// ------------------------------------------------------------------------
// 2. Settle order and paths
// ------------------------------------------------------------------------

// TestDijkstra_UniformMatchesBFS: with unit costs and FIFO ties, the settle
// order is exactly BFS's dequeue order.
func TestDijkstra_UniformMatchesBFS(t *testing.T) {
	snap := parse(t, "S..#.\n.#...\n.#.#.\n...#G")
	start, goal := grid.C(0, 0), grid.C(3, 4)

	want, err := bfs.BFS(snap, start, goal)
	require.NoError(t, err)
	got, err := dijkstra.Dijkstra(snap, start, goal)
	require.NoError(t, err)

	assert.Equal(t, want.Visited, got.Visited)
	assert.Equal(t, want.Path, got.Path)
	assert.Equal(t, traverse.Succeeded, got.State)
}

// TestDijkstra_Detour covers the walled-row scenario (6 edges).
func TestDijkstra_Detour(t *testing.T) {
	snap := parse(t, "S###G\n.....\n.....\n.....\n.....")
	res, err := dijkstra.Dijkstra(snap, grid.C(0, 0), grid.C(0, 4))
	require.NoError(t, err)
	assert.Equal(t, 6, res.Length())
	assert.Equal(t, []grid.Coord{grid.C(0, 0), grid.C(1, 0), grid.C(1, 1), grid.C(1, 2), grid.C(1, 3), grid.C(1, 4), grid.C(0, 4)}, res.Path)
}

// TestDijkstra_FirstDiscoveryKept: (1,1) is offered by (1,0) and then by
// (0,1) at the same cost; the strict "<" keeps the first predecessor.
func TestDijkstra_FirstDiscoveryKept(t *testing.T) {
	snap := parse(t, "..\n..")
	var froms []grid.Coord
	res, err := dijkstra.Dijkstra(snap, grid.C(0, 0), grid.C(1, 1),
		traverse.WithOnDiscover(func(c, from grid.Coord) {
			if c == grid.C(1, 1) {
				froms = append(froms, from)
			}
		}))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{grid.C(1, 0)}, froms, "equal-cost offer must not be recorded")
	assert.Equal(t, []grid.Coord{grid.C(0, 0), grid.C(1, 0), grid.C(1, 1)}, res.Path)
}

// ------------------------------------------------------------------------
// 3. Edge cases
// ------------------------------------------------------------------------

func TestDijkstra_StartIsGoal(t *testing.T) {
	snap := parse(t, "...")
	res, err := dijkstra.Dijkstra(snap, grid.C(0, 2), grid.C(0, 2))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{grid.C(0, 2)}, res.Path)
	assert.Equal(t, []grid.Coord{grid.C(0, 2)}, res.Visited)
}

func TestDijkstra_Unreachable(t *testing.T) {
	snap := parse(t, "S.#G\n..#.\n###.")
	start := grid.C(0, 0)
	res, err := dijkstra.Dijkstra(snap, start, grid.C(0, 3))
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.Equal(t, traverse.Exhausted, res.State)
	assert.ElementsMatch(t, grid.Region(snap, start), res.Visited)
}

func TestDijkstra_ExpansionCap(t *testing.T) {
	snap := parse(t, "......")
	res, err := dijkstra.Dijkstra(snap, grid.C(0, 0), grid.C(0, 5), traverse.WithMaxExpansions(2))
	require.ErrorIs(t, err, traverse.ErrExpansionLimit)
	assert.Equal(t, []grid.Coord{grid.C(0, 0), grid.C(0, 1)}, res.Visited)
}
