package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/traverse"
)

func snapshot(t *testing.T, text string) *grid.Snapshot {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)

	return g.Snapshot()
}

// TestDFS_Errors verifies that DFS rejects bad invocations.
func TestDFS_Errors(t *testing.T) {
	snap := snapshot(t, "#..\n...")
	_, err := dfs.DFS(snap, grid.C(0, 0), grid.C(1, 1))
	assert.ErrorIs(t, err, traverse.ErrStartBlocked)

	_, err = dfs.DFS(snap, grid.C(0, 1), grid.C(1, 7))
	assert.ErrorIs(t, err, traverse.ErrGoalOutOfBounds)

	_, err = dfs.DFS(nil, grid.C(0, 1), grid.C(1, 1))
	assert.ErrorIs(t, err, traverse.ErrNilGrid)
}

// TestDFS_LastNeighborFirst pins the winding order on an open 3×3 grid:
// right is pushed last, so DFS runs along the top row first.
func TestDFS_LastNeighborFirst(t *testing.T) {
	snap := snapshot(t, "...\n...\n...")
	res, err := dfs.DFS(snap, grid.C(0, 0), grid.C(2, 2))
	require.NoError(t, err)

	want := []grid.Coord{
		grid.C(0, 0), grid.C(0, 1), grid.C(0, 2), grid.C(1, 2), grid.C(1, 1), grid.C(1, 0), grid.C(2, 0), grid.C(2, 1), grid.C(2, 2),
	}
	assert.Equal(t, want, res.Visited)
	assert.Equal(t, want, res.Path, "every expansion lies on the winding path here")
	assert.Equal(t, 8, res.Length(), "DFS path is longer than the 4-edge optimum")
}

// TestDFS_CyclesTerminate runs on a ring with a hole and checks termination
// with no duplicate expansions.
//
//	. . . .
//	. # # .
//	. . . .
func TestDFS_CyclesTerminate(t *testing.T) {
	snap := snapshot(t, "....\n.##.\n....")
	res, err := dfs.DFS(snap, grid.C(0, 0), grid.C(2, 0))
	require.NoError(t, err)

	seen := make(map[grid.Coord]bool)
	for _, c := range res.Visited {
		require.False(t, seen[c], "duplicate expansion of %s", c)
		seen[c] = true
	}
	require.True(t, res.Found())
	assert.Equal(t, grid.C(0, 0), res.Path[0])
	assert.Equal(t, grid.C(2, 0), res.Path[len(res.Path)-1])
}

// TestDFS_EnclosedGoal explores start's whole component.
func TestDFS_EnclosedGoal(t *testing.T) {
	snap := snapshot(t, "....\n.###\n.#G.")
	start := grid.C(0, 0)
	res, err := dfs.DFS(snap, start, grid.C(2, 2))
	require.NoError(t, err)

	assert.Empty(t, res.Path)
	assert.Equal(t, traverse.Exhausted, res.State)
	assert.ElementsMatch(t, grid.Region(snap, start), res.Visited)
}

// TestDFS_StartIsGoal yields a single-cell path.
func TestDFS_StartIsGoal(t *testing.T) {
	snap := snapshot(t, "..\n..")
	res, err := dfs.DFS(snap, grid.C(0, 1), grid.C(0, 1))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{grid.C(0, 1)}, res.Path)
	assert.Equal(t, []grid.Coord{grid.C(0, 1)}, res.Visited)
}

// TestDFS_HookAbort propagates the hook error with the partial result.
func TestDFS_HookAbort(t *testing.T) {
	snap := snapshot(t, "...\n...")
	halt := errors.New("halt")
	calls := 0
	res, err := dfs.DFS(snap, grid.C(0, 0), grid.C(1, 0),
		traverse.WithOnVisit(func(grid.Coord) error {
			calls++
			if calls == 2 {
				return halt
			}
			return nil
		}))
	require.ErrorIs(t, err, halt)
	assert.Len(t, res.Visited, 2)
}

// TestDFS_Deterministic compares two identical runs.
func TestDFS_Deterministic(t *testing.T) {
	snap := snapshot(t, "S..#..\n.#.#.#\n.#...#\n...#.G")
	a, err := dfs.DFS(snap, grid.C(0, 0), grid.C(3, 5))
	require.NoError(t, err)
	b, err := dfs.DFS(snap, grid.C(0, 0), grid.C(3, 5))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
