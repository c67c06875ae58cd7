package record_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/record"
	"github.com/katalvlaran/gridpath/search"
)

var stamp = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func detour(t *testing.T) (*grid.Snapshot, search.Outcome) {
	t.Helper()
	g, err := grid.Parse("S###G\n.....\n.....")
	require.NoError(t, err)
	snap := g.Snapshot()
	out, err := search.Run(search.BFS, snap, grid.C(0, 0), grid.C(0, 4))
	require.NoError(t, err)

	return snap, out
}

func TestBuild(t *testing.T) {
	snap, out := detour(t)
	r, err := record.Build(out, snap, stamp.In(time.FixedZone("x", 3600)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(r.ID, record.IDPrefix))
	assert.Len(t, r.ID, len(record.IDPrefix)+record.IDLength)
	assert.Equal(t, "bfs", r.Algorithm)
	assert.Equal(t, 3, r.Rows)
	assert.Equal(t, 5, r.Cols)
	assert.Equal(t, grid.C(0, 0), r.Start)
	assert.Equal(t, grid.C(0, 4), r.Goal)
	assert.Equal(t, record.Coords{grid.C(0, 1), grid.C(0, 2), grid.C(0, 3)}, r.Obstacles)
	assert.Equal(t, 6, r.PathLength)
	assert.Equal(t, len(out.Result.Visited), r.Visited)
	assert.True(t, r.Found)
	assert.Equal(t, stamp, r.Timestamp)
	assert.Equal(t, time.UTC, r.Timestamp.Location())

	// the record owns its path
	out.Result.Path[0] = grid.C(9, 9)
	assert.Equal(t, grid.C(0, 0), r.Path[0])
}

func TestBuild_UniqueIDs(t *testing.T) {
	snap, out := detour(t)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		r, err := record.Build(out, snap, stamp)
		require.NoError(t, err)
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
}

func TestBuild_Errors(t *testing.T) {
	snap, out := detour(t)

	_, err := record.Build(search.Outcome{}, snap, stamp)
	assert.ErrorIs(t, err, record.ErrNoResult)

	_, err = record.Build(out, nil, stamp)
	assert.ErrorIs(t, err, record.ErrNoSnapshot)

	g, err := grid.New(2, 2)
	require.NoError(t, err)
	_, err = record.Build(out, g.Snapshot(), stamp)
	assert.ErrorIs(t, err, record.ErrNoEndpoints)
}

func TestBuild_NoPath(t *testing.T) {
	g, err := grid.Parse("S#G")
	require.NoError(t, err)
	snap := g.Snapshot()
	out, err := search.Run(search.DFS, snap, grid.C(0, 0), grid.C(0, 2))
	require.NoError(t, err)

	r, err := record.Build(out, snap, stamp)
	require.NoError(t, err)
	assert.False(t, r.Found)
	assert.Equal(t, 0, r.PathLength)
	assert.Empty(t, r.Path)
	assert.Equal(t, 1, r.Visited)
}

func TestRecord_JSONShape(t *testing.T) {
	snap, out := detour(t)
	r, err := record.Build(out, snap, stamp)
	require.NoError(t, err)

	b, err := json.Marshal(r)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "0,0", raw["start"])
	assert.Equal(t, "0,4", raw["goal"])
	assert.Equal(t, "0,1;0,2;0,3", raw["obstacles"])
	assert.Equal(t, "0,0;1,0;1,1;1,2;1,3;1,4;0,4", raw["path"])

	var back record.Record
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, *r, back)
}

func TestRecord_YAML(t *testing.T) {
	snap, out := detour(t)
	r, err := record.Build(out, snap, stamp)
	require.NoError(t, err)

	b, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(b), "start: 0,0")
	assert.Contains(t, string(b), "obstacles: 0,1;0,2;0,3")

	var back record.Record
	require.NoError(t, yaml.Unmarshal(b, &back))
	assert.Equal(t, r.Path, back.Path)
	assert.Equal(t, r.Start, back.Start)
	assert.Equal(t, r.Elapsed, back.Elapsed)
}

func TestRecord_Grid(t *testing.T) {
	snap, out := detour(t)
	r, err := record.Build(out, snap, stamp)
	require.NoError(t, err)

	g, err := r.Grid()
	require.NoError(t, err)
	assert.Equal(t, grid.Format(snap), grid.Format(g))

	alg, err := r.AlgorithmValue()
	require.NoError(t, err)
	assert.Equal(t, search.BFS, alg)
}

func TestValidate(t *testing.T) {
	snap, out := detour(t)
	good, err := record.Build(out, snap, stamp)
	require.NoError(t, err)
	require.NoError(t, record.Validate(good))

	mutate := map[string]func(r *record.Record){
		"id prefix":   func(r *record.Record) { r.ID = "bd-abcdefghij" },
		"algorithm":   func(r *record.Record) { r.Algorithm = "greedy" },
		"rows":        func(r *record.Record) { r.Rows = 0 },
		"timestamp":   func(r *record.Record) { r.Timestamp = time.Time{} },
		"start":       func(r *record.Record) { r.Start = grid.C(3, 0) },
		"goal":        func(r *record.Record) { r.Goal = grid.C(0, -1) },
		"path length": func(r *record.Record) { r.PathLength = 2 },
		"found":       func(r *record.Record) { r.Found = false },
	}
	for name, fn := range mutate {
		r := *good
		fn(&r)
		assert.ErrorIs(t, record.Validate(&r), record.ErrInvalid, name)
	}
	assert.ErrorIs(t, record.Validate(nil), record.ErrInvalid)
}
