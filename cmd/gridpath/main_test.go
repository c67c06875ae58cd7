package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/config"
)

// cli runs the command line in an isolated environment.
type cli struct {
	t       *testing.T
	cfgPath string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	dir := t.TempDir()
	for _, key := range []string{
		config.EnvRows, config.EnvCols, config.EnvAlgorithm, config.EnvLogLevel,
		config.EnvNoColor, config.EnvPlaybackDelay,
	} {
		t.Setenv(key, "")
	}
	t.Setenv(config.EnvHistoryPath, filepath.Join(dir, "history"))

	return &cli{t: t, cfgPath: filepath.Join(dir, "config.toml")}
}

func (c *cli) exec(stdin string, args ...string) (code int, stdout, stderr string) {
	c.t.Helper()
	var out, errOut bytes.Buffer
	args = append([]string{"--config", c.cfgPath}, args...)
	code = execute(context.Background(), args, strings.NewReader(stdin), &out, &errOut)

	return code, out.String(), errOut.String()
}

const detourArgs = `--rows=5 --cols=5 --goal=0,4 --obstacles=0,1;0,2;0,3`

func split(s string) []string { return strings.Fields(s) }

func TestRun_Detour(t *testing.T) {
	c := newCLI(t)
	for _, alg := range []string{"bfs", "dijkstra", "astar"} {
		code, out, errOut := c.exec("", append([]string{"run", "-a", alg}, split(detourArgs)...)...)
		require.Equal(t, 0, code, errOut)
		assert.Contains(t, out, alg+": path of 6 steps")
		assert.Contains(t, out, "S###G")
	}
}

func TestRun_NoPath(t *testing.T) {
	c := newCLI(t)
	maze := "S....\n..###\n..#G#\n..###\n.....\n"
	code, out, errOut := c.exec(maze, "run", "--grid", "-", "-a", "dfs")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "No path found")
}

func TestRun_InvalidConfiguration(t *testing.T) {
	c := newCLI(t)
	code, _, errOut := c.exec("", "run", "--rows", "3", "--cols", "3", "--start", "5,5")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid grid configuration")

	code, _, errOut = c.exec("", "run", "--grid", "-")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid grid configuration")

	code, _, errOut = c.exec("", "run", "-a", "greedy")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown algorithm")

	code, _, errOut = c.exec("", "run", "--output", "xml")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "--output")
}

// TestRun_DefaultEndpoints: defaults fill only cells the flags left Empty.
func TestRun_DefaultEndpoints(t *testing.T) {
	c := newCLI(t)

	code, out, errOut := c.exec("", "run", "--rows", "3", "--cols", "3", "--start", "2,2", "--goal", "0,0")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "path of 4 steps")

	code, out, errOut = c.exec("", "run", "--rows", "3", "--cols", "3", "--start", "1,1")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "path of 2 steps")

	code, _, errOut = c.exec("", "run", "--rows", "3", "--cols", "3", "--start", "2,2")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "default goal 2,2 is start; pass --goal")

	code, _, errOut = c.exec("", "run", "--rows", "3", "--cols", "3", "--obstacles", "0,0")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "default start 0,0 is obstacle; pass --start")
}

func TestRun_JSONAndYAML(t *testing.T) {
	c := newCLI(t)
	code, out, errOut := c.exec("", append([]string{"run", "-o", "json"}, split(detourArgs)...)...)
	require.Equal(t, 0, code, errOut)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "bfs", rec["algorithm"])
	assert.EqualValues(t, 6, rec["path_length"])
	assert.Equal(t, "0,1;0,2;0,3", rec["obstacles"])

	code, out, errOut = c.exec("", append([]string{"run", "-o", "yaml", "-a", "a*"}, split(detourArgs)...)...)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "algorithm: astar")
	assert.Contains(t, out, "path_length: 6")
}

func TestRun_Animate(t *testing.T) {
	c := newCLI(t)
	t.Setenv(config.EnvPlaybackDelay, "0s")
	code, out, errOut := c.exec("", "run", "--rows", "1", "--cols", "3", "--animate")
	require.Equal(t, 0, code, errOut)
	// 3 expansion frames and 3 path frames
	assert.Equal(t, 6, strings.Count(out, "S"))
	assert.Contains(t, out, "S*G")
}

func TestHistoryLifecycle(t *testing.T) {
	c := newCLI(t)
	code, _, errOut := c.exec("", append([]string{"run", "--save", "-a", "dijkstra"}, split(detourArgs)...)...)
	require.Equal(t, 0, code, errOut)
	id := regexp.MustCompile(`run-[A-Za-z0-9]{10}`).FindString(errOut)
	require.NotEmpty(t, id, "saved id is logged: %s", errOut)

	code, out, errOut := c.exec("", "history", "list")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "dijkstra")

	code, out, errOut = c.exec("", "history", "show", id)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Length:      6")
	assert.Contains(t, out, "S###G\n*****")

	exportPath := filepath.Join(t.TempDir(), "runs.jsonl")
	code, _, errOut = c.exec("", "history", "export", "--file", exportPath)
	require.Equal(t, 0, code, errOut)
	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))

	code, out, errOut = c.exec("", "history", "delete", id)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Deleted "+id)

	code, _, errOut = c.exec("", "history", "show", id)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "not found")

	code, out, errOut = c.exec("", "history", "import", exportPath)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Imported 1 runs")
}

func TestRace(t *testing.T) {
	c := newCLI(t)
	code, out, errOut := c.exec("", append([]string{"race"}, split(detourArgs)...)...)
	require.Equal(t, 0, code, errOut)
	for _, name := range []string{"bfs", "dfs", "dijkstra", "astar"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Fewest expansions: astar")

	code, out, errOut = c.exec("", "race", "--algorithms", "bfs,dfs", "-o", "json")
	require.Equal(t, 0, code, errOut)
	var recs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 2)
	assert.Equal(t, "dfs", recs[1]["algorithm"])
}

func TestConfig(t *testing.T) {
	c := newCLI(t)
	code, out, errOut := c.exec("", "config", "init")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Wrote")

	code, _, _ = c.exec("", "config", "init")
	assert.Equal(t, 1, code, "init refuses to overwrite")

	t.Setenv(config.EnvRows, "7")
	code, out, errOut = c.exec("", "config", "show")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "rows = 7")
	assert.Contains(t, out, `algorithm = "bfs"`)
	assert.Contains(t, out, `playback_delay = "60ms"`)
}

func TestMetricsFile(t *testing.T) {
	c := newCLI(t)
	path := filepath.Join(t.TempDir(), "gridpath.prom")
	code, _, errOut := c.exec("", append([]string{"--metrics-file", path, "run"}, split(detourArgs)...)...)
	require.Equal(t, 0, code, errOut)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `gridpath_search_runs_total{algorithm="bfs",outcome="found"} 1`)
}

func TestLogLevelWarningAlias(t *testing.T) {
	c := newCLI(t)
	code, _, errOut := c.exec("", append([]string{"--log-level", "warning", "run"}, split(detourArgs)...)...)
	require.Equal(t, 0, code, errOut)
	assert.NotContains(t, errOut, "Error:")
}

// TestMetricsFile_Errors: runs cut short by the expansion cap are counted
// as errors by run and race, and the textfile is written despite the failure.
func TestMetricsFile_Errors(t *testing.T) {
	c := newCLI(t)
	dir := t.TempDir()

	runPath := filepath.Join(dir, "run.prom")
	code, _, errOut := c.exec("", append([]string{"--metrics-file", runPath, "run", "--max-expansions", "2"}, split(detourArgs)...)...)
	require.Equal(t, 1, code)
	assert.Contains(t, errOut, "expansion")
	data, err := os.ReadFile(runPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `gridpath_search_runs_total{algorithm="bfs",outcome="error"} 1`)

	racePath := filepath.Join(dir, "race.prom")
	code, _, _ = c.exec("", append([]string{"--metrics-file", racePath, "race", "--max-expansions", "3"}, split(detourArgs)...)...)
	require.Equal(t, 1, code)
	data, err = os.ReadFile(racePath)
	require.NoError(t, err)
	for _, alg := range []string{"bfs", "dfs", "dijkstra", "astar"} {
		assert.Contains(t, string(data), `gridpath_search_runs_total{algorithm="`+alg+`",outcome="error"} 1`)
	}
}
