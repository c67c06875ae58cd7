// Package traverse provides neighbor generation, path reconstruction and the
// per-run expansion recorder used by every search algorithm.
package traverse

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Directions is the fixed neighbor order: up, down, left, right.
// Changing it changes every exploration sequence in the module.
var Directions = [4]grid.Coord{
	{Row: -1, Col: 0}, // up
	{Row: 1, Col: 0},  // down
	{Row: 0, Col: -1}, // left
	{Row: 0, Col: 1},  // right
}

// Neighbors returns the traversable 4-connected neighbors of c in
// Directions order. Out-of-range and obstacle cells are skipped.
// Complexity: O(1).
func Neighbors(v grid.View, c grid.Coord) []grid.Coord {
	out := make([]grid.Coord, 0, len(Directions))
	for _, d := range Directions {
		n := c.Add(d)
		if v.Traversable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Validate checks the invocation preconditions shared by all algorithms.
// It runs before any frontier is initialized.
func Validate(v grid.View, start, goal grid.Coord) error {
	if v == nil {
		return ErrNilGrid
	}
	if !v.InBounds(start) {
		return fmt.Errorf("%w (%s)", ErrStartOutOfBounds, start)
	}
	if !v.InBounds(goal) {
		return fmt.Errorf("%w (%s)", ErrGoalOutOfBounds, goal)
	}
	if !v.Traversable(start) {
		return fmt.Errorf("%w (%s)", ErrStartBlocked, start)
	}
	if !v.Traversable(goal) {
		return fmt.Errorf("%w (%s)", ErrGoalBlocked, goal)
	}

	return nil
}

// PathTo reconstructs start→goal from a predecessor map in which prev[c] is
// the cell c was reached from. start has no entry. Returns an empty slice
// when goal was never reached.
// Complexity: O(len(path)).
func PathTo(prev map[grid.Coord]grid.Coord, start, goal grid.Coord) []grid.Coord {
	if goal == start {
		return []grid.Coord{start}
	}
	if _, ok := prev[goal]; !ok {
		return []grid.Coord{}
	}

	// build reversed path; the bound guards against a malformed map
	path := []grid.Coord{goal}
	for cur := goal; cur != start && len(path) <= len(prev)+1; {
		p, ok := prev[cur]
		if !ok {
			return []grid.Coord{}
		}
		path = append(path, p)
		cur = p
	}
	if path[len(path)-1] != start {
		return []grid.Coord{}
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Recorder collects the expansion order of one run and enforces the
// OnVisit hook and MaxExpansions cap. Each algorithm owns one per call.
type Recorder struct {
	opts Options
	res  *Result
}

// NewRecorder prepares a Recorder; capacity is a hint for Visited.
func NewRecorder(opts Options, capacity int) *Recorder {
	return &Recorder{
		opts: opts,
		res: &Result{
			Path:    []grid.Coord{},
			Visited: make([]grid.Coord, 0, capacity),
			State:   Initialized,
		},
	}
}

// Begin moves the run to Running.
func (r *Recorder) Begin() { r.res.State = Running }

// Discover reports that c entered the frontier from from.
func (r *Recorder) Discover(c, from grid.Coord) { r.opts.OnDiscover(c, from) }

// Expand appends c to Visited and calls OnVisit.
// Returns ErrExpansionLimit if the cap is already used up, or the wrapped
// hook error.
func (r *Recorder) Expand(c grid.Coord) error {
	if r.opts.MaxExpansions > 0 && len(r.res.Visited) >= r.opts.MaxExpansions {
		return fmt.Errorf("%w (%d) before expanding %s", ErrExpansionLimit, r.opts.MaxExpansions, c)
	}
	r.res.Visited = append(r.res.Visited, c)
	if err := r.opts.OnVisit(c); err != nil {
		return fmt.Errorf("traverse: OnVisit error at %s: %w", c, err)
	}

	return nil
}

// Succeed finalizes a run that expanded goal.
func (r *Recorder) Succeed(prev map[grid.Coord]grid.Coord, start, goal grid.Coord) *Result {
	r.res.Path = PathTo(prev, start, goal)
	r.res.State = Succeeded

	return r.res
}

// Exhaust finalizes a run whose frontier emptied.
func (r *Recorder) Exhaust() *Result {
	r.res.Path = []grid.Coord{}
	r.res.State = Exhausted

	return r.res
}

// Partial returns the Result as it stands, for runs aborted by an error.
func (r *Recorder) Partial() *Result { return r.res }
