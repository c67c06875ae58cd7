// Package traverse provides the options, sentinel errors and result types
// shared by the bfs, dfs, dijkstra and astar packages.
package traverse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors shared by all search algorithms.
var (
	// ErrInvalidInvocation is the parent of every precondition failure.
	ErrInvalidInvocation = errors.New("traverse: invalid invocation")

	// ErrNilGrid is returned when the grid view is nil.
	ErrNilGrid = fmt.Errorf("%w: grid is nil", ErrInvalidInvocation)

	// ErrStartOutOfBounds is returned when start lies outside the grid.
	ErrStartOutOfBounds = fmt.Errorf("%w: start out of bounds", ErrInvalidInvocation)

	// ErrGoalOutOfBounds is returned when goal lies outside the grid.
	ErrGoalOutOfBounds = fmt.Errorf("%w: goal out of bounds", ErrInvalidInvocation)

	// ErrStartBlocked is returned when start sits on an obstacle.
	ErrStartBlocked = fmt.Errorf("%w: start is an obstacle", ErrInvalidInvocation)

	// ErrGoalBlocked is returned when goal sits on an obstacle.
	ErrGoalBlocked = fmt.Errorf("%w: goal is an obstacle", ErrInvalidInvocation)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrExpansionLimit is returned when MaxExpansions is reached before the
	// search terminates.
	ErrExpansionLimit = errors.New("traverse: expansion limit reached")
)

// State is the lifecycle stage of a single search run.
type State uint8

const (
	// Initialized: preconditions passed, frontier not yet seeded.
	Initialized State = iota
	// Running: frontier seeded and being expanded.
	Running
	// Succeeded: goal expanded; Path is non-empty.
	Succeeded
	// Exhausted: frontier emptied without reaching goal; Path is empty.
	Exhausted
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Result is the outcome of one search invocation. It is owned by the caller
// once returned and never touched again by the algorithm.
type Result struct {
	// Path runs from start to goal inclusive; empty when goal is unreachable.
	Path []grid.Coord
	// Visited lists coordinates in the order they were expanded.
	Visited []grid.Coord
	// State is Succeeded or Exhausted for a completed run, Running for a run
	// cut short by a hook error or the expansion cap.
	State State
}

// Found reports whether a path was found.
func (r *Result) Found() bool { return len(r.Path) > 0 }

// Length returns the number of edges on Path (0 when no path).
func (r *Result) Length() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*Options)

// Options holds the hooks and limits every algorithm honors.
type Options struct {
	// OnVisit is called on each expansion, after the coordinate is appended
	// to Result.Visited. Returning an error aborts the search.
	OnVisit func(c grid.Coord) error

	// OnDiscover is called when a coordinate enters the frontier, with the
	// coordinate it was reached from. start is discovered from itself.
	OnDiscover func(c, from grid.Coord)

	// MaxExpansions, if > 0, caps the number of expansions.
	// 0 disables the cap.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks and no expansion cap.
func DefaultOptions() Options {
	return Options{
		OnVisit:       func(grid.Coord) error { return nil },
		OnDiscover:    func(_, _ grid.Coord) {},
		MaxExpansions: 0,
	}
}

// Build applies opts over DefaultOptions and returns the first recorded
// option error, if any.
func Build(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithOnVisit registers a callback to run on each expansion.
func WithOnVisit(fn func(c grid.Coord) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnDiscover registers a callback to run when a cell enters the frontier.
func WithOnDiscover(fn func(c, from grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithMaxExpansions caps the number of expansions.
//
//	n > 0: at most n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
