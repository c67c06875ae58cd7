// Package bfs provides breadth-first search over a grid.View.
package bfs

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/traverse"
)

// walker encapsulates mutable BFS state for a single call.
type walker struct {
	view       grid.View
	start      grid.Coord
	goal       grid.Coord
	queue      []grid.Coord
	discovered map[grid.Coord]bool
	prev       map[grid.Coord]grid.Coord
	rec        *traverse.Recorder
}

// BFS runs breadth-first search on v from start to goal.
// Returns a traverse.ErrInvalidInvocation error for bad coordinates before
// anything is explored, ErrOptionViolation for bad options, and
// ErrExpansionLimit or a wrapped hook error (with the partial Result) when a
// run is cut short. An unreachable goal is not an error.
func BFS(v grid.View, start, goal grid.Coord, opts ...traverse.Option) (*traverse.Result, error) {
	o, err := traverse.Build(opts...)
	if err != nil {
		return nil, err
	}
	if err = traverse.Validate(v, start, goal); err != nil {
		return nil, err
	}

	n := v.Rows() * v.Cols()
	w := &walker{
		view:       v,
		start:      start,
		goal:       goal,
		queue:      make([]grid.Coord, 0, n),
		discovered: make(map[grid.Coord]bool, n),
		prev:       make(map[grid.Coord]grid.Coord, n),
		rec:        traverse.NewRecorder(o, n),
	}
	w.rec.Begin()

	// Seed queue with start (no predecessor)
	w.enqueue(start, start)

	return w.loop()
}

// enqueue marks c discovered, records its predecessor and appends it.
func (w *walker) enqueue(c, from grid.Coord) {
	w.discovered[c] = true
	if c != from {
		w.prev[c] = from
	}
	w.rec.Discover(c, from)
	w.queue = append(w.queue, c)
}

// loop processes the queue until goal, exhaustion, or error.
func (w *walker) loop() (*traverse.Result, error) {
	for len(w.queue) > 0 {
		c := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.rec.Expand(c); err != nil {
			return w.rec.Partial(), err
		}
		if c == w.goal {
			return w.rec.Succeed(w.prev, w.start, w.goal), nil
		}
		for _, nbr := range traverse.Neighbors(w.view, c) {
			if !w.discovered[nbr] {
				w.enqueue(nbr, c)
			}
		}
	}

	return w.rec.Exhaust(), nil
}
