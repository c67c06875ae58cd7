// Package dfs implements depth-first search on a grid.View.
package dfs

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/traverse"
)

// frame is one stack entry: a cell and the cell that pushed it.
type frame struct {
	at   grid.Coord
	from grid.Coord
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	view    grid.View                 // read-only grid
	start   grid.Coord                // root of the DFS tree
	goal    grid.Coord                // target cell
	stack   []frame                   // LIFO frontier
	visited map[grid.Coord]bool       // expanded cells
	prev    map[grid.Coord]grid.Coord // DFS tree parent links
	rec     *traverse.Recorder        // result collector
}

// DFS performs depth-first search on v from start towards goal.
// Returns the Result, or an error for invalid input, options, the expansion
// cap, or a hook abort (the last two with the partial Result).
func DFS(v grid.View, start, goal grid.Coord, opts ...traverse.Option) (*traverse.Result, error) {
	// 1. Apply options
	o, err := traverse.Build(opts...)
	if err != nil {
		return nil, err
	}

	// 2. Validate invocation before any frontier exists
	if err = traverse.Validate(v, start, goal); err != nil {
		return nil, err
	}

	// 3. Initialize walker with capacity hints
	n := v.Rows() * v.Cols()
	w := &dfsWalker{
		view:    v,
		start:   start,
		goal:    goal,
		stack:   make([]frame, 0, n),
		visited: make(map[grid.Coord]bool, n),
		prev:    make(map[grid.Coord]grid.Coord, n),
		rec:     traverse.NewRecorder(o, n),
	}
	w.rec.Begin()
	w.push(start, start)

	// 4. Traverse
	return w.traverse()
}

// push adds c to the stack, reached from from.
func (w *dfsWalker) push(c, from grid.Coord) {
	w.rec.Discover(c, from)
	w.stack = append(w.stack, frame{at: c, from: from})
}

// traverse pops until the goal is expanded or the stack is empty.
func (w *dfsWalker) traverse() (*traverse.Result, error) {
	for len(w.stack) > 0 {
		// 1. Pop the most recently pushed frame
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// 2. Discard frames for cells reached earlier by another branch
		if w.visited[top.at] {
			continue
		}

		// 3. Mark visited and link to the DFS tree
		w.visited[top.at] = true
		if top.at != top.from {
			w.prev[top.at] = top.from
		}
		if err := w.rec.Expand(top.at); err != nil {
			return w.rec.Partial(), err
		}
		if top.at == w.goal {
			return w.rec.Succeed(w.prev, w.start, w.goal), nil
		}

		// 4. Push unvisited neighbors; the last pushed is explored next
		for _, nbr := range traverse.Neighbors(w.view, top.at) {
			if !w.visited[nbr] {
				w.push(nbr, top.at)
			}
		}
	}

	return w.rec.Exhaust(), nil
}
