package dijkstra

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/traverse"
)

// StepCost is the cost of moving to any 4-connected neighbor.
const StepCost = 1

// Dijkstra computes a minimum-cost path from start to goal on v.
//
// Preconditions and validation (in order):
//  1. Options must be valid (traverse.ErrOptionViolation).
//  2. v, start and goal must pass traverse.Validate.
//
// Returns the Result, or the partial Result with traverse.ErrExpansionLimit
// or a wrapped OnVisit error. An unreachable goal yields an Exhausted Result
// and a nil error.
func Dijkstra(v grid.View, start, goal grid.Coord, opts ...traverse.Option) (*traverse.Result, error) {
	// 1) Build and validate Options
	o, err := traverse.Build(opts...)
	if err != nil {
		return nil, err
	}

	// 2) Validate invocation
	if err = traverse.Validate(v, start, goal); err != nil {
		return nil, err
	}

	// 3) Prepare data structures
	n := v.Rows() * v.Cols()
	r := &runner{
		view:    v,
		start:   start,
		goal:    goal,
		dist:    make(map[grid.Coord]int, n),
		prev:    make(map[grid.Coord]grid.Coord, n),
		settled: make(map[grid.Coord]bool, n),
		pq:      traverse.NewQueue(byDist, n),
		rec:     traverse.NewRecorder(o, n),
	}

	// 4) Seed and run
	r.init()

	return r.process()
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	view    grid.View                 // read-only grid
	start   grid.Coord                // source cell
	goal    grid.Coord                // target cell
	dist    map[grid.Coord]int        // best-known cost from start
	prev    map[grid.Coord]grid.Coord // predecessor on the best-known path
	settled map[grid.Coord]bool       // cells whose cost is final
	pq      *traverse.Queue[nodeItem] // lazy min-heap
	rec     *traverse.Recorder        // result collector
}

// init puts start at cost zero on the heap.
func (r *runner) init() {
	r.rec.Begin()
	r.dist[r.start] = 0
	r.rec.Discover(r.start, r.start)
	r.pq.Push(nodeItem{at: r.start, dist: 0})
}

// process repeatedly settles the cheapest frontier cell and relaxes its
// neighbors until goal is settled or the heap is empty.
func (r *runner) process() (*traverse.Result, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-cost item.
		item := r.pq.Pop()

		// 2) Skip stale heap entries.
		if r.settled[item.at] {
			continue
		}

		// 3) Settle it.
		r.settled[item.at] = true
		if err := r.rec.Expand(item.at); err != nil {
			return r.rec.Partial(), err
		}
		if item.at == r.goal {
			return r.rec.Succeed(r.prev, r.start, r.goal), nil
		}

		// 4) Relax outgoing moves.
		r.relax(item.at)
	}

	return r.rec.Exhaust(), nil
}

// relax offers every unsettled neighbor of u the path through u and
// records it when strictly cheaper than the best known.
func (r *runner) relax(u grid.Coord) {
	du := r.dist[u]
	for _, v := range traverse.Neighbors(r.view, u) {
		if r.settled[v] {
			continue
		}
		nd := du + StepCost
		if old, seen := r.dist[v]; seen && nd >= old {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.rec.Discover(v, u)
		r.pq.Push(nodeItem{at: v, dist: nd})
	}
}

// nodeItem is a heap entry: a cell and its cost at push time.
type nodeItem struct {
	at   grid.Coord
	dist int
}

// byDist orders heap entries by ascending cost.
func byDist(a, b nodeItem) bool { return a.dist < b.dist }
