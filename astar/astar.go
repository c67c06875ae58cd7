package astar

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/traverse"
)

// StepCost is the cost of moving to any 4-connected neighbor.
const StepCost = 1

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b grid.Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// AStar finds an optimal path from start to goal on v.
// Validation order and error semantics are those of dijkstra.Dijkstra.
func AStar(v grid.View, start, goal grid.Coord, opts ...traverse.Option) (*traverse.Result, error) {
	o, err := traverse.Build(opts...)
	if err != nil {
		return nil, err
	}
	if err = traverse.Validate(v, start, goal); err != nil {
		return nil, err
	}

	n := v.Rows() * v.Cols()
	s := &searcher{
		view:   v,
		start:  start,
		goal:   goal,
		g:      make(map[grid.Coord]int, n),
		prev:   make(map[grid.Coord]grid.Coord, n),
		closed: make(map[grid.Coord]bool, n),
		open:   traverse.NewQueue(byPriority, n),
		rec:    traverse.NewRecorder(o, n),
	}
	s.rec.Begin()
	s.g[start] = 0
	s.rec.Discover(start, start)
	s.open.Push(s.node(start, 0))

	return s.run()
}

// searcher holds the state of one A* run.
type searcher struct {
	view   grid.View
	start  grid.Coord
	goal   grid.Coord
	g      map[grid.Coord]int        // best-known cost from start
	prev   map[grid.Coord]grid.Coord // predecessor on that path
	closed map[grid.Coord]bool       // expanded cells
	open   *traverse.Queue[node]
	rec    *traverse.Recorder
}

// node is a frontier entry with its scores at push time.
type node struct {
	at grid.Coord
	g  int // cost from start
	f  int // g + heuristic
}

func (s *searcher) node(c grid.Coord, g int) node {
	return node{at: c, g: g, f: g + Manhattan(c, s.goal)}
}

// byPriority orders by f, then prefers the lower g.
func byPriority(a, b node) bool {
	if a.f != b.f {
		return a.f < b.f
	}

	return a.g < b.g
}

func (s *searcher) run() (*traverse.Result, error) {
	for s.open.Len() > 0 {
		cur := s.open.Pop()
		if s.closed[cur.at] {
			continue // stale entry
		}
		s.closed[cur.at] = true

		if err := s.rec.Expand(cur.at); err != nil {
			return s.rec.Partial(), err
		}
		if cur.at == s.goal {
			return s.rec.Succeed(s.prev, s.start, s.goal), nil
		}

		for _, nb := range traverse.Neighbors(s.view, cur.at) {
			if s.closed[nb] {
				continue
			}
			ng := s.g[cur.at] + StepCost
			if old, seen := s.g[nb]; seen && ng >= old {
				continue
			}
			s.g[nb] = ng
			s.prev[nb] = cur.at
			s.rec.Discover(nb, cur.at)
			s.open.Push(s.node(nb, ng))
		}
	}

	return s.rec.Exhaust(), nil
}
