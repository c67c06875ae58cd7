// Package grid provides the mutable Grid owned by the caller and the
// immutable Snapshot handed to search algorithms.
//
// Cells are stored row-major in a flat slice; index(c) = Row*cols + Col.
package grid

// cells is the storage shared by Grid and Snapshot. Its methods are the
// read-only half of the model and are promoted into both types.
type cells struct {
	rows, cols int
	roles      []Role
	start      Coord
	goal       Coord
	hasStart   bool
	hasGoal    bool
}

// Rows returns the number of rows.
func (g *cells) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *cells) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *cells) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Role returns the role held by c, or ErrOutOfBounds.
// Complexity: O(1).
func (g *cells) Role(c Coord) (Role, error) {
	if !g.InBounds(c) {
		return Empty, ErrOutOfBounds
	}

	return g.roles[g.index(c)], nil
}

// Traversable reports whether c is in bounds and not an Obstacle.
// Out-of-range coordinates are simply not traversable.
// Complexity: O(1).
func (g *cells) Traversable(c Coord) bool {
	return g.InBounds(c) && g.roles[g.index(c)] != Obstacle
}

// Start returns the start coordinate, if one is placed.
func (g *cells) Start() (Coord, bool) { return g.start, g.hasStart }

// Goal returns the goal coordinate, if one is placed.
func (g *cells) Goal() (Coord, bool) { return g.goal, g.hasGoal }

// Obstacles lists every Obstacle cell in row-major order.
// Complexity: O(rows×cols).
func (g *cells) Obstacles() []Coord {
	out := make([]Coord, 0)
	for i, r := range g.roles {
		if r == Obstacle {
			out = append(out, g.coordinate(i))
		}
	}

	return out
}

// index maps c to its row-major slot.
func (g *cells) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// coordinate converts a row-major slot back to a Coord.
func (g *cells) coordinate(i int) Coord {
	return Coord{Row: i / g.cols, Col: i % g.cols}
}

// clone deep-copies the storage.
func (g *cells) clone() cells {
	cp := *g
	cp.roles = make([]Role, len(g.roles))
	copy(cp.roles, g.roles)

	return cp
}

// Grid is the caller-owned, mutable Grid Model. It is not safe for
// concurrent mutation; take a Snapshot before handing it to a search.
type Grid struct {
	cells
}

// New constructs an all-Empty rows×cols grid.
// Returns ErrEmptyGrid if rows or cols is less than one.
// Complexity: O(rows×cols).
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}

	return &Grid{cells: cells{
		rows:  rows,
		cols:  cols,
		roles: make([]Role, rows*cols),
	}}, nil
}

// SetStart places the start at c. A previous start becomes Empty; whatever
// role c held before (goal or obstacle) is replaced.
func (g *Grid) SetStart(c Coord) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	g.ClearStart()
	g.vacate(c)
	g.roles[g.index(c)] = Start
	g.start, g.hasStart = c, true

	return nil
}

// SetGoal places the goal at c, with the same replacement rules as SetStart.
func (g *Grid) SetGoal(c Coord) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	g.ClearGoal()
	g.vacate(c)
	g.roles[g.index(c)] = Goal
	g.goal, g.hasGoal = c, true

	return nil
}

// SetObstacle marks c as an Obstacle, unsetting start or goal if c held one.
func (g *Grid) SetObstacle(c Coord) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	g.vacate(c)
	g.roles[g.index(c)] = Obstacle

	return nil
}

// Clear makes c Empty, unsetting start or goal if c held one.
func (g *Grid) Clear(c Coord) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	g.vacate(c)
	g.roles[g.index(c)] = Empty

	return nil
}

// ClearStart removes the start, if any.
func (g *Grid) ClearStart() {
	if g.hasStart {
		g.roles[g.index(g.start)] = Empty
		g.hasStart = false
	}
}

// ClearGoal removes the goal, if any.
func (g *Grid) ClearGoal() {
	if g.hasGoal {
		g.roles[g.index(g.goal)] = Empty
		g.hasGoal = false
	}
}

// Reset makes every cell Empty.
func (g *Grid) Reset() {
	for i := range g.roles {
		g.roles[i] = Empty
	}
	g.hasStart, g.hasGoal = false, false
}

// vacate drops start/goal bookkeeping for c before its role is overwritten.
func (g *Grid) vacate(c Coord) {
	switch g.roles[g.index(c)] {
	case Start:
		g.hasStart = false
	case Goal:
		g.hasGoal = false
	case Empty, Obstacle:
	}
}

// Snapshot returns an immutable deep copy of g.
// Complexity: O(rows×cols).
func (g *Grid) Snapshot() *Snapshot {
	return &Snapshot{cells: g.clone()}
}

// Snapshot is an immutable copy of a Grid. All its methods are read-only,
// so a Snapshot may be shared by any number of goroutines.
type Snapshot struct {
	cells
}

// Grid returns a fresh mutable Grid with the same contents as s.
func (s *Snapshot) Grid() *Grid {
	return &Grid{cells: s.clone()}
}

var (
	_ View = (*Grid)(nil)
	_ View = (*Snapshot)(nil)
)
