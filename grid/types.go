// Package grid defines the coordinate, role and view types of the Grid Model,
// together with its sentinel errors.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrNonRectangular indicates text rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownGlyph indicates a character that does not name a Role.
	ErrUnknownGlyph = errors.New("grid: unknown cell glyph")
	// ErrDuplicateStart indicates more than one start cell.
	ErrDuplicateStart = errors.New("grid: more than one start cell")
	// ErrDuplicateGoal indicates more than one goal cell.
	ErrDuplicateGoal = errors.New("grid: more than one goal cell")
	// ErrBadCoord indicates a coordinate string not of the form "row,col".
	ErrBadCoord = errors.New("grid: coordinate must be \"row,col\"")
)

// Coord addresses one cell: Row counts down from the top, Col counts right
// from the left, both 0-indexed.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// String renders c as "row,col".
func (c Coord) String() string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

// MarshalText implements encoding.TextMarshaler using the "row,col" form.
func (c Coord) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for the "row,col" form.
func (c *Coord) UnmarshalText(b []byte) error {
	parsed, err := ParseCoord(string(b))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// ParseCoord parses "row,col" (surrounding spaces allowed).
// Negative components are accepted here; bounds are the grid's business.
func ParseCoord(s string) (Coord, error) {
	r, c, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}

	return Coord{Row: row, Col: col}, nil
}

// Role is the semantic tag of a cell. The set is closed; every switch over
// Role in this module handles all four values.
type Role uint8

const (
	// Empty is an open, unremarkable cell.
	Empty Role = iota
	// Start is where searches begin. At most one per grid.
	Start
	// Goal is where searches end. At most one per grid.
	Goal
	// Obstacle blocks movement.
	Obstacle
)

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case Empty:
		return "empty"
	case Start:
		return "start"
	case Goal:
		return "goal"
	case Obstacle:
		return "obstacle"
	default:
		return "role(" + strconv.Itoa(int(r)) + ")"
	}
}

// Glyph returns the single-character text form of r.
func (r Role) Glyph() byte {
	switch r {
	case Empty:
		return '.'
	case Start:
		return 'S'
	case Goal:
		return 'G'
	case Obstacle:
		return '#'
	default:
		return '?'
	}
}

// RoleFromGlyph maps a text glyph back to its Role.
func RoleFromGlyph(b byte) (Role, bool) {
	switch b {
	case '.':
		return Empty, true
	case 'S', 's':
		return Start, true
	case 'G', 'g':
		return Goal, true
	case '#':
		return Obstacle, true
	default:
		return Empty, false
	}
}

// View is read-only access to a grid. Implementations never panic on
// out-of-range coordinates.
type View interface {
	// Rows is the number of rows (height).
	Rows() int
	// Cols is the number of columns (width).
	Cols() int
	// InBounds reports whether c lies inside the grid.
	InBounds(c Coord) bool
	// Role returns the role at c, or ErrOutOfBounds.
	Role(c Coord) (Role, error)
	// Traversable reports whether c is in bounds and not an Obstacle.
	Traversable(c Coord) bool
}
