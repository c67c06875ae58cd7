package grid

import (
	"fmt"
	"strings"
)

// Parse builds a Grid from glyph rows ('.', 'S', 'G', '#'), one row per line.
// Blank lines and surrounding whitespace are ignored.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownGlyph,
// ErrDuplicateStart or ErrDuplicateGoal for malformed input.
// Complexity: O(rows×cols).
func Parse(text string) (*Grid, error) {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(lines[0])
	for _, l := range lines {
		if len(l) != w {
			return nil, ErrNonRectangular
		}
	}

	g, err := New(len(lines), w)
	if err != nil {
		return nil, err
	}
	for row, l := range lines {
		for col := 0; col < w; col++ {
			role, ok := RoleFromGlyph(l[col])
			if !ok {
				return nil, fmt.Errorf("%w %q at %d,%d", ErrUnknownGlyph, l[col], row, col)
			}
			c := Coord{Row: row, Col: col}
			switch role {
			case Start:
				if g.hasStart {
					return nil, fmt.Errorf("%w: %s and %s", ErrDuplicateStart, g.start, c)
				}
				_ = g.SetStart(c)
			case Goal:
				if g.hasGoal {
					return nil, fmt.Errorf("%w: %s and %s", ErrDuplicateGoal, g.goal, c)
				}
				_ = g.SetGoal(c)
			case Obstacle:
				_ = g.SetObstacle(c)
			case Empty:
			}
		}
	}

	return g, nil
}

// Format renders v as glyph rows terminated by newlines; the inverse of Parse.
func Format(v View) string {
	var b strings.Builder
	b.Grow(v.Rows() * (v.Cols() + 1))
	for row := 0; row < v.Rows(); row++ {
		for col := 0; col < v.Cols(); col++ {
			r, _ := v.Role(Coord{Row: row, Col: col})
			b.WriteByte(r.Glyph())
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// String renders the grid in its text form.
func (g *Grid) String() string { return Format(g) }

// String renders the snapshot in its text form.
func (s *Snapshot) String() string { return Format(s) }
