package record

import (
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Separator joins coordinates in the text form of Coords.
const Separator = ";"

// Coords is a coordinate list whose text form is "r,c;r,c".
// The empty list encodes as "".
type Coords []grid.Coord

// String renders the list in its text form.
func (cs Coords) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}

	return strings.Join(parts, Separator)
}

// MarshalText implements encoding.TextMarshaler.
func (cs Coords) MarshalText() ([]byte, error) {
	return []byte(cs.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (cs *Coords) UnmarshalText(b []byte) error {
	parsed, err := ParseCoords(string(b))
	if err != nil {
		return err
	}
	*cs = parsed

	return nil
}

// ParseCoords parses "r,c;r,c". Blank input and empty segments (a trailing
// separator) are allowed; a malformed segment returns grid.ErrBadCoord.
func ParseCoords(s string) (Coords, error) {
	out := Coords{}
	for _, part := range strings.Split(s, Separator) {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := grid.ParseCoord(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}
