// Package render draws a grid with search overlays for the terminal and
// replays a Result as timed frames.
//
// Playback is purely cosmetic: frames are built from a finished Result, so
// the delay never influences what the engine computed.
package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/traverse"
)

// Overlay glyphs used on top of Empty cells.
const (
	GlyphVisited = 'o'
	GlyphPath    = '*'
)

// clearScreen homes the cursor and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// Palette.
var (
	colorStart    = lipgloss.Color("#2CD7C7")
	colorGoal     = lipgloss.Color("#F4D03F")
	colorObstacle = lipgloss.Color("#2C4A54")
	colorVisited  = lipgloss.Color("#157483")
	colorPath     = lipgloss.Color("#E74C3C")
	colorEmpty    = lipgloss.Color("#0C424E")
)

// styles holds one style per cell kind.
type styles struct {
	start, goal, obstacle, visited, path, empty lipgloss.Style
	frame                                       lipgloss.Style
}

var defaultStyles = styles{
	start:    lipgloss.NewStyle().Bold(true).Foreground(colorStart),
	goal:     lipgloss.NewStyle().Bold(true).Foreground(colorGoal),
	obstacle: lipgloss.NewStyle().Foreground(colorObstacle),
	visited:  lipgloss.NewStyle().Foreground(colorVisited),
	path:     lipgloss.NewStyle().Bold(true).Foreground(colorPath),
	empty:    lipgloss.NewStyle().Foreground(colorEmpty),
	frame: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorObstacle).
		Padding(0, 1),
}

// Renderer draws grids. The zero value renders with color.
type Renderer struct {
	// Plain disables styling: glyphs only, no border, no escape codes.
	Plain bool
}

// AutoPlain reports whether output to f should be plain, i.e. f is not a
// terminal.
func AutoPlain(f *os.File) bool {
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// Render draws v with visited and path overlays. Start, goal and obstacles
// are never overdrawn; path wins over visited.
func (r Renderer) Render(v grid.View, visited, path []grid.Coord) string {
	overlay := make(map[grid.Coord]rune, len(visited)+len(path))
	for _, c := range visited {
		overlay[c] = GlyphVisited
	}
	for _, c := range path {
		overlay[c] = GlyphPath
	}

	var b strings.Builder
	for row := 0; row < v.Rows(); row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < v.Cols(); col++ {
			c := grid.C(row, col)
			role, _ := v.Role(c)
			b.WriteString(r.cell(role, overlay[c]))
		}
	}
	if r.Plain {
		return b.String()
	}

	return defaultStyles.frame.Render(b.String())
}

func (r Renderer) cell(role grid.Role, mark rune) string {
	glyph := string(role.Glyph())
	style := defaultStyles.empty
	switch role {
	case grid.Start:
		style = defaultStyles.start
	case grid.Goal:
		style = defaultStyles.goal
	case grid.Obstacle:
		style = defaultStyles.obstacle
	case grid.Empty:
		switch mark {
		case GlyphPath:
			glyph, style = string(GlyphPath), defaultStyles.path
		case GlyphVisited:
			glyph, style = string(GlyphVisited), defaultStyles.visited
		}
	}
	if r.Plain {
		return glyph
	}

	return style.Render(glyph)
}

// Summary is a one-line description of res.
func (r Renderer) Summary(name string, res *traverse.Result, elapsed time.Duration) string {
	var line string
	if res.Found() {
		line = fmt.Sprintf("%s: path of %d steps, %d cells expanded, %s", name, res.Length(), len(res.Visited), elapsed)
	} else {
		line = fmt.Sprintf("%s: No path found, %d cells expanded, %s", name, len(res.Visited), elapsed)
	}
	if r.Plain {
		return line
	}
	if res.Found() {
		return defaultStyles.start.Render(line)
	}

	return defaultStyles.path.Render(line)
}

// Frames replays res: one frame per expansion, then one per path step.
func (r Renderer) Frames(v grid.View, res *traverse.Result) []string {
	frames := make([]string, 0, len(res.Visited)+len(res.Path))
	for i := 1; i <= len(res.Visited); i++ {
		frames = append(frames, r.Render(v, res.Visited[:i], nil))
	}
	for j := 1; j <= len(res.Path); j++ {
		frames = append(frames, r.Render(v, res.Visited, res.Path[:j]))
	}

	return frames
}

// Play writes frames to w, waiting delay between them. Styled output clears
// the screen before each frame; plain output separates frames with a blank
// line. It returns ctx.Err() if cancelled mid-playback.
func (r Renderer) Play(ctx context.Context, w io.Writer, frames []string, delay time.Duration) error {
	for i, f := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		switch {
		case !r.Plain:
			_, err = io.WriteString(w, clearScreen+f+"\n")
		case i > 0:
			_, err = io.WriteString(w, "\n"+f+"\n")
		default:
			_, err = io.WriteString(w, f+"\n")
		}
		if err != nil {
			return fmt.Errorf("render: write frame %d: %w", i, err)
		}
		if i == len(frames)-1 || delay <= 0 {
			continue
		}
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}

	return nil
}
