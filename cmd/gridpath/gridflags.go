package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/record"
)

// gridFlags describes the grid a command searches on.
type gridFlags struct {
	file      string
	rows      int
	cols      int
	start     string
	goal      string
	obstacles string
}

func (f *gridFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.file, "grid", "", `read the grid from FILE in glyph form ('.', 'S', 'G', '#'); "-" reads stdin`)
	fl.IntVar(&f.rows, "rows", 0, "grid height (default from config)")
	fl.IntVar(&f.cols, "cols", 0, "grid width (default from config)")
	fl.StringVar(&f.start, "start", "", `start cell "row,col" (default 0,0)`)
	fl.StringVar(&f.goal, "goal", "", `goal cell "row,col" (default bottom-right)`)
	fl.StringVar(&f.obstacles, "obstacles", "", `obstacle cells "r,c;r,c"`)
}

// build assembles the grid. With --grid the file supplies the layout and
// --start, --goal and --obstacles are applied on top of it. A generated grid
// gets the default endpoints (top-left start, bottom-right goal) only after
// the explicit cells are placed, and only where the cell is still Empty.
func (f *gridFlags) build(a *app) (*grid.Grid, error) {
	var (
		g         *grid.Grid
		err       error
		generated bool
	)
	if f.file != "" {
		if g, err = f.readFile(a.in); err != nil {
			return nil, err
		}
	} else {
		rows, cols := a.cfg.Rows, a.cfg.Cols
		if f.rows != 0 {
			rows = f.rows
		}
		if f.cols != 0 {
			cols = f.cols
		}
		if g, err = grid.New(rows, cols); err != nil {
			return nil, fmt.Errorf("invalid grid configuration: %w", err)
		}
		generated = true
	}

	obstacles, err := record.ParseCoords(f.obstacles)
	if err != nil {
		return nil, fmt.Errorf("--obstacles: %w", err)
	}
	for _, c := range obstacles {
		if err = g.SetObstacle(c); err != nil {
			return nil, fmt.Errorf("invalid grid configuration: obstacle %s: %w", c, err)
		}
	}
	if err = place(f.start, "--start", g.SetStart); err != nil {
		return nil, err
	}
	if err = place(f.goal, "--goal", g.SetGoal); err != nil {
		return nil, err
	}
	if generated {
		if _, ok := g.Start(); !ok && f.start == "" {
			if err = fallback(g, grid.C(0, 0), "start", g.SetStart); err != nil {
				return nil, err
			}
		}
		if _, ok := g.Goal(); !ok && f.goal == "" {
			if err = fallback(g, grid.C(g.Rows()-1, g.Cols()-1), "goal", g.SetGoal); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// fallback places a default endpoint at c. An occupied c is reported rather
// than overwritten.
func fallback(g *grid.Grid, c grid.Coord, name string, set func(grid.Coord) error) error {
	role, err := g.Role(c)
	if err != nil {
		return fmt.Errorf("invalid grid configuration: default %s %s: %w", name, c, err)
	}
	if role != grid.Empty {
		return fmt.Errorf("invalid grid configuration: default %s %s is %s; pass --%s", name, c, role, name)
	}

	return set(c)
}

func (f *gridFlags) readFile(stdin io.Reader) (*grid.Grid, error) {
	var (
		data []byte
		err  error
	)
	if f.file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(f.file)
	}
	if err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	g, err := grid.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("invalid grid configuration: %w", err)
	}

	return g, nil
}

func place(text, flag string, set func(grid.Coord) error) error {
	if text == "" {
		return nil
	}
	c, err := grid.ParseCoord(text)
	if err != nil {
		return fmt.Errorf("%s: %w", flag, err)
	}
	if err = set(c); err != nil {
		return fmt.Errorf("invalid grid configuration: %s %s: %w", flag, c, err)
	}

	return nil
}

// endpoints returns the start and goal of g, or a configuration error.
func endpoints(g *grid.Grid) (grid.Coord, grid.Coord, error) {
	start, ok := g.Start()
	if !ok {
		return grid.Coord{}, grid.Coord{}, fmt.Errorf("invalid grid configuration: no start cell")
	}
	goal, ok := g.Goal()
	if !ok {
		return grid.Coord{}, grid.Coord{}, fmt.Errorf("invalid grid configuration: no goal cell")
	}

	return start, goal, nil
}
