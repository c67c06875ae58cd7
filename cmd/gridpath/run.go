package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/record"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/traverse"
)

type runFlags struct {
	grid          gridFlags
	algorithm     string
	animate       bool
	save          bool
	output        string
	maxExpansions int
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search for a path with one algorithm",
		Example: `  gridpath run --rows 5 --cols 5 --obstacles "0,1;0,2;0,3" --goal 0,4 --algorithm astar
  gridpath run --grid maze.txt --animate --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, f)
		},
	}
	f.grid.register(cmd)
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "", "bfs, dfs, dijkstra or astar (default from config)")
	cmd.Flags().BoolVar(&f.animate, "animate", false, "replay the exploration before printing the result")
	cmd.Flags().BoolVar(&f.save, "save", false, "store the run in history")
	cmd.Flags().StringVarP(&f.output, "output", "o", formatText, "output format: text, json or yaml")
	cmd.Flags().IntVar(&f.maxExpansions, "max-expansions", 0, "abort after this many expansions (0 = unlimited)")

	return cmd
}

func (a *app) algorithm(name string) (search.Algorithm, error) {
	if name == "" {
		return a.cfg.Algorithm, nil
	}

	return search.ParseAlgorithm(name)
}

func (a *app) run(cmd *cobra.Command, f runFlags) error {
	if err := checkFormat(f.output); err != nil {
		return err
	}
	alg, err := a.algorithm(f.algorithm)
	if err != nil {
		return err
	}
	g, err := f.grid.build(a)
	if err != nil {
		return err
	}
	start, goal, err := endpoints(g)
	if err != nil {
		return err
	}

	snap := g.Snapshot()
	out, err := search.Run(alg, snap, start, goal, traverse.WithMaxExpansions(f.maxExpansions))
	a.metrics.Observe(out, err)
	if errors.Is(err, traverse.ErrInvalidInvocation) {
		return fmt.Errorf("invalid grid configuration: %w", err)
	}
	if err != nil {
		return err
	}
	a.log.Debug("search finished", "algorithm", alg, "state", out.Result.State,
		"expanded", len(out.Result.Visited), "length", out.Result.Length(), "elapsed", out.Elapsed)

	rec, err := record.Build(out, snap, time.Now())
	if err != nil {
		return err
	}
	if f.save {
		if err = a.save(cmd, rec); err != nil {
			return err
		}
	}

	if f.output != formatText {
		return encode(a.out, f.output, rec)
	}
	r := a.renderer()
	if f.animate {
		if err = r.Play(cmd.Context(), a.out, r.Frames(snap, out.Result), a.cfg.PlaybackDelay.Std()); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(a.out, r.Render(snap, out.Result.Visited, out.Result.Path))
	}
	fmt.Fprintln(a.out, r.Summary(alg.String(), out.Result, out.Elapsed))

	return nil
}

// save stores records in history.
func (a *app) save(cmd *cobra.Command, recs ...*record.Record) error {
	st, err := a.openHistory()
	if err != nil {
		return err
	}
	defer st.Close()
	for _, rec := range recs {
		if err = st.Put(cmd.Context(), rec); err != nil {
			return fmt.Errorf("save %s: %w", rec.ID, err)
		}
		a.log.Info("run saved", "id", rec.ID, "algorithm", rec.Algorithm)
	}

	return nil
}

// describe renders g for log lines.
func describe(g *grid.Grid) string {
	return fmt.Sprintf("%dx%d with %d obstacles", g.Rows(), g.Cols(), len(g.Obstacles()))
}
