package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/record"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/traverse"
)

type raceFlags struct {
	grid       gridFlags
	algorithms []string
	save       bool
	output     string
	maxExpand  int
}

func newRaceCmd(a *app) *cobra.Command {
	var f raceFlags
	cmd := &cobra.Command{
		Use:   "race",
		Short: "Run several algorithms concurrently on the same grid and compare them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.race(cmd, f)
		},
	}
	f.grid.register(cmd)
	cmd.Flags().StringSliceVar(&f.algorithms, "algorithms", nil, "algorithms to race (default all)")
	cmd.Flags().BoolVar(&f.save, "save", false, "store every run in history")
	cmd.Flags().StringVarP(&f.output, "output", "o", formatText, "output format: text, json or yaml")
	cmd.Flags().IntVar(&f.maxExpand, "max-expansions", 0, "abort each run after this many expansions (0 = unlimited)")

	return cmd
}

func (a *app) race(cmd *cobra.Command, f raceFlags) error {
	if err := checkFormat(f.output); err != nil {
		return err
	}
	algs := search.All()
	if len(f.algorithms) > 0 {
		algs = algs[:0:0]
		for _, name := range f.algorithms {
			alg, err := search.ParseAlgorithm(name)
			if err != nil {
				return err
			}
			algs = append(algs, alg)
		}
	}
	g, err := f.grid.build(a)
	if err != nil {
		return err
	}
	if _, _, err = endpoints(g); err != nil {
		return err
	}
	a.log.Debug("race starting", "grid", describe(g), "algorithms", len(algs))

	outs, err := search.Race(cmd.Context(), g, algs, traverse.WithMaxExpansions(f.maxExpand))
	for _, o := range outs {
		a.metrics.Observe(o, unfinished(o, err))
	}
	if errors.Is(err, traverse.ErrInvalidInvocation) {
		return fmt.Errorf("invalid grid configuration: %w", err)
	}
	if err != nil {
		return err
	}

	snap := g.Snapshot()
	now := time.Now()
	recs := make([]*record.Record, len(outs))
	for i, o := range outs {
		if recs[i], err = record.Build(o, snap, now); err != nil {
			return err
		}
	}
	if f.save {
		if err = a.save(cmd, recs...); err != nil {
			return err
		}
	}
	if f.output != formatText {
		return encode(a.out, f.output, recs)
	}

	fmt.Fprintln(a.out, a.renderer().Render(snap, nil, nil))
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tFOUND\tLENGTH\tEXPANDED\tELAPSED")
	best := -1
	for i, o := range outs {
		length := "-"
		if o.Result.Found() {
			length = fmt.Sprint(o.Result.Length())
			if best < 0 || len(o.Result.Visited) < len(outs[best].Result.Visited) {
				best = i
			}
		}
		fmt.Fprintf(tw, "%s\t%t\t%s\t%d\t%s\n", o.Algorithm, o.Result.Found(), length,
			len(o.Result.Visited), o.Elapsed.Round(time.Microsecond))
	}
	if err = tw.Flush(); err != nil {
		return err
	}
	if best < 0 {
		fmt.Fprintln(a.out, "No path found")
	} else {
		fmt.Fprintf(a.out, "Fewest expansions: %s (%d)\n", outs[best].Algorithm, len(outs[best].Result.Visited))
	}

	return nil
}

// unfinished returns err for an outcome the race cut short, and nil for one
// that reached Succeeded or Exhausted.
func unfinished(o search.Outcome, err error) error {
	if err == nil || (o.Result != nil && o.Result.State != traverse.Running) {
		return nil
	}

	return err
}
