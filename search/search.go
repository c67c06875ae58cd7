package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/traverse"
)

var (
	// ErrNoStart is returned by Race when the grid has no start cell.
	ErrNoStart = errors.New("search: grid has no start cell")
	// ErrNoGoal is returned by Race when the grid has no goal cell.
	ErrNoGoal = errors.New("search: grid has no goal cell")
)

// Search runs alg on v from start to goal.
// Each call is synchronous, allocates its own state and retains nothing.
func Search(alg Algorithm, v grid.View, start, goal grid.Coord, opts ...traverse.Option) (*traverse.Result, error) {
	switch alg {
	case BFS:
		return bfs.BFS(v, start, goal, opts...)
	case DFS:
		return dfs.DFS(v, start, goal, opts...)
	case Dijkstra:
		return dijkstra.Dijkstra(v, start, goal, opts...)
	case AStar:
		return astar.AStar(v, start, goal, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
}

// Outcome is one timed run.
type Outcome struct {
	Algorithm Algorithm
	Result    *traverse.Result
	Elapsed   time.Duration
}

// Run is Search with timing. On error Outcome.Result may be a partial
// Result (expansion cap, hook abort) or nil (invalid invocation).
func Run(alg Algorithm, v grid.View, start, goal grid.Coord, opts ...traverse.Option) (Outcome, error) {
	began := time.Now()
	res, err := Search(alg, v, start, goal, opts...)

	return Outcome{Algorithm: alg, Result: res, Elapsed: time.Since(began)}, err
}

// Race takes one Snapshot of g and runs every algorithm in algs on it
// concurrently. Outcomes are returned in algs order. The first error cancels
// the remaining runs at their next expansion and is returned together with
// the outcomes; a run that did not finish has a nil or Running Result.
//
// Hooks supplied in opts are shared by all runs and must be safe for
// concurrent use.
func Race(ctx context.Context, g *grid.Grid, algs []Algorithm, opts ...traverse.Option) ([]Outcome, error) {
	if g == nil {
		return nil, traverse.ErrNilGrid
	}
	start, ok := g.Start()
	if !ok {
		return nil, ErrNoStart
	}
	goal, ok := g.Goal()
	if !ok {
		return nil, ErrNoGoal
	}
	for _, alg := range algs {
		if !alg.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
		}
	}
	base, err := traverse.Build(opts...)
	if err != nil {
		return nil, err
	}

	snap := g.Snapshot()
	outcomes := make([]Outcome, len(algs))
	eg, ctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		outcomes[i].Algorithm = alg
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := Run(alg, snap, start, goal, cancellable(ctx, base)...)
			outcomes[i] = out
			if err != nil {
				return fmt.Errorf("search: %s: %w", alg, err)
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return outcomes, err
	}

	return outcomes, nil
}

// cancellable rebuilds o as options whose OnVisit first checks ctx.
func cancellable(ctx context.Context, o traverse.Options) []traverse.Option {
	visit := o.OnVisit

	return []traverse.Option{
		traverse.WithOnVisit(func(c grid.Coord) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return visit(c)
		}),
		traverse.WithOnDiscover(o.OnDiscover),
		traverse.WithMaxExpansions(o.MaxExpansions),
	}
}
