package record

import (
	"errors"
	"fmt"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// IDPrefix is prepended to every generated record ID.
const IDPrefix = "run-"

// Alphabet and IDLength define the random part of an ID.
const (
	Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	IDLength = 10
)

var (
	// ErrNoResult is returned by Build for an Outcome without a Result.
	ErrNoResult = errors.New("record: outcome has no result")
	// ErrNoSnapshot is returned by Build for a nil snapshot.
	ErrNoSnapshot = errors.New("record: snapshot is nil")
	// ErrNoEndpoints is returned by Build when the snapshot lacks start or goal.
	ErrNoEndpoints = errors.New("record: snapshot has no start or goal")
)

// Record is the persisted summary of one search run.
type Record struct {
	ID         string        `json:"id" yaml:"id" validate:"required,startswith=run-,len=14"`
	Algorithm  string        `json:"algorithm" yaml:"algorithm" validate:"required,oneof=bfs dfs dijkstra astar"`
	Rows       int           `json:"rows" yaml:"rows" validate:"gte=1"`
	Cols       int           `json:"cols" yaml:"cols" validate:"gte=1"`
	Start      grid.Coord    `json:"start" yaml:"start"`
	Goal       grid.Coord    `json:"goal" yaml:"goal"`
	Obstacles  Coords        `json:"obstacles" yaml:"obstacles"`
	Path       Coords        `json:"path" yaml:"path"`
	PathLength int           `json:"path_length" yaml:"path_length" validate:"gte=0"`
	Visited    int           `json:"visited" yaml:"visited" validate:"gte=0"`
	Found      bool          `json:"found" yaml:"found"`
	Elapsed    time.Duration `json:"elapsed_ns" yaml:"elapsed"`
	Timestamp  time.Time     `json:"timestamp" yaml:"timestamp" validate:"required"`
}

// NewID returns a fresh "run-" prefixed nanoid.
func NewID() (string, error) {
	id, err := nanoid.Generate(Alphabet, IDLength)
	if err != nil {
		return "", fmt.Errorf("record: %w", err)
	}

	return IDPrefix + id, nil
}

// Build assembles a Record from a finished run and the snapshot it ran on.
// now is stored as the Timestamp in UTC.
func Build(out search.Outcome, snap *grid.Snapshot, now time.Time) (*Record, error) {
	if out.Result == nil {
		return nil, ErrNoResult
	}
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	start, okS := snap.Start()
	goal, okG := snap.Goal()
	if !okS || !okG {
		return nil, ErrNoEndpoints
	}
	id, err := NewID()
	if err != nil {
		return nil, err
	}

	path := make(Coords, len(out.Result.Path))
	copy(path, out.Result.Path)
	r := &Record{
		ID:         id,
		Algorithm:  out.Algorithm.String(),
		Rows:       snap.Rows(),
		Cols:       snap.Cols(),
		Start:      start,
		Goal:       goal,
		Obstacles:  Coords(snap.Obstacles()),
		Path:       path,
		PathLength: out.Result.Length(),
		Visited:    len(out.Result.Visited),
		Found:      out.Result.Found(),
		Elapsed:    out.Elapsed,
		Timestamp:  now.UTC(),
	}
	if err = Validate(r); err != nil {
		return nil, err
	}

	return r, nil
}

// Grid rebuilds the grid the record was taken from.
func (r *Record) Grid() (*grid.Grid, error) {
	g, err := grid.New(r.Rows, r.Cols)
	if err != nil {
		return nil, err
	}
	for _, c := range r.Obstacles {
		if err = g.SetObstacle(c); err != nil {
			return nil, fmt.Errorf("record %s: obstacle %s: %w", r.ID, c, err)
		}
	}
	if err = g.SetStart(r.Start); err != nil {
		return nil, fmt.Errorf("record %s: start: %w", r.ID, err)
	}
	if err = g.SetGoal(r.Goal); err != nil {
		return nil, fmt.Errorf("record %s: goal: %w", r.ID, err)
	}

	return g, nil
}

// AlgorithmValue parses the stored algorithm name.
func (r *Record) AlgorithmValue() (search.Algorithm, error) {
	return search.ParseAlgorithm(r.Algorithm)
}
