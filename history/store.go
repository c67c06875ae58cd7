package history

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/record"
)

var (
	// ErrNotFound is returned when no record has the requested ID.
	ErrNotFound = errors.New("history: record not found")
	// ErrNoPath is returned by Open for a persistent store without a path.
	ErrNoPath = errors.New("history: path is required for a persistent store")
	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("history: store is closed")
)

// Filter narrows List. Zero values select everything.
type Filter struct {
	// Algorithm keeps only records with this algorithm name.
	Algorithm string
	// Limit, if > 0, keeps only the most recent Limit records.
	Limit int
}

// Store persists run records.
type Store interface {
	Put(ctx context.Context, r *record.Record) error
	Get(ctx context.Context, id string) (*record.Record, error)
	List(ctx context.Context, f Filter) ([]*record.Record, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
