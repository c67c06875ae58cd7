package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/gridpath/record"
)

// keyPrefix namespaces run records inside the database.
const keyPrefix = "run/"

// Config holds configuration for a BadgerStore.
type Config struct {
	// Path is the database directory. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in RAM; data is lost on Close.
	InMemory bool

	// SyncWrites fsyncs every write.
	SyncWrites bool

	// Logger receives BadgerDB's own log lines. Nil silences them.
	Logger *slog.Logger
}

// DefaultConfig returns a persistent configuration rooted at path.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns a configuration for tests.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...), "component", "badger")
}

// BadgerStore is a Store backed by BadgerDB.
type BadgerStore struct {
	db     *badger.DB
	closed atomic.Bool
}

var _ Store = (*BadgerStore)(nil)

// Open creates the directory if needed and opens the database.
// The caller must Close the store.
func Open(cfg Config) (*BadgerStore, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, ErrNoPath
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("history: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("history: open badger: %w", err)
	}

	return &BadgerStore{db: db}, nil
}

func key(id string) []byte { return []byte(keyPrefix + id) }

func (s *BadgerStore) check(ctx context.Context) error {
	if s.closed.Load() {
		return ErrClosed
	}

	return ctx.Err()
}

// Put validates r and stores it, replacing any record with the same ID.
func (s *BadgerStore) Put(ctx context.Context, r *record.Record) error {
	if err := s.check(ctx); err != nil {
		return err
	}
	if err := record.Validate(r); err != nil {
		return err
	}
	val, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("history: encode %s: %w", r.ID, err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(r.ID), val)
	})
}

// Get returns the record with the given ID, or ErrNotFound.
func (s *BadgerStore) Get(ctx context.Context, id string) (*record.Record, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	var r record.Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("history: get %s: %w", id, err)
	}

	return &r, nil
}

// List returns the matching records ordered by Timestamp, then ID.
func (s *BadgerStore) List(ctx context.Context, f Filter) ([]*record.Record, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	out := make([]*record.Record, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var r record.Record
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			if f.Algorithm != "" && r.Algorithm != f.Algorithm {
				continue
			}
			out = append(out, &r)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.Before(out[j].Timestamp)
		}
		return out[i].ID < out[j].ID
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[len(out)-f.Limit:]
	}

	return out, nil
}

// Delete removes the record with the given ID, or returns ErrNotFound.
func (s *BadgerStore) Delete(ctx context.Context, id string) error {
	if err := s.check(ctx); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(id)); err != nil {
			return err
		}
		return txn.Delete(key(id))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("history: delete %s: %w", id, err)
	}

	return nil
}

// Close flushes and closes the database. Further calls return nil.
func (s *BadgerStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}

	return s.db.Close()
}
