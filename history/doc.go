// Package history persists run records in an embedded BadgerDB and exports
// them as JSONL.
//
// Records are stored under "run/<id>" as JSON. List returns them oldest
// first (Timestamp, then ID). The store is safe for concurrent use.
//
// Tests and one-shot tools can open the store in memory:
//
//	st, err := history.Open(history.InMemoryConfig())
//	if err != nil { ... }
//	defer st.Close()
package history
