package history

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/gridpath/record"
)

// ExportVersion is written to the header line of every export.
const ExportVersion = "1"

// ErrBadExport is returned by ImportJSONL for input that is not an export.
var ErrBadExport = errors.New("history: malformed export")

// header is the first JSONL line written by ExportJSONL.
type header struct {
	Version     string    `json:"version"`
	Type        string    `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	RecordCount int       `json:"record_count"`
}

// line wraps one record with a type discriminator.
type line struct {
	Type string         `json:"type"`
	Data *record.Record `json:"data"`
}

// ExportJSONL writes every record in s to w: a header line, then one
// {"type":"run","data":{...}} line per record in List order.
func ExportJSONL(ctx context.Context, s Store, w io.Writer) error {
	recs, err := s.List(ctx, Filter{})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(header{
		Version:     ExportVersion,
		Type:        "header",
		Timestamp:   time.Now().UTC(),
		RecordCount: len(recs),
	}); err != nil {
		return fmt.Errorf("history: encode header: %w", err)
	}
	for _, r := range recs {
		if err := enc.Encode(line{Type: "run", Data: r}); err != nil {
			return fmt.Errorf("history: encode %s: %w", r.ID, err)
		}
	}

	return nil
}

// ImportJSONL reads an export produced by ExportJSONL and Puts every record
// into s. It returns the number of records imported.
func ImportJSONL(ctx context.Context, s Store, r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("history: read header: %w", err)
		}
		return 0, fmt.Errorf("%w: empty input", ErrBadExport)
	}
	var h header
	if err := json.Unmarshal(sc.Bytes(), &h); err != nil || h.Type != "header" {
		return 0, fmt.Errorf("%w: first line is not a header", ErrBadExport)
	}
	if h.Version != ExportVersion {
		return 0, fmt.Errorf("%w: unsupported version %q", ErrBadExport, h.Version)
	}

	n, lineNo := 0, 1
	for sc.Scan() {
		lineNo++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var l line
		if err := json.Unmarshal(sc.Bytes(), &l); err != nil {
			return n, fmt.Errorf("%w: line %d: %v", ErrBadExport, lineNo, err)
		}
		if l.Type != "run" || l.Data == nil {
			return n, fmt.Errorf("%w: line %d: unexpected type %q", ErrBadExport, lineNo, l.Type)
		}
		if err := s.Put(ctx, l.Data); err != nil {
			return n, err
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("history: read: %w", err)
	}

	return n, nil
}
