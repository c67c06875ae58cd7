package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/record"
)

// Output formats accepted by --output.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func checkFormat(f string) error {
	switch f {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("--output must be text, json or yaml, got %q", f)
	}
}

// encode writes v as JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func printRecordTable(w io.Writer, recs []*record.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tALGORITHM\tSIZE\tFOUND\tLENGTH\tEXPANDED\tELAPSED\tTIMESTAMP")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%t\t%d\t%d\t%s\t%s\n",
			r.ID, r.Algorithm, r.Rows, r.Cols, r.Found, r.PathLength, r.Visited,
			r.Elapsed.Round(time.Microsecond), r.Timestamp.Format("2006-01-02 15:04:05"))
	}

	return tw.Flush()
}

func printRecord(w io.Writer, r *record.Record) {
	fmt.Fprintf(w, "ID:          %s\n", r.ID)
	fmt.Fprintf(w, "Algorithm:   %s\n", r.Algorithm)
	fmt.Fprintf(w, "Grid:        %dx%d\n", r.Rows, r.Cols)
	fmt.Fprintf(w, "Start:       %s\n", r.Start)
	fmt.Fprintf(w, "Goal:        %s\n", r.Goal)
	if len(r.Obstacles) > 0 {
		fmt.Fprintf(w, "Obstacles:   %s\n", r.Obstacles)
	}
	if r.Found {
		fmt.Fprintf(w, "Path:        %s\n", r.Path)
		fmt.Fprintf(w, "Length:      %d\n", r.PathLength)
	} else {
		fmt.Fprintln(w, "Path:        No path found")
	}
	fmt.Fprintf(w, "Expanded:    %d\n", r.Visited)
	fmt.Fprintf(w, "Elapsed:     %s\n", r.Elapsed)
	fmt.Fprintf(w, "Timestamp:   %s\n", r.Timestamp.Format(time.RFC3339))
}
