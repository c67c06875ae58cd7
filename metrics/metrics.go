// Package metrics records search runs as Prometheus metrics on a private
// registry and writes them in the node_exporter textfile format.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridpath/search"
)

// Outcome label values.
const (
	OutcomeFound  = "found"
	OutcomeNoPath = "no_path"
	OutcomeError  = "error"
)

// Metrics is the set of collectors for search runs. Each Metrics owns its
// registry, so several can coexist in one process (tests, embedding).
type Metrics struct {
	Registry *prometheus.Registry

	// RunsTotal counts runs. Labels: algorithm, outcome.
	RunsTotal *prometheus.CounterVec
	// Expansions is the distribution of expanded cells per run.
	Expansions *prometheus.HistogramVec
	// Duration is the distribution of wall-clock run time in seconds.
	Duration *prometheus.HistogramVec
	// PathLength is the distribution of path edge counts for found paths.
	PathLength *prometheus.HistogramVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridpath",
			Subsystem: "search",
			Name:      "runs_total",
			Help:      "Search runs by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		Expansions: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gridpath",
			Subsystem: "search",
			Name:      "expansions",
			Help:      "Cells expanded per search run",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"algorithm"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gridpath",
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Wall-clock time per search run in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 7),
		}, []string{"algorithm"}),
		PathLength: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gridpath",
			Subsystem: "search",
			Name:      "path_length",
			Help:      "Edges on the found path",
			Buckets:   prometheus.LinearBuckets(0, 10, 10),
		}, []string{"algorithm"}),
	}
}

// Observe records one run. err is the error returned with out, if any;
// a run with an error counts under OutcomeError and its histograms are
// still fed when a partial Result is present.
func (m *Metrics) Observe(out search.Outcome, err error) {
	alg := out.Algorithm.String()
	outcome := OutcomeError
	switch {
	case err != nil:
	case out.Result != nil && out.Result.Found():
		outcome = OutcomeFound
	case out.Result != nil:
		outcome = OutcomeNoPath
	}
	m.RunsTotal.WithLabelValues(alg, outcome).Inc()
	m.Duration.WithLabelValues(alg).Observe(out.Elapsed.Seconds())
	if out.Result == nil {
		return
	}
	m.Expansions.WithLabelValues(alg).Observe(float64(len(out.Result.Visited)))
	if outcome == OutcomeFound {
		m.PathLength.WithLabelValues(alg).Observe(float64(out.Result.Length()))
	}
}

// WriteTextfile writes the registry to path atomically in the textfile
// collector format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
