// Package metrics records solver and optimize-run metrics in a private
// Prometheus registry that can be flushed to a node_exporter textfile.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "budgetwise"

// Recorder is the sink the allocation service reports solve results to.
type Recorder interface {
	ObserveSolve(s Solve) error
}

// Solve summarizes one optimize run.
type Solve struct {
	EmergencyMode bool
	Candidates    int
	Selected      int
	NodesExpanded int
	NodesPruned   int
	Truncated     bool
	Utilization   float64
	Duration      time.Duration
}

type Registry struct {
	reg *prometheus.Registry

	solves        *prometheus.CounterVec
	truncated     prometheus.Counter
	nodesExpanded prometheus.Histogram
	nodesPruned   prometheus.Counter
	duration      prometheus.Histogram
	selected      prometheus.Gauge
	candidates    prometheus.Gauge
	utilization   prometheus.Gauge
}

func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Optimize runs by allocation mode.",
		}, []string{"mode"}),
		truncated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_truncated_total",
			Help:      "Optimize runs stopped early by the node limit.",
		}),
		nodesExpanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solver_nodes_expanded",
			Help:      "Search nodes expanded per solve.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		nodesPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solver_nodes_pruned_total",
			Help:      "Search nodes discarded because their bound could not beat the incumbent.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of the branch-and-bound search.",
			Buckets:   prometheus.DefBuckets,
		}),
		selected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_selected_items",
			Help:      "Items funded by the most recent solve.",
		}),
		candidates: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_candidate_items",
			Help:      "Candidate items considered by the most recent solve.",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_budget_utilization_ratio",
			Help:      "Share of the budget spent by the most recent solve, 0 to 1.",
		}),
	}
	r.reg.MustRegister(r.solves, r.truncated, r.nodesExpanded, r.nodesPruned,
		r.duration, r.selected, r.candidates, r.utilization)
	return r
}

func (r *Registry) ObserveSolve(s Solve) error {
	mode := "normal"
	if s.EmergencyMode {
		mode = "emergency"
	}
	r.solves.WithLabelValues(mode).Inc()
	if s.Truncated {
		r.truncated.Inc()
	}
	r.nodesExpanded.Observe(float64(s.NodesExpanded))
	r.nodesPruned.Add(float64(s.NodesPruned))
	r.duration.Observe(s.Duration.Seconds())
	r.selected.Set(float64(s.Selected))
	r.candidates.Set(float64(s.Candidates))
	r.utilization.Set(s.Utilization)
	return nil
}

// Gatherer exposes the underlying registry for tests and exporters.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile writes the registry in the Prometheus text format.
// The write is atomic, so a scraping node_exporter never sees a partial file.
func (r *Registry) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}

// Textfile records into Registry and rewrites Path after every solve.
type Textfile struct {
	*Registry
	Path string
}

func NewTextfile(path string) *Textfile {
	return &Textfile{Registry: New(), Path: path}
}

func (t *Textfile) ObserveSolve(s Solve) error {
	if err := t.Registry.ObserveSolve(s); err != nil {
		return err
	}
	return t.WriteTextfile(t.Path)
}

// Nop discards observations.
type Nop struct{}

func (Nop) ObserveSolve(Solve) error { return nil }
