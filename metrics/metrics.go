// Package metrics exposes Prometheus collectors for puzzle searches.
//
// Collectors are registered on a caller-supplied Registerer so that tests
// and the CLI can use private registries instead of the global default.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/rivercross/bfs"
)

// Search outcomes used as the "outcome" label.
const (
	OutcomeSolved     = "solved"
	OutcomeNoSolution = "no_solution"
	OutcomeError      = "error"
)

// Frontier events used as the "event" label.
const (
	EventEnqueued  = "enqueued"
	EventDequeued  = "dequeued"
	EventDiscarded = "discarded"
)

// Search groups the collectors updated once per solver run.
// A nil *Search is valid and records nothing.
type Search struct {
	runs      *prometheus.CounterVec
	states    *prometheus.CounterVec
	crossings prometheus.Histogram
	durations prometheus.Histogram
}

// NewSearch creates the collectors and registers them on reg.
// It panics if they are already registered, like promauto.
func NewSearch(reg prometheus.Registerer) *Search {
	f := promauto.With(reg)
	return &Search{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rivercross_search_runs_total",
			Help: "Total searches by outcome",
		}, []string{"outcome"}),

		states: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rivercross_search_frontier_events_total",
			Help: "Frontier entries enqueued, dequeued and discarded as already visited",
		}, []string{"event"}),

		crossings: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "rivercross_solution_crossings",
			Help:    "Number of boat crossings in returned solutions",
			Buckets: []float64{1, 3, 5, 7, 9, 11, 15, 21, 31, 51},
		}),

		durations: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "rivercross_search_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
	}
}

// Observe records one finished search. crossings is ignored unless the
// outcome is OutcomeSolved.
func (s *Search) Observe(outcome string, st bfs.Stats, crossings int, elapsed time.Duration) {
	if s == nil {
		return
	}
	s.runs.WithLabelValues(outcome).Inc()
	s.states.WithLabelValues(EventEnqueued).Add(float64(st.Enqueued))
	s.states.WithLabelValues(EventDequeued).Add(float64(st.Dequeued))
	s.states.WithLabelValues(EventDiscarded).Add(float64(st.Discarded))
	s.durations.Observe(elapsed.Seconds())
	if outcome == OutcomeSolved {
		s.crossings.Observe(float64(crossings))
	}
}

// WriteText gathers g and writes every metric family to w in the Prometheus
// text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
