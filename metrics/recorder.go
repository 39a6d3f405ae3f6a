// Package metrics provides the Prometheus-backed instrumentation for
// localsearch.Session's driver loop. Nothing in this module's pure
// evaluator packages (problem, penalty, tws, route, individual,
// localsearch's Exchange itself) imports this package; only the driver
// loop that actually runs for a noticeable wall-clock duration does,
// mirroring how the teacher reserves instrumentation for its own
// long-running loops rather than its pure algorithmic core.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder tracks move-evaluation throughput and sweep latency for one or
// more local-search sessions, labeled by session ID. A nil *Recorder is
// valid and every method on it is a no-op, so a driver can carry an
// optional recorder without a separate "metrics enabled" branch.
type Recorder struct {
	movesEvaluated *prometheus.CounterVec
	movesApplied   *prometheus.CounterVec
	sweepDuration  *prometheus.HistogramVec
	sweeps         *prometheus.CounterVec
}

// NewRecorder builds a Recorder and, if reg is non-nil, registers its
// collectors against it.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		movesEvaluated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cvrptw_localsearch_moves_evaluated_total",
			Help: "Candidate moves evaluated by a local-search session.",
		}, []string{"session"}),
		movesApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cvrptw_localsearch_moves_applied_total",
			Help: "Improving moves applied by a local-search session.",
		}, []string{"session"}),
		sweepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cvrptw_localsearch_sweep_duration_seconds",
			Help:    "Wall-clock duration of one local-search sweep.",
			Buckets: prometheus.DefBuckets,
		}, []string{"session"}),
		sweeps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cvrptw_localsearch_sweeps_total",
			Help: "Sweeps completed by a local-search session.",
		}, []string{"session"}),
	}

	if reg != nil {
		reg.MustRegister(r.movesEvaluated, r.movesApplied, r.sweepDuration, r.sweeps)
	}

	return r
}

// ObserveSweep records one completed sweep: how many candidate moves it
// evaluated, how many (0 or 1, for the best-improvement driver) it
// applied, and how long it took.
func (r *Recorder) ObserveSweep(sessionID string, evaluated, applied int64, elapsed time.Duration) {
	if r == nil {
		return
	}

	r.movesEvaluated.WithLabelValues(sessionID).Add(float64(evaluated))
	r.movesApplied.WithLabelValues(sessionID).Add(float64(applied))
	r.sweepDuration.WithLabelValues(sessionID).Observe(elapsed.Seconds())
	r.sweeps.WithLabelValues(sessionID).Inc()
}
