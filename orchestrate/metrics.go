package orchestrate

import (
	dto "github.com/prometheus/client_model/go"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters and histograms the orchestrator records
// as it works through a batch. They live on a private registry rather
// than the global default, so tests can create a fresh Metrics per
// run without collisions; no HTTP /metrics listener is started, values
// are read back only through Gather. The summary JSON does not include
// them.
type Metrics struct {
	registry *prometheus.Registry

	SolverAttemptsTotal  *prometheus.CounterVec
	SolverSuccessesTotal *prometheus.CounterVec
	SolveSeconds         *prometheus.HistogramVec
	RefinementIterations *prometheus.HistogramVec
}

// NewMetrics builds and registers a fresh Metrics instance.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		SolverAttemptsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hashi",
			Name:      "solver_attempts_total",
			Help:      "Number of times a solver was invoked, by solver name.",
		}, []string{"solver"}),
		SolverSuccessesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hashi",
			Name:      "solver_successes_total",
			Help:      "Number of solver invocations that produced a connected solution.",
		}, []string{"solver"}),
		SolveSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hashi",
			Name:      "solve_seconds",
			Help:      "Wall-clock time spent in one solver invocation.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30, 60},
		}, []string{"solver"}),
		RefinementIterations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hashi",
			Name:      "refinement_iterations",
			Help:      "Number of refinement-loop iterations until a connected model or failure.",
			Buckets:   []float64{1, 2, 3, 5, 10, 25, 50},
		}, []string{"solver"}),
	}

	m.registry.MustRegister(m.SolverAttemptsTotal, m.SolverSuccessesTotal, m.SolveSeconds, m.RefinementIterations)

	return m
}

// Gather returns the current metric families from the private
// registry.
func (m *Metrics) Gather() ([]*dto.MetricFamily, error) {
	return m.registry.Gather()
}
