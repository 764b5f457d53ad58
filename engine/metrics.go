package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "boolnet"

// Metrics is the set of Prometheus collectors one run reports to.
type Metrics struct {
	// TracesTotal counts completed trajectories.
	TracesTotal prometheus.Counter

	// TrajectoryStates observes the number of distinct states per trajectory.
	TrajectoryStates prometheus.Histogram

	// TransientSteps observes the steps taken before entering an attractor.
	TransientSteps prometheus.Histogram

	// Attractors reports the attractors found by the last run.
	// Labels: kind (fixed_point, cycle)
	Attractors *prometheus.GaugeVec

	// UnresolvedTotal counts initial states with no reachable attractor.
	UnresolvedTotal prometheus.Counter

	// GraphVertices reports the STG size of the last graph run.
	GraphVertices prometheus.Gauge

	// RunDuration measures whole runs.
	// Labels: strategy (trajectory, graph), mode (exhaustive, sampled)
	RunDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered but usable.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	lengths := prometheus.ExponentialBuckets(1, 2, 16)

	return &Metrics{
		TracesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "trajectory",
			Name:      "traces_total",
			Help:      "Total trajectories traced to an attractor",
		}),
		TrajectoryStates: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "trajectory",
			Name:      "states",
			Help:      "Distinct states visited per trajectory",
			Buckets:   lengths,
		}),
		TransientSteps: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "trajectory",
			Name:      "transient_steps",
			Help:      "Steps taken before entering an attractor",
			Buckets:   append([]float64{0}, lengths...),
		}),
		Attractors: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "attractors",
			Help:      "Attractors found by the last run, by kind",
		}, []string{"kind"}),
		UnresolvedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "unresolved_total",
			Help:      "Initial states whose attractor lies outside the explored graph",
		}),
		GraphVertices: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "stg",
			Name:      "vertices",
			Help:      "Vertices in the state transition graph of the last graph run",
		}),
		RunDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of complete runs",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"strategy", "mode"}),
	}
}

// RecordTrace records one completed trajectory.
func (m *Metrics) RecordTrace(states, transient int) {
	m.TracesTotal.Inc()
	m.TrajectoryStates.Observe(float64(states))
	m.TransientSteps.Observe(float64(transient))
}
