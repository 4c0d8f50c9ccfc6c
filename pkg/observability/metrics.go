package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/helix/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "helix"

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics holds the transcoder collectors and the registry they live in.
type Metrics struct {
	registry *prometheus.Registry

	transcodes     *prometheus.CounterVec
	strandFailures *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	bases          *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on a fresh registry.
// Go runtime and process collectors are included when withRuntime is true.
func NewMetrics(withRuntime bool) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transcodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transcode_requests_total",
				Help:      "Total number of transcode calls by mode and outcome.",
			},
			[]string{"mode", "status"},
		),
		strandFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "strand_failures_total",
				Help:      "Strands whose text could not be reconstructed.",
			},
			[]string{"mode", "strand"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "transcode_duration_seconds",
				Help:      "Duration of transcode calls.",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"mode"},
		),
		bases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bases_total",
				Help:      "Nucleotides produced or consumed on the positive strand.",
			},
			[]string{"mode"},
		),
	}
	m.registry.MustRegister(m.transcodes, m.strandFailures, m.duration, m.bases)
	if withRuntime {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return m
}

// Registry returns the registry backing these metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Hooks returns lifecycle hooks that record into these metrics.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTranscodeEnd: func(_ context.Context, e *domain.TranscodeEvent) {
			mode := e.Mode.String()
			status := StatusOK
			if e.Err != nil {
				status = StatusError
			}
			m.transcodes.WithLabelValues(mode, status).Inc()
			m.duration.WithLabelValues(mode).Observe(e.Duration.Seconds())
			if e.Bases > 0 {
				m.bases.WithLabelValues(mode).Add(float64(e.Bases))
			}
		},
		OnStrandFailure: func(_ context.Context, e *domain.StrandEvent) {
			m.strandFailures.WithLabelValues(e.Mode.String(), e.Strand).Inc()
		},
	}
}
