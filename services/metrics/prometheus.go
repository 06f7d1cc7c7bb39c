package metricsvc

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
)

type prometheusMetrics struct {
	transitions  *prometheus.CounterVec
	publications *prometheus.CounterVec
	fallbacks    *prometheus.CounterVec
}

var _ core.Metrics = (*prometheusMetrics)(nil)

// NewPrometheusMetrics registers the app counters on reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) *prometheusMetrics {
	m := &prometheusMetrics{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "campus_workflow_transitions_total", Help: "Total applied status transitions"},
			[]string{"kind", "from", "to"},
		),
		publications: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "campus_publications_total", Help: "Total records published to or removed from the shared layer"},
			[]string{"bucket", "op"},
		),
		fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "campus_demo_fallback_total", Help: "Total operations served in demo mode"},
			[]string{"operation"},
		),
	}
	reg.MustRegister(m.transitions, m.publications, m.fallbacks)
	return m
}

func (m *prometheusMetrics) TransitionApplied(kind, from, to string) {
	m.transitions.WithLabelValues(kind, from, to).Inc()
}

func (m *prometheusMetrics) RecordPublished(bucket, op string) {
	m.publications.WithLabelValues(bucket, op).Inc()
}

func (m *prometheusMetrics) DemoFallback(operation string) {
	m.fallbacks.WithLabelValues(operation).Inc()
}
