package metricsvc

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)

	m.TransitionApplied("complaint", "pending", "in-progress")
	m.TransitionApplied("complaint", "pending", "in-progress")
	m.TransitionApplied("booking", "pending", "approved")
	m.RecordPublished("tournaments", "upsert")
	m.DemoFallback("login")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.transitions.WithLabelValues("complaint", "pending", "in-progress")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("booking", "pending", "approved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.publications.WithLabelValues("tournaments", "upsert")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.publications.WithLabelValues("tournaments", "delete")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fallbacks.WithLabelValues("login")))

	count, err := testutil.GatherAndCount(reg)
	assert.NoError(t, err)
	assert.Equal(t, 5, count)
}
