package core

// Metrics counts the domain events worth monitoring.
type Metrics interface {
	TransitionApplied(kind, from, to string)
	RecordPublished(bucket, op string)
	DemoFallback(operation string)
}

// NopMetrics discards every event.
type NopMetrics struct{}

var _ Metrics = (*NopMetrics)(nil)

func (*NopMetrics) TransitionApplied(string, string, string) {}
func (*NopMetrics) RecordPublished(string, string)           {}
func (*NopMetrics) DemoFallback(string)                      {}
