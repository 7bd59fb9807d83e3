// Package metrics holds the Prometheus collectors for secretsanta.
// All methods are safe to call on a nil *Metrics, which records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "secretsanta"

// Metrics groups the collectors registered by New.
type Metrics struct {
	operations    *prometheus.CounterVec
	drawAttempts  prometheus.Histogram
	storeDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Group lifecycle operations by name and result.",
		}, []string{"operation", "result"}),
		drawAttempts: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "draw_attempts",
			Help:      "Shuffles needed to find a derangement.",
			Buckets:   []float64{1, 2, 3, 5, 10, 25, 100, 1000},
		}),
		storeDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_duration_seconds",
			Help:      "Time spent loading or saving the group document, lock wait included.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}
}

// RecordOperation counts one lifecycle operation. result is "ok" or an error kind.
func (m *Metrics) RecordOperation(operation, result string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, result).Inc()
}

// ObserveDraw records the number of shuffles used by a draw.
func (m *Metrics) ObserveDraw(attempts int, _ bool) {
	if m == nil {
		return
	}
	m.drawAttempts.Observe(float64(attempts))
}

// ObserveStore records the duration of a store operation started at start.
func (m *Metrics) ObserveStore(op string, start time.Time) {
	if m == nil {
		return
	}
	m.storeDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
