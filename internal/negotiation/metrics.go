package negotiation

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains Prometheus metrics for media type negotiation.
type Metrics struct {
	resolutionsTotal *prometheus.CounterVec
	errorsTotal      *prometheus.CounterVec
}

var (
	metricsInstance *Metrics
	metricsOnce     sync.Once
)

// GetMetrics returns the singleton negotiation metrics instance.
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsInstance = &Metrics{
			resolutionsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "gsr",
					Subsystem: "negotiation",
					Name:      "resolutions_total",
					Help:      "Total number of media type resolutions",
				},
				[]string{"strategy", "outcome"},
			),
			errorsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "gsr",
					Subsystem: "negotiation",
					Name:      "errors_total",
					Help:      "Total number of negotiation errors",
				},
				[]string{"strategy"},
			),
		}
	})
	return metricsInstance
}

// RecordResolution records a completed resolution by winning strategy
// and outcome kind.
func (m *Metrics) RecordResolution(strategy, outcome string) {
	m.resolutionsTotal.WithLabelValues(strategy, outcome).Inc()
}

// RecordError records an aborted resolution.
func (m *Metrics) RecordError(strategy string) {
	m.errorsTotal.WithLabelValues(strategy).Inc()
}
