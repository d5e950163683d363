package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/oyurisousa/validador-censo-sub000/pkg/config"
)

// ReferenceMetrics tracks reference table lookups.
//
// Metrics:
//   - censo_validator_reference_lookups_total: lookups by table and outcome
//   - censo_validator_reference_lookup_duration_seconds: lookup latency
type ReferenceMetrics struct {
	lookupsTotal   *prometheus.CounterVec
	lookupDuration *prometheus.HistogramVec
}

// NewReferenceMetrics creates and registers reference lookup metrics.
func NewReferenceMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ReferenceMetrics {
	rm := &ReferenceMetrics{
		lookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "reference_lookups_total",
				Help:      "Total number of reference table lookups",
			},
			[]string{"table", "outcome"},
		),

		// Lookups hit memory or a local database: 10µs to 100ms.
		lookupDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "reference_lookup_duration_seconds",
				Help:      "Duration of reference table lookups in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 10, 5),
			},
			[]string{"table"},
		),
	}

	registry.MustRegister(rm.lookupsTotal, rm.lookupDuration)
	return rm
}

// RecordLookup records one lookup.
func (rm *ReferenceMetrics) RecordLookup(table, outcome string, duration time.Duration) {
	rm.lookupsTotal.WithLabelValues(table, outcome).Inc()
	rm.lookupDuration.WithLabelValues(table).Observe(duration.Seconds())
}
