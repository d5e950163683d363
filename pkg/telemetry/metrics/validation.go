package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/oyurisousa/validador-censo-sub000/pkg/config"
)

// ValidationMetrics tracks file validations.
//
// Metrics:
//   - censo_validator_files_total: validated files by phase and validity
//   - censo_validator_validation_duration_seconds: validation wall time
//   - censo_validator_records_total: record lines evaluated
//   - censo_validator_diagnostics_total: diagnostics by rule and severity
type ValidationMetrics struct {
	filesTotal       *prometheus.CounterVec
	duration         *prometheus.HistogramVec
	recordsTotal     *prometheus.CounterVec
	diagnosticsTotal *prometheus.CounterVec
}

// NewValidationMetrics creates and registers validation metrics.
func NewValidationMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ValidationMetrics {
	vm := &ValidationMetrics{
		filesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "files_total",
				Help:      "Total number of validated files",
			},
			[]string{"phase", "valid"},
		),

		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "validation_duration_seconds",
				Help:      "Duration of file validations in seconds",
				Buckets:   cfg.DurationBuckets,
			},
			[]string{"phase"},
		),

		recordsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "records_total",
				Help:      "Total number of record lines evaluated",
			},
			[]string{"phase"},
		),

		diagnosticsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "diagnostics_total",
				Help:      "Total number of diagnostics by rule and severity",
			},
			[]string{"rule", "severity"},
		),
	}

	registry.MustRegister(vm.filesTotal, vm.duration, vm.recordsTotal, vm.diagnosticsTotal)
	return vm
}

// RecordFile records one validated file.
func (vm *ValidationMetrics) RecordFile(phase string, valid bool, records int, duration time.Duration) {
	vm.filesTotal.WithLabelValues(phase, strconv.FormatBool(valid)).Inc()
	vm.duration.WithLabelValues(phase).Observe(duration.Seconds())
	if records > 0 {
		vm.recordsTotal.WithLabelValues(phase).Add(float64(records))
	}
}

// RecordDiagnostic counts one diagnostic.
func (vm *ValidationMetrics) RecordDiagnostic(rule, severity string) {
	vm.diagnosticsTotal.WithLabelValues(rule, severity).Inc()
}
