package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/oyurisousa/validador-censo-sub000/pkg/config"
)

// InboxMetrics tracks the long running watch mode.
//
// Metrics:
//   - censo_validator_inbox_files_total: files handled by status
//   - censo_validator_history_pruned_total: runs removed by retention
type InboxMetrics struct {
	filesTotal  *prometheus.CounterVec
	prunedTotal prometheus.Counter
}

// NewInboxMetrics creates and registers inbox metrics.
func NewInboxMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *InboxMetrics {
	im := &InboxMetrics{
		filesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "inbox_files_total",
				Help:      "Total number of files handled by the inbox watcher",
			},
			[]string{"status"},
		),
		prunedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "history_pruned_total",
				Help:      "Total number of validation runs removed by retention",
			},
		),
	}

	registry.MustRegister(im.filesTotal, im.prunedTotal)
	return im
}

// RecordFile counts one inbox file.
func (im *InboxMetrics) RecordFile(status string) {
	im.filesTotal.WithLabelValues(status).Inc()
}

// RecordPruned adds deleted runs.
func (im *InboxMetrics) RecordPruned(deleted int64) {
	if deleted > 0 {
		im.prunedTotal.Add(float64(deleted))
	}
}
