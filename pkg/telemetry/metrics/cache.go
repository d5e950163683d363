package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/oyurisousa/validador-censo-sub000/pkg/config"
)

// CacheStats is implemented by caches that keep their own counters, such
// as reference.CachedLookup.
type CacheStats interface {
	Stats() (hits, misses int64)
	Size() int
}

// registerCacheMetrics exports a cache through function metrics read at
// scrape time.
//
// Metrics:
//   - censo_validator_cache_hits_total
//   - censo_validator_cache_misses_total
//   - censo_validator_cache_entries
func registerCacheMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry, name string, src CacheStats) {
	labels := prometheus.Labels{"cache": name}

	hits := prometheus.NewCounterFunc(
		prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "cache_hits_total",
			Help:        "Total number of cache hits",
			ConstLabels: labels,
		},
		func() float64 {
			h, _ := src.Stats()
			return float64(h)
		},
	)

	misses := prometheus.NewCounterFunc(
		prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "cache_misses_total",
			Help:        "Total number of cache misses",
			ConstLabels: labels,
		},
		func() float64 {
			_, m := src.Stats()
			return float64(m)
		},
	)

	entries := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "cache_entries",
			Help:        "Current number of entries in cache",
			ConstLabels: labels,
		},
		func() float64 { return float64(src.Size()) },
	)

	registry.MustRegister(hits, misses, entries)
}
