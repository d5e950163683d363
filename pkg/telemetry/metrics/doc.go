// Package metrics provides Prometheus metrics for the census validator.
//
// # Metrics Categories
//
//   - Validation: files, duration, evaluated records and diagnostics
//   - Reference: lookups by table and outcome, lookup latency
//   - Cache: hits, misses and entries of the reference cache
//   - Inbox: files handled in watch mode and pruned history runs
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	lookup = reference.Instrument(lookup, collector)
//	v := validator.New().WithLookup(lookup).WithObserver(collector)
//
//	mux := http.NewServeMux()
//	mux.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
//
// # Cardinality
//
// Rule ids are bounded by a CardinalityLimiter; values past the limit are
// reported as "other".
package metrics
