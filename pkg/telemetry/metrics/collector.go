package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/oyurisousa/validador-censo-sub000/pkg/config"
)

// otherLabel replaces label values past the cardinality limit.
const otherLabel = "other"

// Collector owns the Prometheus registry of the validator. It implements
// validator.Observer and reference.Observer so it can be handed straight
// to both.
//
// When the configuration has Enabled false every Record method is a no-op,
// so callers never need to check.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	validationMetrics *ValidationMetrics
	referenceMetrics  *ReferenceMetrics
	inboxMetrics      *InboxMetrics

	cacheMu sync.Mutex
	caches  map[string]bool

	// Rule ids are a closed set, but the limit keeps a bad build from
	// flooding the registry.
	cardinalityLimiter *CardinalityLimiter
}

// NewCollector creates a new metrics collector with the specified
// configuration and Prometheus registry. A nil registry gets a fresh one.
//
// Example:
//
//	cfg := config.Default().Telemetry.Metrics
//	cfg.Enabled = true
//	collector := metrics.NewCollector(&cfg, nil)
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}
	if len(cfg.DurationBuckets) == 0 {
		cfg.DurationBuckets = config.DefaultDurationBuckets
	}

	return &Collector{
		config:             cfg,
		registry:           registry,
		validationMetrics:  NewValidationMetrics(cfg, registry),
		referenceMetrics:   NewReferenceMetrics(cfg, registry),
		inboxMetrics:       NewInboxMetrics(cfg, registry),
		caches:             make(map[string]bool),
		cardinalityLimiter: NewCardinalityLimiter(1000),
	}
}

// RecordValidation records one finished file validation.
//
// Parameters:
//   - phase: "initial" or "situation", empty when the file was rejected
//     before its phase was known
//   - valid: whether the file had no errors
//   - records: lines evaluated by the record rules
//   - duration: wall time of the validation
func (c *Collector) RecordValidation(phase string, valid bool, records int, duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	if phase == "" {
		phase = "unknown"
	}
	c.validationMetrics.RecordFile(phase, valid, records, duration)
}

// RecordDiagnostic counts one emitted diagnostic.
func (c *Collector) RecordDiagnostic(rule, severity string) {
	if !c.config.Enabled {
		return
	}
	if !c.cardinalityLimiter.Allow(rule) {
		rule = otherLabel
	}
	c.validationMetrics.RecordDiagnostic(rule, severity)
}

// RecordReferenceLookup records one reference table lookup.
func (c *Collector) RecordReferenceLookup(table, outcome string, duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	c.referenceMetrics.RecordLookup(table, outcome, duration)
}

// RecordInboxFile counts a file picked up by the inbox watcher. status is
// "valid", "invalid" or "failed".
func (c *Collector) RecordInboxFile(status string) {
	if !c.config.Enabled {
		return
	}
	c.inboxMetrics.RecordFile(status)
}

// RecordHistoryPruned counts validation runs removed by retention.
func (c *Collector) RecordHistoryPruned(deleted int64) {
	if !c.config.Enabled {
		return
	}
	c.inboxMetrics.RecordPruned(deleted)
}

// ObserveCache exports a cache's counters under the given name. Registering
// the same name twice is a no-op.
func (c *Collector) ObserveCache(name string, src CacheStats) {
	if !c.config.Enabled {
		return
	}
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()
	if c.caches[name] {
		return
	}
	c.caches[name] = true
	registerCacheMetrics(c.config, c.registry, name, src)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// CardinalityLimiter prevents metric cardinality explosion by limiting
// the number of unique label combinations per metric.
type CardinalityLimiter struct {
	maxCardinality int
	current        map[string]struct{}
	mu             sync.RWMutex
}

// NewCardinalityLimiter creates a new cardinality limiter with the specified
// maximum cardinality.
func NewCardinalityLimiter(maxCardinality int) *CardinalityLimiter {
	return &CardinalityLimiter{
		maxCardinality: maxCardinality,
		current:        make(map[string]struct{}),
	}
}

// Allow checks if a label set is allowed. Returns true if the label set
// already exists or if we haven't reached the cardinality limit yet.
func (cl *CardinalityLimiter) Allow(labelSet string) bool {
	cl.mu.RLock()
	if _, exists := cl.current[labelSet]; exists {
		cl.mu.RUnlock()
		return true
	}
	cl.mu.RUnlock()

	cl.mu.Lock()
	defer cl.mu.Unlock()

	if _, exists := cl.current[labelSet]; exists {
		return true
	}
	if len(cl.current) >= cl.maxCardinality {
		return false
	}
	cl.current[labelSet] = struct{}{}
	return true
}

// Count returns the current cardinality.
func (cl *CardinalityLimiter) Count() int {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return len(cl.current)
}
