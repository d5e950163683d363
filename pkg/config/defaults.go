package config

import "time"

// Default values for configuration fields.
const (
	// Validation defaults
	DefaultSchemaVersion        = "2025"
	DefaultMaxFileSize          = 50 << 20 // 50MB
	DefaultMultipleSchoolPolicy = "last_wins"

	// Reference defaults
	DefaultReferenceBackend       = "memory"
	DefaultReferenceSQLitePath    = "data/reference.db"
	DefaultReferenceCacheSize     = 10000
	DefaultReferenceCacheTTL      = 10 * time.Minute
	DefaultReferenceLookupTimeout = 2 * time.Second
	DefaultGitSeedBranch          = "main"
	DefaultGitSeedPath            = "reference.yaml"
	DefaultGitSeedTimeout         = 30 * time.Second

	// History defaults
	DefaultHistorySQLitePath    = "data/history.db"
	DefaultHistoryRetentionDays = 90
	DefaultHistoryPruneSchedule = "0 3 * * *"

	// Inbox defaults
	DefaultInboxDir      = "inbox"
	DefaultInboxDebounce = 500 * time.Millisecond

	// Telemetry defaults
	DefaultLoggingLevel        = "info"
	DefaultLoggingFormat       = "json"
	DefaultMetricsAddress      = "127.0.0.1:9090"
	DefaultPrometheusPath      = "/metrics"
	DefaultMetricsNamespace    = "censo"
	DefaultMetricsSubsystem    = "validator"
	DefaultTracingSampler      = "ratio"
	DefaultTracingSamplingRate = 1.0
	DefaultTracingServiceName  = "censo-validator"
	DefaultTracingTimeout      = 10 * time.Second
)

// DefaultInboxExtensions are the file extensions the inbox validates.
var DefaultInboxExtensions = []string{".txt"}

// DefaultDurationBuckets are the validation duration histogram buckets.
var DefaultDurationBuckets = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	// Validation defaults
	if cfg.Validation.SchemaVersion == "" {
		cfg.Validation.SchemaVersion = DefaultSchemaVersion
	}
	if cfg.Validation.MaxFileSize == 0 {
		cfg.Validation.MaxFileSize = DefaultMaxFileSize
	}
	if cfg.Validation.MultipleSchoolPolicy == "" {
		cfg.Validation.MultipleSchoolPolicy = DefaultMultipleSchoolPolicy
	}

	// Reference defaults
	if cfg.Reference.Backend == "" {
		cfg.Reference.Backend = DefaultReferenceBackend
	}
	if cfg.Reference.SQLitePath == "" {
		cfg.Reference.SQLitePath = DefaultReferenceSQLitePath
	}
	if cfg.Reference.CacheSize == 0 {
		cfg.Reference.CacheSize = DefaultReferenceCacheSize
	}
	if cfg.Reference.CacheTTL == 0 {
		cfg.Reference.CacheTTL = DefaultReferenceCacheTTL
	}
	if cfg.Reference.LookupTimeout == 0 {
		cfg.Reference.LookupTimeout = DefaultReferenceLookupTimeout
	}
	if cfg.Reference.Git.Branch == "" {
		cfg.Reference.Git.Branch = DefaultGitSeedBranch
	}
	if cfg.Reference.Git.Path == "" {
		cfg.Reference.Git.Path = DefaultGitSeedPath
	}
	if cfg.Reference.Git.Timeout == 0 {
		cfg.Reference.Git.Timeout = DefaultGitSeedTimeout
	}

	// History defaults
	if cfg.History.SQLitePath == "" {
		cfg.History.SQLitePath = DefaultHistorySQLitePath
	}
	if cfg.History.RetentionDays == 0 {
		cfg.History.RetentionDays = DefaultHistoryRetentionDays
	}
	if cfg.History.PruneSchedule == "" {
		cfg.History.PruneSchedule = DefaultHistoryPruneSchedule
	}

	// Inbox defaults
	if cfg.Inbox.Dir == "" {
		cfg.Inbox.Dir = DefaultInboxDir
	}
	if len(cfg.Inbox.Extensions) == 0 {
		cfg.Inbox.Extensions = append([]string(nil), DefaultInboxExtensions...)
	}
	if cfg.Inbox.Debounce == 0 {
		cfg.Inbox.Debounce = DefaultInboxDebounce
	}

	applyTelemetryDefaults(&cfg.Telemetry)
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Logging.Level == "" {
		t.Logging.Level = DefaultLoggingLevel
	}
	if t.Logging.Format == "" {
		t.Logging.Format = DefaultLoggingFormat
	}

	if t.Metrics.ListenAddress == "" {
		t.Metrics.ListenAddress = DefaultMetricsAddress
	}
	if t.Metrics.Path == "" {
		t.Metrics.Path = DefaultPrometheusPath
	}
	if t.Metrics.Namespace == "" {
		t.Metrics.Namespace = DefaultMetricsNamespace
	}
	if t.Metrics.Subsystem == "" {
		t.Metrics.Subsystem = DefaultMetricsSubsystem
	}
	if len(t.Metrics.DurationBuckets) == 0 {
		t.Metrics.DurationBuckets = append([]float64(nil), DefaultDurationBuckets...)
	}

	if t.Tracing.Sampler == "" {
		t.Tracing.Sampler = DefaultTracingSampler
	}
	if t.Tracing.SampleRatio == 0 {
		t.Tracing.SampleRatio = DefaultTracingSamplingRate
	}
	if t.Tracing.ServiceName == "" {
		t.Tracing.ServiceName = DefaultTracingServiceName
	}
	if t.Tracing.Timeout == 0 {
		t.Tracing.Timeout = DefaultTracingTimeout
	}
}
