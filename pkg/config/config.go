package config

import "time"

// Config is the root configuration structure for the census validator.
// It contains the validation engine settings, the reference-table store,
// the run history, the inbox watcher and telemetry.
type Config struct {
	// Validation contains the engine settings applied to every file.
	Validation ValidationConfig `yaml:"validation"`

	// Reference selects where reference-table codes (municipalities,
	// knowledge areas, stages, complementary activities) come from.
	Reference ReferenceConfig `yaml:"reference"`

	// History controls the record of validation runs.
	History HistoryConfig `yaml:"history"`

	// Inbox configures the drop-folder watcher used by "censo watch".
	Inbox InboxConfig `yaml:"inbox"`

	// Telemetry contains configuration for observability including logging,
	// metrics, and distributed tracing.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ValidationConfig contains the validation engine settings.
type ValidationConfig struct {
	// SchemaVersion is the layout year used when a caller does not name one.
	// Default: "2025"
	SchemaVersion string `yaml:"schema_version"`

	// ReferenceYear overrides the census year used for age checks.
	// 0 derives it from the schema version.
	ReferenceYear int `yaml:"reference_year"`

	// Workers bounds the goroutines evaluating record rules.
	// 0 uses GOMAXPROCS.
	Workers int `yaml:"workers"`

	// MaxFileSize rejects larger inputs, in bytes. 0 disables the limit.
	// Default: 50MB
	MaxFileSize int `yaml:"max_file_size"`

	// Strict makes the CLI treat warnings as failures.
	// Default: false
	Strict bool `yaml:"strict"`

	// MultipleSchoolPolicy picks the School record that supplies the school
	// context when a file has several.
	// Options: "last_wins", "first_wins"
	// Default: "last_wins"
	MultipleSchoolPolicy string `yaml:"multiple_school_policy"`
}

// ReferenceConfig contains the reference-table store configuration.
type ReferenceConfig struct {
	// Backend selects the store.
	// Options: "memory", "sqlite"
	// Default: "memory"
	Backend string `yaml:"backend"`

	// SQLitePath is the database file of the sqlite backend.
	// Default: "data/reference.db"
	SQLitePath string `yaml:"sqlite_path"`

	// SeedFile is a YAML file loaded into the store at startup.
	SeedFile string `yaml:"seed_file"`

	// Git fetches the seed file from a Git repository instead of SeedFile.
	Git GitSeedConfig `yaml:"git"`

	// CacheSize is the number of lookups kept in memory in front of the
	// store. 0 disables the cache.
	// Default: 10000
	CacheSize int `yaml:"cache_size"`

	// CacheTTL is how long a cached answer stays valid.
	// Default: 10m
	CacheTTL time.Duration `yaml:"cache_ttl"`

	// LookupTimeout bounds one lookup.
	// Default: 2s
	LookupTimeout time.Duration `yaml:"lookup_timeout"`
}

// GitSeedConfig locates a reference seed file in a Git repository.
type GitSeedConfig struct {
	// Repository is the clone URL (https, ssh or a local path).
	// Empty disables the Git source.
	Repository string `yaml:"repository"`

	// Branch is the branch to read.
	// Default: "main"
	Branch string `yaml:"branch"`

	// Path is the seed file inside the repository.
	// Default: "reference.yaml"
	Path string `yaml:"path"`

	// Token authenticates HTTPS clones. Prefer CENSO_REFERENCE_GIT_TOKEN.
	Token string `yaml:"token"`

	// Timeout bounds the clone.
	// Default: 30s
	Timeout time.Duration `yaml:"timeout"`
}

// HistoryConfig contains the validation-run history configuration.
type HistoryConfig struct {
	// Enabled controls whether runs are recorded.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// SQLitePath is the history database file.
	// Default: "data/history.db"
	SQLitePath string `yaml:"sqlite_path"`

	// RetentionDays is how long runs are kept. 0 keeps them forever.
	// Default: 90
	RetentionDays int `yaml:"retention_days"`

	// PruneSchedule is a cron expression for pruning.
	// Default: "0 3 * * *"
	PruneSchedule string `yaml:"prune_schedule"`
}

// InboxConfig contains the drop-folder watcher configuration.
type InboxConfig struct {
	// Dir is the watched directory.
	// Default: "inbox"
	Dir string `yaml:"dir"`

	// OutputDir receives the JSON reports. Empty writes them next to the
	// input file.
	OutputDir string `yaml:"output_dir"`

	// Extensions selects the files to validate.
	// Default: [".txt"]
	Extensions []string `yaml:"extensions"`

	// Debounce is the quiet period before a file is validated.
	// Default: 500ms
	Debounce time.Duration `yaml:"debounce"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains metrics collection configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing contains distributed tracing configuration.
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text", "console"
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`

	// RedactPII masks CPF, CNPJ, e-mail addresses, phone numbers and
	// sensitive attributes in log output.
	// Default: true
	RedactPII *bool `yaml:"redact_pii"`

	// RedactPatterns contains custom redaction patterns.
	RedactPatterns []RedactPattern `yaml:"redact_patterns"`
}

// RedactPIIEnabled reports whether PII redaction is on. It defaults to true
// when the field is absent.
func (c LoggingConfig) RedactPIIEnabled() bool {
	return c.RedactPII == nil || *c.RedactPII
}

// RedactPattern defines a custom redaction pattern.
type RedactPattern struct {
	// Name is a descriptive name for the pattern.
	Name string `yaml:"name"`

	// Pattern is the regular expression to match.
	Pattern string `yaml:"pattern"`

	// Replacement is the string to replace matches with.
	Replacement string `yaml:"replacement"`
}

// MetricsConfig contains metrics collection configuration.
type MetricsConfig struct {
	// Enabled serves the Prometheus endpoint in "censo watch".
	// Default: false
	Enabled bool `yaml:"enabled"`

	// ListenAddress serves the metrics endpoint in "censo watch".
	// Default: "127.0.0.1:9090"
	ListenAddress string `yaml:"listen_address"`

	// Path is the HTTP path for the Prometheus metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the metric name prefix.
	// Default: "censo"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem name.
	// Default: "validator"
	Subsystem string `yaml:"subsystem"`

	// DurationBuckets defines histogram buckets for validation duration (seconds).
	// Default: [0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10]
	DurationBuckets []float64 `yaml:"duration_buckets"`
}

// TracingConfig contains distributed tracing configuration.
type TracingConfig struct {
	// Enabled controls whether distributed tracing is active.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Sampler determines the sampling strategy.
	// Options: "always", "never", "ratio"
	// Default: "ratio"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of traces to sample (0.0 to 1.0).
	// Default: 1.0
	SampleRatio float64 `yaml:"sample_ratio"`

	// Endpoint is the OTLP gRPC collector endpoint, e.g. "localhost:4317".
	Endpoint string `yaml:"endpoint"`

	// ServiceName is the service name in traces.
	// Default: "censo-validator"
	ServiceName string `yaml:"service_name"`

	// Insecure disables TLS for the OTLP connection.
	// Default: false
	Insecure bool `yaml:"insecure"`

	// Timeout bounds one export.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`
}
