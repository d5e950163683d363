package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate_Defaults(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Errorf("expected the default config to pass validation, got error: %v", err)
	}
}

func TestValidate_Fields(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Config)
		errorField string
	}{
		{"unknown schema version", func(c *Config) { c.Validation.SchemaVersion = "2019" }, "validation.schema_version"},
		{"reference year out of range", func(c *Config) { c.Validation.ReferenceYear = 1900 }, "validation.reference_year"},
		{"negative workers", func(c *Config) { c.Validation.Workers = -1 }, "validation.workers"},
		{"negative max size", func(c *Config) { c.Validation.MaxFileSize = -1 }, "validation.max_file_size"},
		{"unknown school policy", func(c *Config) { c.Validation.MultipleSchoolPolicy = "random" }, "validation.multiple_school_policy"},
		{"unknown backend", func(c *Config) { c.Reference.Backend = "redis" }, "reference.backend"},
		{"sqlite without path", func(c *Config) { c.Reference.Backend = "sqlite"; c.Reference.SQLitePath = "" }, "reference.sqlite_path"},
		{"negative cache", func(c *Config) { c.Reference.CacheSize = -5 }, "reference.cache_size"},
		{"zero lookup timeout", func(c *Config) { c.Reference.LookupTimeout = 0 }, "reference.lookup_timeout"},
		{"seed file and git", func(c *Config) { c.Reference.SeedFile = "a.yaml"; c.Reference.Git.Repository = "https://example.com/t.git" }, "reference.git.repository"},
		{"negative git timeout", func(c *Config) { c.Reference.Git.Timeout = -time.Second }, "reference.git.timeout"},
		{"history without path", func(c *Config) { c.History.Enabled = true; c.History.SQLitePath = "" }, "history.sqlite_path"},
		{"bad cron", func(c *Config) { c.History.PruneSchedule = "daily" }, "history.prune_schedule"},
		{"negative retention", func(c *Config) { c.History.RetentionDays = -1 }, "history.retention_days"},
		{"extension without dot", func(c *Config) { c.Inbox.Extensions = []string{"txt"} }, "inbox.extensions[0]"},
		{"zero debounce", func(c *Config) { c.Inbox.Debounce = 0 }, "inbox.debounce"},
		{"bad level", func(c *Config) { c.Telemetry.Logging.Level = "trace" }, "telemetry.logging.level"},
		{"bad format", func(c *Config) { c.Telemetry.Logging.Format = "xml" }, "telemetry.logging.format"},
		{"metrics path", func(c *Config) { c.Telemetry.Metrics.Enabled = true; c.Telemetry.Metrics.Path = "metrics" }, "telemetry.metrics.path"},
		{"tracing without endpoint", func(c *Config) { c.Telemetry.Tracing.Enabled = true }, "telemetry.tracing.endpoint"},
		{"bad sampler", func(c *Config) { c.Telemetry.Tracing.Sampler = "sometimes" }, "telemetry.tracing.sampler"},
		{"ratio above one", func(c *Config) { c.Telemetry.Tracing.SampleRatio = 1.5 }, "telemetry.tracing.sample_ratio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation to fail")
			}
			verr, ok := err.(ValidationError)
			if !ok {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if len(verr.Errors) != 1 || verr.Errors[0].Field != tt.errorField {
				t.Errorf("errors = %v, want one on %s", verr.Errors, tt.errorField)
			}
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.Validation.Workers = -1
	cfg.Reference.Backend = "redis"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation to fail")
	}
	if !strings.Contains(err.Error(), "validation failed with 2 errors") {
		t.Errorf("error message should mention multiple errors: %s", err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"schema version", cfg.Validation.SchemaVersion, DefaultSchemaVersion},
		{"max file size", cfg.Validation.MaxFileSize, DefaultMaxFileSize},
		{"school policy", cfg.Validation.MultipleSchoolPolicy, DefaultMultipleSchoolPolicy},
		{"backend", cfg.Reference.Backend, DefaultReferenceBackend},
		{"git branch", cfg.Reference.Git.Branch, DefaultGitSeedBranch},
		{"git path", cfg.Reference.Git.Path, DefaultGitSeedPath},
		{"retention", cfg.History.RetentionDays, DefaultHistoryRetentionDays},
		{"inbox dir", cfg.Inbox.Dir, DefaultInboxDir},
		{"log format", cfg.Telemetry.Logging.Format, DefaultLoggingFormat},
		{"namespace", cfg.Telemetry.Metrics.Namespace, DefaultMetricsNamespace},
		{"service name", cfg.Telemetry.Tracing.ServiceName, DefaultTracingServiceName},
		{"redaction", cfg.Telemetry.Logging.RedactPIIEnabled(), true},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	// ApplyDefaults is idempotent and keeps explicit values.
	cfg.Inbox.Extensions = []string{".dat"}
	ApplyDefaults(cfg)
	if len(cfg.Inbox.Extensions) != 1 || cfg.Inbox.Extensions[0] != ".dat" {
		t.Errorf("extensions = %v", cfg.Inbox.Extensions)
	}
}
