package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, `
validation:
  schema_version: "2024"
  workers: 4
  strict: true
  multiple_school_policy: first_wins

reference:
  backend: sqlite
  sqlite_path: /var/lib/censo/reference.db
  seed_file: codes.yaml
  cache_ttl: 1m

history:
  enabled: true
  retention_days: 30

inbox:
  dir: /srv/inbox
  extensions: [".txt", ".csv"]
  debounce: 2s

telemetry:
  logging:
    level: debug
    format: text
    redact_pii: false
  tracing:
    enabled: true
    endpoint: localhost:4317
    sample_ratio: 0.5
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Validation.SchemaVersion != "2024" || cfg.Validation.Workers != 4 || !cfg.Validation.Strict {
		t.Errorf("validation = %+v", cfg.Validation)
	}
	if cfg.Reference.Backend != "sqlite" || cfg.Reference.CacheTTL != time.Minute {
		t.Errorf("reference = %+v", cfg.Reference)
	}
	if cfg.Reference.CacheSize != DefaultReferenceCacheSize {
		t.Errorf("cache size default not applied: %d", cfg.Reference.CacheSize)
	}
	if !cfg.History.Enabled || cfg.History.RetentionDays != 30 || cfg.History.PruneSchedule != DefaultHistoryPruneSchedule {
		t.Errorf("history = %+v", cfg.History)
	}
	if len(cfg.Inbox.Extensions) != 2 || cfg.Inbox.Debounce != 2*time.Second {
		t.Errorf("inbox = %+v", cfg.Inbox)
	}
	if cfg.Telemetry.Logging.RedactPIIEnabled() {
		t.Error("redact_pii: false should disable redaction")
	}
	if cfg.Telemetry.Tracing.SampleRatio != 0.5 {
		t.Errorf("sample ratio = %v", cfg.Telemetry.Tracing.SampleRatio)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown key", "validation:\n  wokers: 2\n", "field wokers not found"},
		{"invalid yaml", "validation: [\n", "failed to parse"},
		{"invalid value", "reference:\n  backend: postgres\n", "reference.backend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}

	if _, err := LoadConfig("/nonexistent/censo.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if cfg.Reference.Backend != DefaultReferenceBackend {
		t.Errorf("backend = %q", cfg.Reference.Backend)
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, "validation:\n  workers: 2\n")

	t.Setenv("CENSO_VALIDATION_WORKERS", "16")
	t.Setenv("CENSO_VALIDATION_STRICT", "true")
	t.Setenv("CENSO_REFERENCE_BACKEND", "sqlite")
	t.Setenv("CENSO_REFERENCE_LOOKUP_TIMEOUT", "750ms")
	t.Setenv("CENSO_HISTORY_ENABLED", "1")
	t.Setenv("CENSO_INBOX_EXTENSIONS", ".txt, .dat")
	t.Setenv("CENSO_TELEMETRY_LOGGING_REDACT_PII", "false")
	t.Setenv("CENSO_TELEMETRY_TRACING_SAMPLE_RATIO", "0.25")
	t.Setenv("CENSO_VALIDATION_REFERENCE_YEAR", "not-a-number")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides: %v", err)
	}

	if cfg.Validation.Workers != 16 || !cfg.Validation.Strict {
		t.Errorf("validation = %+v", cfg.Validation)
	}
	if cfg.Validation.ReferenceYear != 0 {
		t.Errorf("unparsable override should be ignored, got %d", cfg.Validation.ReferenceYear)
	}
	if cfg.Reference.Backend != "sqlite" || cfg.Reference.LookupTimeout != 750*time.Millisecond {
		t.Errorf("reference = %+v", cfg.Reference)
	}
	if !cfg.History.Enabled {
		t.Error("history should be enabled")
	}
	if got := cfg.Inbox.Extensions; len(got) != 2 || got[1] != ".dat" {
		t.Errorf("extensions = %v", got)
	}
	if cfg.Telemetry.Logging.RedactPIIEnabled() {
		t.Error("redaction should be off")
	}
	if cfg.Telemetry.Tracing.SampleRatio != 0.25 {
		t.Errorf("sample ratio = %v", cfg.Telemetry.Tracing.SampleRatio)
	}
}

func TestLoadConfigWithEnvOverrides_InvalidOverride(t *testing.T) {
	t.Setenv("CENSO_TELEMETRY_LOGGING_LEVEL", "verbose")

	_, err := LoadConfigWithEnvOverrides("")
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a ValidationError, got %v", err)
	}
	if verr.Errors[0].Field != "telemetry.logging.level" {
		t.Errorf("field = %s", verr.Errors[0].Field)
	}
}
