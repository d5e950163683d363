package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func resetGlobal(t *testing.T) {
	t.Helper()
	current.Store(nil)
	t.Cleanup(func() { current.Store(nil) })
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "censo.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func rewrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestGetConfig_BeforeSet(t *testing.T) {
	resetGlobal(t)
	if GetConfig() != nil {
		t.Error("expected nil config before SetConfig")
	}
}

func TestSetConfig(t *testing.T) {
	resetGlobal(t)
	cfg := Default()
	cfg.Inbox.Dir = "/srv/censo/inbox"
	SetConfig(cfg)

	if got := GetConfig(); got != cfg {
		t.Fatalf("GetConfig() = %p, want %p", got, cfg)
	}
}

func TestReloadConfig_NothingPublished(t *testing.T) {
	resetGlobal(t)
	path := writeConfig(t, "history:\n  enabled: true\n")

	cfg, err := ReloadConfig(path)
	if err != nil {
		t.Fatalf("ReloadConfig: %v", err)
	}
	if GetConfig() != cfg || !cfg.History.Enabled {
		t.Errorf("loaded config was not published: %+v", GetConfig().History)
	}
}

func TestReloadConfig_Validation(t *testing.T) {
	resetGlobal(t)
	path := writeConfig(t, "validation:\n  workers: 2\n")
	first, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatal(err)
	}
	SetConfig(first)

	rewrite(t, path, "validation:\n  workers: 6\n  schema_version: \"2024\"\n")
	cfg, err := ReloadConfig(path)
	if err != nil {
		t.Fatalf("ReloadConfig: %v", err)
	}
	if cfg.Validation.Workers != 6 || cfg.Validation.SchemaVersion != "2024" {
		t.Errorf("validation after reload = %+v", cfg.Validation)
	}
	if GetConfig() != cfg {
		t.Error("reloaded config was not published")
	}
}

func TestReloadConfig_Adjust(t *testing.T) {
	resetGlobal(t)
	path := writeConfig(t, "")
	first, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatal(err)
	}
	verbose := func(c *Config) { c.Telemetry.Logging.Level = "debug" }
	verbose(first)
	SetConfig(first)

	rewrite(t, path, "validation:\n  strict: true\n")
	if _, err := ReloadConfig(path); err == nil {
		t.Fatal("expected the unadjusted logging level to require a restart")
	}
	cfg, err := ReloadConfig(path, verbose)
	if err != nil {
		t.Fatalf("ReloadConfig with adjust: %v", err)
	}
	if !cfg.Validation.Strict {
		t.Error("strict was not reloaded")
	}
}

func TestReloadConfig_RestartRequired(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"history path", "history:\n  sqlite_path: other.db\n", []string{"history"}},
		{"reference backend", "reference:\n  backend: sqlite\n", []string{"reference"}},
		{"inbox and telemetry", "inbox:\n  dir: elsewhere\ntelemetry:\n  logging:\n    level: debug\n", []string{"inbox", "telemetry"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobal(t)
			path := writeConfig(t, "")
			first, err := LoadConfigWithEnvOverrides(path)
			if err != nil {
				t.Fatal(err)
			}
			SetConfig(first)

			rewrite(t, path, tt.content)
			_, err = ReloadConfig(path)
			var restart *RestartRequiredError
			if !errors.As(err, &restart) {
				t.Fatalf("error = %v, want RestartRequiredError", err)
			}
			if !reflect.DeepEqual(restart.Sections, tt.want) {
				t.Errorf("sections = %v, want %v", restart.Sections, tt.want)
			}
			if GetConfig() != first {
				t.Error("a rejected reload must keep the running config")
			}
		})
	}
}

func TestReloadConfig_InvalidFile(t *testing.T) {
	resetGlobal(t)
	path := writeConfig(t, "")
	first, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatal(err)
	}
	SetConfig(first)

	rewrite(t, path, "telemetry:\n  logging:\n    level: loud\n")
	if _, err := ReloadConfig(path); err == nil {
		t.Fatal("expected reload of an invalid file to fail")
	}
	if GetConfig() != first {
		t.Error("a failed reload must keep the previous config")
	}
}
