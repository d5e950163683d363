package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
)

// current is the configuration the running command works from.
var current atomic.Pointer[Config]

// reloadMu serialises reloads so two SIGHUPs cannot interleave.
var reloadMu sync.Mutex

// RestartRequiredError reports a reload that touched settings bound at
// startup. The running configuration is left in place.
type RestartRequiredError struct {
	Sections []string
}

func (e *RestartRequiredError) Error() string {
	return fmt.Sprintf("changes to %s require a restart", strings.Join(e.Sections, ", "))
}

// SetConfig publishes cfg as the running configuration. Long-running
// commands read it back with GetConfig after a reload.
func SetConfig(cfg *Config) {
	current.Store(cfg)
}

// GetConfig returns the running configuration, or nil before SetConfig.
func GetConfig() *Config {
	return current.Load()
}

// ReloadConfig reads path again with environment overrides, applies adjust
// (command-line flags that override the file) and publishes the result.
//
// Only the validation section can change at runtime. The stores, the inbox
// and telemetry are opened once; when any of them differs from the running
// configuration a *RestartRequiredError is returned and nothing changes.
// Without a running configuration the loaded one is published as is.
func ReloadConfig(path string, adjust ...func(*Config)) (*Config, error) {
	reloadMu.Lock()
	defer reloadMu.Unlock()

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		return nil, fmt.Errorf("failed to reload configuration: %w", err)
	}
	for _, fn := range adjust {
		fn(cfg)
	}

	if old := current.Load(); old != nil {
		if sections := frozenChanges(old, cfg); len(sections) > 0 {
			return nil, &RestartRequiredError{Sections: sections}
		}
	}
	current.Store(cfg)
	return cfg, nil
}

// frozenChanges lists the sections that differ between a and b and cannot
// be swapped in a running process.
func frozenChanges(a, b *Config) []string {
	var sections []string
	if !reflect.DeepEqual(a.Reference, b.Reference) {
		sections = append(sections, "reference")
	}
	if !reflect.DeepEqual(a.History, b.History) {
		sections = append(sections, "history")
	}
	if !reflect.DeepEqual(a.Inbox, b.Inbox) {
		sections = append(sections, "inbox")
	}
	if !reflect.DeepEqual(a.Telemetry, b.Telemetry) {
		sections = append(sections, "telemetry")
	}
	return sections
}
