// Package config provides configuration management for the census validator.
//
// Configuration is read from a YAML file, completed with defaults and
// overridden by environment variables. Unknown YAML keys are rejected.
//
// # Configuration Loading
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("censo.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("censo.yaml")
//
// Passing an empty path to LoadConfigWithEnvOverrides starts from Default.
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention CENSO_SECTION_FIELD:
//
//   - CENSO_VALIDATION_WORKERS overrides validation.workers
//   - CENSO_REFERENCE_BACKEND overrides reference.backend
//   - CENSO_INBOX_EXTENSIONS overrides inbox.extensions (comma separated)
//   - CENSO_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// Values that fail to parse are ignored.
//
// # Configuration Precedence
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Running Configuration
//
// Commands publish what they loaded with SetConfig. "censo watch" reloads
// on SIGHUP; only the validation section may change, anything else is
// reported as a RestartRequiredError and the running configuration stays:
//
//	cfg, err := config.ReloadConfig("censo.yaml")
//	var restart *config.RestartRequiredError
//	if errors.As(err, &restart) {
//	    log.Printf("restart needed for %v", restart.Sections)
//	}
//
// Tests should prefer explicit Config values built from Default.
package config
