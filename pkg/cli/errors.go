package cli

import "fmt"

// Exit codes of the censo command.
const (
	ExitOK      = 0
	ExitInvalid = 1
	ExitFailure = 2
)

// ConfigError represents an error in configuration or flags.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
	// Code is the process exit code. Zero means ExitFailure.
	Code int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code the process should end with.
func (e *CommandError) ExitCode() int {
	if e.Code == 0 {
		return ExitFailure
	}
	return e.Code
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
	}
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}

// NewInvalidError reports input that failed validation; the command ran
// fine but must exit with ExitInvalid.
func NewInvalidError(command string, err error) *CommandError {
	return &CommandError{Command: command, Err: err, Code: ExitInvalid}
}
