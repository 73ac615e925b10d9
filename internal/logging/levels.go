// Package logging provides centralized log level validation for bumpver.
//
// SUPPORTED LOG LEVELS:
//   - DEBUG: Every pipeline step (read, parse, bump, write)
//   - INFO:  General progress
//   - WARN:  Recoverable oddities
//   - ERROR: Failures (the default for CLI runs)
//
// Level strings are case-sensitive and must be uppercase.
package logging

import "fmt"

// ValidLogLevels is the canonical set of supported log levels.
var ValidLogLevels = map[string]bool{
	"DEBUG": true,
	"INFO":  true,
	"WARN":  true,
	"ERROR": true,
}

// IsValidLogLevel checks if the provided log level string is supported.
func IsValidLogLevel(level string) bool {
	return ValidLogLevels[level]
}

// ValidateLogLevel validates a log level string and returns an error if invalid.
// Used by --log-level flag validation so a typo fails early with a clear message.
func ValidateLogLevel(level string) error {
	if !IsValidLogLevel(level) {
		return fmt.Errorf("invalid log level: %s", level)
	}
	return nil
}
