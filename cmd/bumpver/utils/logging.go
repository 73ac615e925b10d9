// Package utils provides utility functions for the bumpver CLI.
// This file contains logging setup.
package utils

import (
	"os"

	"github.com/concave-dev/bumpver/cmd/bumpver/config"
	"github.com/concave-dev/bumpver/internal/logging"
)

// SetupLogging configures CLI logging behavior based on environment and config.
// Enables debug output when DEBUG=true, otherwise applies --log-level, which
// defaults to errors only so the prompt and result lines stay uncluttered.
func SetupLogging() {
	if os.Getenv("DEBUG") == "true" {
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
		return
	}

	if config.Global.LogLevel == config.DefaultLogLevel {
		logging.SuppressOutput()
		return
	}
	logging.SetLevel(config.Global.LogLevel)
}
