// Package config provides configuration management for the bumpver CLI.
package config

import (
	"fmt"

	"github.com/concave-dev/bumpver/internal/logging"
	"github.com/concave-dev/bumpver/internal/validate"
	"github.com/spf13/cobra"
)

// ValidateGlobalFlags validates all global flags before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := ValidateManifestPath(); err != nil {
		return err
	}

	return ValidateLogLevel()
}

// ValidateManifestPath validates the --file flag
func ValidateManifestPath() error {
	if err := validate.ManifestPath(Global.ManifestPath); err != nil {
		logging.Debug("Invalid manifest path '%s': %v", Global.ManifestPath, err)
		return fmt.Errorf("invalid manifest path - expected a .json file (e.g., package.json)")
	}
	return nil
}

// ValidateLogLevel validates the --log-level flag
func ValidateLogLevel() error {
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return fmt.Errorf("invalid log level '%s' - valid: DEBUG, INFO, WARN, ERROR", Global.LogLevel)
	}
	return nil
}
