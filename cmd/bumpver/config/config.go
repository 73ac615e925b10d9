// Package config provides configuration management for the bumpver CLI.
package config

import (
	internalconfig "github.com/concave-dev/bumpver/internal/config"
	"github.com/concave-dev/bumpver/internal/version"
)

const (
	DefaultManifestPath = internalconfig.DefaultManifestPath // Manifest rewritten when --file is omitted
	DefaultLogLevel     = internalconfig.DefaultLogLevel     // Quiet unless something fails
)

// Version returns the current bumpver CLI version from the centralized version package
var Version = version.BumpverVersion

// Global holds the global CLI configuration
var Global struct {
	ManifestPath string // Manifest file to update
	LogLevel     string // Log level for CLI operations
	DryRun       bool   // Report the new version without writing it
}
