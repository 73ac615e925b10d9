// Package config provides default configuration values shared by the bumpver
// command and its internal packages.
package config

const (
	// DefaultManifestPath is the manifest bumpver rewrites when --file is not given.
	// Relative paths resolve against the working directory.
	DefaultManifestPath = "package.json"

	// DefaultLogLevel keeps CLI runs quiet: only errors are logged
	DefaultLogLevel = "ERROR"
)
