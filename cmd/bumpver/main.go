// Package main provides the entry point for bumpver.
//
// INITIALIZATION FLOW:
// 1. Root command gets its version and flag validation
// 2. Global flags are bound to config.Global
// 3. The bump handler is attached
// 4. The command runs once; any error is printed to stderr and exits 1
package main

import (
	"os"

	"github.com/concave-dev/bumpver/cmd/bumpver/commands"
	"github.com/concave-dev/bumpver/cmd/bumpver/config"
	"github.com/concave-dev/bumpver/cmd/bumpver/display"
	"github.com/concave-dev/bumpver/cmd/bumpver/handlers"
)

func init() {
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	// Setup global flags
	commands.SetupGlobalFlags(rootCmd, &config.Global.ManifestPath, &config.Global.LogLevel,
		&config.Global.DryRun, config.DefaultManifestPath, config.DefaultLogLevel)

	// Setup command handler
	rootCmd.RunE = handlers.HandleBump
}

// run executes the root command once and returns the process exit code.
func run() int {
	if err := commands.RootCmd.Execute(); err != nil {
		display.Failure(commands.RootCmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

// main is the main entry point
func main() {
	os.Exit(run())
}
