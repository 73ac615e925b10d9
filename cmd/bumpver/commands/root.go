// Package commands provides the command tree for bumpver.
//
// bumpver is a single command: it asks which version component to bump and
// rewrites the manifest. Handlers and flag targets are attached from main so
// this package stays free of configuration state.
package commands

import (
	"github.com/concave-dev/bumpver/internal/semver"
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "bumpver [patch|minor|major]",
	Short: "Bump the semantic version stored in package.json",
	Long: `bumpver increments the major, minor or patch component of the "version"
field in a project manifest and writes the manifest back.

Without an argument it asks which component to bump. Lower components reset
to zero; every other field of the manifest is preserved.`,
	Args:          cobra.MaximumNArgs(1),
	ValidArgs:     validArgs(),
	SilenceUsage:  true,
	SilenceErrors: true,
	Example: `  # Ask which component to bump in ./package.json
  bumpver

  # Bump the minor version without prompting
  bumpver minor

  # Short aliases: p (patch), min (minor), max (major)
  bumpver p

  # Update a manifest somewhere else
  bumpver --file=packages/web/package.json major

  # Show what would change without writing
  bumpver --dry-run patch

  # Trace every step
  bumpver --log-level=DEBUG patch`,
}

// validArgs lists the canonical kinds for shell completion.
func validArgs() []string {
	args := make([]string, 0, len(semver.Kinds))
	for _, kind := range semver.Kinds {
		args = append(args, kind.String())
	}
	return args
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, manifestPathPtr *string, logLevelPtr *string,
	dryRunPtr *bool, defaultManifestPath, defaultLogLevel string) {
	rootCmd.PersistentFlags().StringVarP(manifestPathPtr, "file", "f", defaultManifestPath,
		"Manifest file to update")
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", defaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().BoolVar(dryRunPtr, "dry-run", false,
		"Print the new version without writing the manifest")
}
