// Package handlers provides command handler functions for bumpver.
//
// Handlers follow the cobra RunE signature, take their streams from the
// command (cmd.InOrStdin, cmd.OutOrStdout) so tests can drive them without a
// terminal, and leave error printing to the caller.
package handlers

import (
	"github.com/concave-dev/bumpver/cmd/bumpver/config"
	"github.com/concave-dev/bumpver/cmd/bumpver/display"
	"github.com/concave-dev/bumpver/cmd/bumpver/utils"
	"github.com/concave-dev/bumpver/internal/logging"
	"github.com/concave-dev/bumpver/internal/manifest"
	"github.com/concave-dev/bumpver/internal/prompt"
	"github.com/spf13/cobra"
)

// HandleBump asks for the increment kind (unless it was given as an argument),
// bumps the manifest version and prints the confirmation line.
//
// The prompt is read exactly once. An invalid answer fails the run without
// re-prompting and without touching the manifest.
func HandleBump(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	src, question := inputSource(cmd, args)
	answer, err := prompt.Ask(cmd.OutOrStdout(), src, question)
	if err != nil {
		return err
	}

	logging.Info("Updating %s with increment %q", config.Global.ManifestPath, answer)

	result, err := manifest.Run(manifest.Request{
		Path:   config.Global.ManifestPath,
		Input:  answer,
		DryRun: config.Global.DryRun,
	})
	if err != nil {
		logging.Debug("Update failed with %s", manifest.KindOf(err))
		return err
	}

	display.Result(cmd.OutOrStdout(), result)
	if result.Written {
		logging.Success("Bumped %s from %s to %s", result.Path, result.Old, result.New)
	} else {
		logging.Warn("Dry run: %s left unchanged (would be %s)", result.Path, result.New)
	}

	return nil
}

// inputSource picks where the increment kind comes from: the positional
// argument when present (no prompt shown), otherwise one line from stdin.
func inputSource(cmd *cobra.Command, args []string) (prompt.InputSource, string) {
	if len(args) > 0 {
		return prompt.StaticInput(args[0]), ""
	}
	return prompt.NewLineReader(cmd.InOrStdin()), prompt.VersionQuestion
}
