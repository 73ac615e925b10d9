// Package display provides output formatting for bumpver.
//
// Every line is rendered through a lipgloss renderer bound to the destination
// writer, so colors appear on terminals and plain text everywhere else (pipes,
// files, test buffers).
package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/concave-dev/bumpver/internal/manifest"
)

var (
	successColor = lipgloss.Color("#60F281") // Light green, matches SUCCESS logs
	dryRunColor  = lipgloss.Color("#42E7FF") // Light blue, matches INFO logs
	failureColor = lipgloss.Color("#FF4473") // Light red, matches ERROR logs
)

// SuccessLine formats the confirmation printed after a manifest was rewritten.
func SuccessLine(oldVersion, newVersion string) string {
	return fmt.Sprintf("✅ Successfully updated version: %s → %s", oldVersion, newVersion)
}

// DryRunLine formats the report printed when --dry-run skipped the write.
func DryRunLine(oldVersion, newVersion string) string {
	return fmt.Sprintf("🔎 Would update version: %s → %s", oldVersion, newVersion)
}

// Result prints the outcome of a successful update to w.
func Result(w io.Writer, result manifest.Result) {
	if result.Written {
		printLine(w, successColor, SuccessLine(result.Old, result.New))
		return
	}
	printLine(w, dryRunColor, DryRunLine(result.Old, result.New))
}

// Failure prints err to w, normally stderr.
func Failure(w io.Writer, err error) {
	printLine(w, failureColor, "❌ "+err.Error())
}

func printLine(w io.Writer, color lipgloss.Color, line string) {
	style := lipgloss.NewRenderer(w).NewStyle().Foreground(color)
	fmt.Fprintln(w, style.Render(line))
}
