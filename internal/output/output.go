// Package output provides styled terminal output for the mvnscout CLI.
//
// Everything here writes to stderr: stdout is reserved for the data the
// tool produces (project paths, generated documents), so it stays safe
// to pipe.
package output

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
)

// SetVerbose enables or disables verbose output for debugging.
// The CLI calls this when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a success message in green.
func Success(msg string) {
	fmt.Fprintln(os.Stderr, successStyle.Render("✔ "+msg))
}

// Error prints an error message in red.
func Error(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✖ "+msg))
}

// Warn prints a warning in yellow. Non-fatal traversal problems are
// routed here by the commands.
func Warn(msg string) {
	fmt.Fprintln(os.Stderr, warnStyle.Render("⚠ "+msg))
}

// Info prints an informational message in cyan.
func Info(msg string) {
	fmt.Fprintln(os.Stderr, infoStyle.Render(msg))
}

// Step prints an indented step message in gray. Use this for actionable
// next steps or sub-items.
func Step(msg string) {
	fmt.Fprintln(os.Stderr, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message only if verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(os.Stderr, stepStyle.Render("· "+msg))
	}
}
