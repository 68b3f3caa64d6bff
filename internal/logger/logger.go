package logger

import (
	"github.com/fatih/color" // Colored console output
)

// Colorized printing functions for the different message levels. These are
// package-level variables holding functions that behave like fmt.Printf, colored
// to match the terminal output of the original provisioning scripts: green for
// completed steps, blue for progress, yellow for warnings, red for failures.

// Success logs a completed provisioning step in green.
var Success = color.New(color.FgGreen).PrintfFunc()

// Info logs progress messages in blue.
var Info = color.New(color.FgBlue).PrintfFunc()

// Warn logs warning messages in yellow, for steps that were skipped or need
// manual attention but do not abort the run.
var Warn = color.New(color.FgYellow).PrintfFunc()

// Error logs failures in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs diagnostic messages in cyan when enabled via Init. It defaults to
// a no-op so packages may log before Init runs (and so may their tests).
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging.
// When enabled, Debug prints cyan-colored messages; when disabled it stays a no-op.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
