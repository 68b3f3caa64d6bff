package main

import (
	"setup-mac/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// The setup-mac project is a macOS workstation provisioning tool that:
//   - Reads a YAML configuration describing Homebrew packages, Mac App Store apps,
//     shell configuration sections, zsh plugins, SSH settings, and cron jobs
//   - Maintains named, marker-delimited sections inside the user's shell rc file,
//     cleaning them all up and re-appending them on each full provisioning run
//   - Reconciles the `plugins=(...)` declaration in .zshrc against the configured list
//   - Installs packages with `brew` and App Store apps with `mas`, skipping anything
//     already present on the machine
//   - Generates or restores an SSH key, wires it into ssh-agent and ~/.ssh/config,
//     and schedules periodic SSH key backups through the user's crontab
//   - Tracks manual confirmation steps in a JSON state file so interactive prompts
//     are only shown once
//
// Error handling strategy:
//   - Individual provisioning steps log their failures and the run continues,
//     applying as many configuration changes as possible in one pass
//   - Unreadable configuration is fatal; there is nothing sensible to do without it
func main() {
	cmd.Execute()
}
