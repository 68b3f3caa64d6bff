package installer

import (
	"bufio"
	"io"
	"os/exec"
	"strings"

	"setup-mac/internal/logger"
	"setup-mac/internal/state"
)

// Prompter blocks until the user supplies one of the accepted answers (compared
// case-insensitively) and returns the answer in lower case. With no accepted
// answers, the first line read is returned trimmed but otherwise as typed.
//
// The shellcfg core never prompts; prompting belongs to the orchestration layer
// only, so provisioning logic stays testable against in-memory text. Tests and
// the --yes flag inject a canned Prompter instead of the terminal one.
type Prompter func(message string, accepted ...string) string

// TerminalPrompter returns a Prompter reading answers from r (normally stdin).
func TerminalPrompter(r io.Reader) Prompter {
	reader := bufio.NewReader(r)
	return func(message string, accepted ...string) string {
		for {
			logger.Warn("%s", message)
			line, err := reader.ReadString('\n')
			answer := strings.TrimSpace(line)
			if len(accepted) == 0 {
				return answer
			}
			lowered := strings.ToLower(answer)
			for _, ok := range accepted {
				if lowered == strings.ToLower(ok) {
					return lowered
				}
			}
			if err != nil {
				// Input exhausted; fall back to the first accepted answer
				// rather than spinning forever on EOF.
				return strings.ToLower(accepted[0])
			}
		}
	}
}

// NonInteractivePrompter answers every constrained prompt with its first
// accepted answer and every free-form prompt with defaultAnswer. Used by the
// --yes flag.
func NonInteractivePrompter(defaultAnswer string) Prompter {
	return func(message string, accepted ...string) string {
		if len(accepted) > 0 {
			return strings.ToLower(accepted[0])
		}
		return defaultAnswer
	}
}

// ConfirmManualStep shows instructions for a manual configuration step and
// waits until the user types "done" (or "skip", when allowSkip is set). The
// confirmation is recorded in the state file so the step is only ever asked
// once per machine. Returns true when the step is, or already was, completed.
func ConfirmManualStep(flag, title string, instructions []string, allowSkip bool, st *state.State, prompt Prompter) bool {
	if st.IsCompleted(flag) {
		logger.Success("✓ %s already configured\n", title)
		return true
	}

	logger.Warn("\n⚠️  MANUAL CONFIGURATION REQUIRED: %s\n", title)
	for _, line := range instructions {
		logger.Info("  %s\n", line)
	}

	accepted := []string{"done"}
	message := "Type 'done' when you have completed this step: "
	if allowSkip {
		accepted = append(accepted, "skip")
		message = "Type 'done' when you have completed this step (or 'skip' to continue): "
	}

	if prompt(message, accepted...) == "skip" {
		logger.Info("→ Skipping %s — you can set it up later\n", title)
		return false
	}

	st.MarkCompleted(flag)
	logger.Success("✓ %s completed\n", title)
	return true
}

// commandExists reports whether the named executable is on PATH.
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
