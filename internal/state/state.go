package state

import (
	"encoding/json"
	"os"
	"time"

	"setup-mac/internal/logger"
)

// FlagState records when a manual configuration step was confirmed by the user,
// e.g. "atuin_login_completed" or "iterm2_natural_text_editing".
type FlagState struct {
	CompletedAt string `json:"completed_at"` // RFC 3339 timestamp of the confirmation
}

// State holds everything the tool remembers between runs. Manual steps are
// keyed by flag name; once a flag is present the corresponding prompt is never
// shown again.
type State struct {
	Flags map[string]FlagState `json:"flags"`
}

// IsCompleted reports whether the named manual step has been confirmed before.
func (s *State) IsCompleted(flag string) bool {
	_, ok := s.Flags[flag]
	return ok
}

// MarkCompleted records the named manual step as confirmed now.
func (s *State) MarkCompleted(flag string) {
	s.Flags[flag] = FlagState{CompletedAt: time.Now().Format(time.RFC3339)}
	logger.Success("✓ Marked %s as completed\n", flag)
}

// LoadState loads the saved state from a JSON file at the given path.
// If the file does not exist or cannot be read, it returns a new empty State.
// The Flags map is always non-nil.
func LoadState(path string) *State {
	file, err := os.ReadFile(path)
	if err != nil {
		return &State{Flags: make(map[string]FlagState)}
	}

	var st State
	_ = json.Unmarshal(file, &st)

	if st.Flags == nil {
		st.Flags = make(map[string]FlagState)
	}
	return &st
}

// SaveState writes the given State to a JSON file at the given path,
// pretty-printed for readability. Errors are logged but not propagated: losing
// a flag only means a prompt is shown again on the next run.
func SaveState(path string, st *State) {
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		logger.Error("✗ Failed to marshal state: %v\n", err)
		return
	}

	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", path, string(file))

	if err := os.WriteFile(path, file, 0644); err != nil {
		logger.Error("✗ Failed to write state file %s: %v\n", path, err)
	}
}
