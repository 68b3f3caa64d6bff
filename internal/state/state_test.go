package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStateMissingFile(t *testing.T) {
	st := LoadState(filepath.Join(t.TempDir(), "state.json"))

	require.NotNil(t, st.Flags)
	assert.False(t, st.IsCompleted("anything"))
}

func TestStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	st := LoadState(path)
	st.MarkCompleted("atuin_login_completed")
	SaveState(path, st)

	reloaded := LoadState(path)
	assert.True(t, reloaded.IsCompleted("atuin_login_completed"))
	assert.False(t, reloaded.IsCompleted("iterm2_natural_text_editing"))
	assert.NotEmpty(t, reloaded.Flags["atuin_login_completed"].CompletedAt)
}

func TestLoadStateCorruptFileReturnsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	st := LoadState(path)
	require.NotNil(t, st.Flags)
	assert.Empty(t, st.Flags)
}
