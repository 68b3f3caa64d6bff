package shellcfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRC(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".zshrc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readRC(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(raw)
}

func TestRemoveAllBlocksMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".zshrc")

	require.NoError(t, RemoveAllBlocks(path))

	// Still absent: nothing to clean is not an error and creates nothing.
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveAllBlocksStripsManagedSections(t *testing.T) {
	path := writeRC(t, strings.Join([]string{
		"export PATH=$PATH:/usr/local/bin",
		StartMarker("fzf shell integration"),
		"source <(fzf --zsh)",
		EndMarker("fzf shell integration"),
		"alias gs='git status'",
		"",
	}, "\n"))

	require.NoError(t, RemoveAllBlocks(path))

	assert.Equal(t, "export PATH=$PATH:/usr/local/bin\nalias gs='git status'\n", readRC(t, path))
}

func TestRemoveAllBlocksCollapsesBlankRuns(t *testing.T) {
	path := writeRC(t, "a\n\n\n\nb\n\n\nc\n")

	require.NoError(t, RemoveAllBlocks(path))

	assert.Equal(t, "a\n\nb\n\nc\n", readRC(t, path))
}

func TestRemoveAllBlocksKeepsLeadingBlankLine(t *testing.T) {
	path := writeRC(t, "\n\nfirst\n")

	require.NoError(t, RemoveAllBlocks(path))

	// A blank line may open the file, but the run is still collapsed to one.
	assert.Equal(t, "\nfirst\n", readRC(t, path))
}

func TestRemoveAllBlocksNoConsecutiveBlanksAfterSectionRemoval(t *testing.T) {
	path := writeRC(t, strings.Join([]string{
		"before",
		"",
		StartMarker("pyenv setup"),
		`export PYENV_ROOT="$HOME/.pyenv"`,
		EndMarker("pyenv setup"),
		"",
		"after",
		"",
	}, "\n"))

	require.NoError(t, RemoveAllBlocks(path))

	out := readRC(t, path)
	assert.Equal(t, "before\n\nafter\n", out)
	assert.NotContains(t, out, "\n\n\n")
}

func TestRemoveAllBlocksUnterminatedSectionDropsToEOF(t *testing.T) {
	path := writeRC(t, strings.Join([]string{
		"keep me",
		StartMarker("broken section"),
		"orphaned line one",
		"orphaned line two",
	}, "\n")+"\n")

	require.NoError(t, RemoveAllBlocks(path))

	assert.Equal(t, "keep me\n", readRC(t, path))
}

func TestRemoveAllBlocksStrayEndMarkerIgnored(t *testing.T) {
	path := writeRC(t, "keep\n"+EndMarker("never opened")+"\nalso keep\n")

	require.NoError(t, RemoveAllBlocks(path))

	assert.Equal(t, "keep\nalso keep\n", readRC(t, path))
}

func TestRemoveAllBlocksNestedStartIsIdempotent(t *testing.T) {
	path := writeRC(t, strings.Join([]string{
		"outside",
		StartMarker("outer"),
		"inner one",
		StartMarker("inner"), // start while already inside: flag simply stays set
		"inner two",
		EndMarker("inner"),
		"still dropped",
		EndMarker("outer"),
		"outside again",
	}, "\n")+"\n")

	require.NoError(t, RemoveAllBlocks(path))

	// "still dropped" survives: the first END closed the section. That matches
	// the strictly non-nested contract of the scanner.
	assert.Equal(t, "outside\nstill dropped\noutside again\n", readRC(t, path))
}

func TestRemoveAllBlocksIdempotent(t *testing.T) {
	path := writeRC(t, strings.Join([]string{
		"",
		"one",
		"",
		"",
		StartMarker("Atuin shell history"),
		`eval "$(atuin init zsh --disable-up-arrow)"`,
		EndMarker("Atuin shell history"),
		"two",
	}, "\n")+"\n")

	require.NoError(t, RemoveAllBlocks(path))
	once := readRC(t, path)

	require.NoError(t, RemoveAllBlocks(path))
	assert.Equal(t, once, readRC(t, path))
}

func TestAppendBlockToMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".zshrc")

	require.NoError(t, AppendBlock("Homebrew setup", []string{`eval "$(/opt/homebrew/bin/brew shellenv)"`}, path))

	want := StartMarker("Homebrew setup") + "\n" +
		`eval "$(/opt/homebrew/bin/brew shellenv)"` + "\n" +
		EndMarker("Homebrew setup") + "\n"
	assert.Equal(t, want, readRC(t, path))
}

func TestAppendBlockSeparatesFromExistingContent(t *testing.T) {
	path := writeRC(t, "export EDITOR=vim") // no trailing newline

	require.NoError(t, AppendBlock("fzf shell integration", []string{"source <(fzf --zsh)"}, path))

	want := "export EDITOR=vim\n\n" +
		StartMarker("fzf shell integration") + "\n" +
		"source <(fzf --zsh)\n" +
		EndMarker("fzf shell integration") + "\n"
	assert.Equal(t, want, readRC(t, path))
}

func TestAppendBlockDoesNotDeduplicate(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".zshrc")

	require.NoError(t, AppendBlock("pyenv setup", []string{`eval "$(pyenv init -)"`}, path))
	require.NoError(t, AppendBlock("pyenv setup", []string{`eval "$(pyenv init -)"`}, path))

	out := readRC(t, path)
	assert.Equal(t, 2, strings.Count(out, StartMarker("pyenv setup")))
	assert.Equal(t, 2, strings.Count(out, EndMarker("pyenv setup")))
}

func TestAppendBlockTwoDistinctSectionsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".zshrc")

	require.NoError(t, AppendBlock("NVM setup", []string{`export NVM_DIR="$HOME/.nvm"`}, path))
	require.NoError(t, AppendBlock("Android SDK", []string{"export ANDROID_HOME=$HOME/Library/Android/sdk"}, path))

	out := readRC(t, path)
	first := strings.Index(out, StartMarker("NVM setup"))
	second := strings.Index(out, StartMarker("Android SDK"))
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)

	// Each section is independently removable: stripping both leaves nothing.
	require.NoError(t, RemoveAllBlocks(path))
	assert.Equal(t, "\n", readRC(t, path))
}

func TestRemoveThenAppendRoundTrip(t *testing.T) {
	path := writeRC(t, "export LANG=en_US.UTF-8\n")
	section := []string{
		`export AUTHJUMP_CONFIG="$HOME/.authjump/config"`,
		"source $(brew --prefix)/opt/authjump/share/authjump/authjump.zsh",
	}

	require.NoError(t, AppendBlock("authjump", section, path))
	before := readRC(t, path)

	// A fresh run: cleanup then re-append reproduces exactly one instance.
	require.NoError(t, RemoveAllBlocks(path))
	require.NoError(t, AppendBlock("authjump", section, path))

	assert.Equal(t, before, readRC(t, path))
	assert.Equal(t, 1, strings.Count(readRC(t, path), StartMarker("authjump")))
}
