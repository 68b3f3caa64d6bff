package shellcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignPluginsSingleLine(t *testing.T) {
	path := writeRC(t, "export ZSH=\"$HOME/.oh-my-zsh\"\nplugins=(git)\nsource $ZSH/oh-my-zsh.sh\n")

	require.NoError(t, AlignPlugins([]string{"git", "macos"}, path))

	assert.Equal(t,
		"export ZSH=\"$HOME/.oh-my-zsh\"\nplugins=(git macos)\nsource $ZSH/oh-my-zsh.sh\n",
		readRC(t, path))
}

func TestAlignPluginsMultiLine(t *testing.T) {
	path := writeRC(t, "before\nplugins=(\n  git\n  docker\n)\nafter\n")

	require.NoError(t, AlignPlugins([]string{"aws", "kubectl"}, path))

	// All three declaration lines collapse into one; surrounding lines untouched.
	assert.Equal(t, "before\nplugins=(aws kubectl)\nafter\n", readRC(t, path))
}

func TestAlignPluginsIndentedDeclaration(t *testing.T) {
	path := writeRC(t, "  plugins=(git)\n")

	require.NoError(t, AlignPlugins([]string{"git"}, path))

	// Matching trims leading whitespace; the rewritten line is unindented.
	assert.Equal(t, "plugins=(git)\n", readRC(t, path))
}

func TestAlignPluginsNoDeclaration(t *testing.T) {
	original := "export EDITOR=vim\nalias ll='ls -al'\n"
	path := writeRC(t, original)

	err := AlignPlugins([]string{"git"}, path)

	require.ErrorIs(t, err, ErrNoDeclaration)
	assert.Equal(t, original, readRC(t, path), "file must be byte-identical on failure")
}

func TestAlignPluginsUnterminatedDeclaration(t *testing.T) {
	original := "plugins=(\n  git\n  docker\n"
	path := writeRC(t, original)

	err := AlignPlugins([]string{"git"}, path)

	require.ErrorIs(t, err, ErrNoDeclaration)
	assert.Equal(t, original, readRC(t, path))
}

func TestAlignPluginsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".zshrc")

	err := AlignPlugins([]string{"git"}, path)

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAlignListOnlyFirstDeclaration(t *testing.T) {
	path := writeRC(t, "plugins=(git)\nother stuff\nplugins=(docker)\n")

	require.NoError(t, AlignList("plugins", []string{"macos"}, path))

	assert.Equal(t, "plugins=(macos)\nother stuff\nplugins=(docker)\n", readRC(t, path))
}

func TestAlignListPreservesOrderAndDuplicates(t *testing.T) {
	path := writeRC(t, "plugins=(git)\n")

	require.NoError(t, AlignList("plugins", []string{"b", "a", "b"}, path))

	assert.Equal(t, "plugins=(b a b)\n", readRC(t, path))
}

func TestAlignListIdempotent(t *testing.T) {
	path := writeRC(t, "plugins=(\n  git\n)\n")
	desired := []string{"git", "macos", "autojump", "fast-syntax-highlighting"}

	require.NoError(t, AlignPlugins(desired, path))
	once := readRC(t, path)

	require.NoError(t, AlignPlugins(desired, path))
	assert.Equal(t, once, readRC(t, path))
}

func TestAlignListGenericName(t *testing.T) {
	path := writeRC(t, "fpath=(\n  $HOME/.zsh/completions\n)\n")

	require.NoError(t, AlignList("fpath", []string{"$HOME/.zsh/completions", "$fpath"}, path))

	assert.Equal(t, "fpath=($HOME/.zsh/completions $fpath)\n", readRC(t, path))
}
