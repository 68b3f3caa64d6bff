package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "config.yaml", `
config:
  packages_file: packages.yaml
  apps_file: apps.yaml
  shell_file: shell.yaml
  cron_file: cron.yaml
  ssh_file: ssh.yaml
`)
	writeFile(t, dir, "packages.yaml", `
packages:
  - name: fzf
    type: formula
  - name: iterm2
    type: cask
`)
	writeFile(t, dir, "apps.yaml", `
apps:
  - id: "441258766"
    name: Magnet
`)
	writeFile(t, dir, "shell.yaml", `
shell:
  sections:
    - description: fzf shell integration
      lines:
        - source <(fzf --zsh)
  plugins:
    - git
    - macos
`)
	writeFile(t, dir, "cron.yaml", `
cron:
  - schedule: "0 9 * * *"
    command: /usr/local/bin/backup.sh
    description: Daily backup
`)
	writeFile(t, dir, "ssh.yaml", `
ssh:
  key_type: ed25519
  backup_schedule: "0 10 * * 1"
  backup_command: setup-mac ssh backup
`)

	cfg := LoadConfig(filepath.Join(dir, "config.yaml"))

	require.Len(t, cfg.Packages, 2)
	assert.Equal(t, Package{Name: "fzf", Type: "formula"}, cfg.Packages[0])
	assert.Equal(t, Package{Name: "iterm2", Type: "cask"}, cfg.Packages[1])

	require.Len(t, cfg.Apps, 1)
	assert.Equal(t, App{ID: "441258766", Name: "Magnet"}, cfg.Apps[0])

	require.Len(t, cfg.Shell.Sections, 1)
	assert.Equal(t, "fzf shell integration", cfg.Shell.Sections[0].Description)
	assert.Equal(t, []string{"source <(fzf --zsh)"}, cfg.Shell.Sections[0].Lines)
	assert.Equal(t, []string{"git", "macos"}, cfg.Shell.Plugins)

	require.Len(t, cfg.Cron, 1)
	assert.Equal(t, "0 9 * * *", cfg.Cron[0].Schedule)

	assert.Equal(t, "ed25519", cfg.SSH.KeyType)
	assert.Equal(t, "setup-mac ssh backup", cfg.SSH.BackupCommand)
}

func TestLoadConfigSkipsUnreferencedConcerns(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "config.yaml", `
config:
  shell_file: shell.yaml
`)
	writeFile(t, dir, "shell.yaml", `
shell:
  plugins: [git]
`)

	cfg := LoadConfig(filepath.Join(dir, "config.yaml"))

	assert.Empty(t, cfg.Packages)
	assert.Empty(t, cfg.Apps)
	assert.Empty(t, cfg.Cron)
	assert.Equal(t, []string{"git"}, cfg.Shell.Plugins)
}

func TestLoadConfigMissingMainFilePanics(t *testing.T) {
	assert.Panics(t, func() {
		LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	})
}
