package installer

import (
	"crypto/rand"
	"math/big"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"setup-mac/internal/config"
	"setup-mac/internal/logger"
)

// sshConfigSentinel marks the ~/.ssh/config stanza written by this tool so it
// is only appended once.
const sshConfigSentinel = "# Configured by setup-mac"

// sshConfigBlock is the Host stanza appended to ~/.ssh/config: macOS keychain
// integration plus keepalives.
const sshConfigBlock = sshConfigSentinel + `
Host *
  AddKeysToAgent yes
  UseKeychain yes
  IdentityFile ~/.ssh/id_ed25519
  ServerAliveInterval 60
  ServerAliveCountMax 3
`

// SyncSSH makes sure an SSH key exists (restoring from backup or generating a
// fresh one), wires it into ssh-agent and ~/.ssh/config, and schedules the
// periodic backup cron job when configured.
func SyncSSH(cfg config.SSH, prompt Prompter, ct Crontab) {
	logger.Info("→ Setting up SSH key...\n")

	home := os.Getenv("HOME")
	sshDir := filepath.Join(home, ".ssh")
	if err := os.MkdirAll(sshDir, 0700); err != nil {
		logger.Error("✗ Failed to create %s: %v\n", sshDir, err)
		return
	}

	keyType := cfg.KeyType
	if keyType == "" {
		keyType = "ed25519"
	}
	keyPath := filepath.Join(sshDir, "id_"+keyType)

	if _, err := os.Stat(keyPath); err == nil {
		logger.Success("✓ SSH key already exists at %s\n", keyPath)
		addKeyToAgent(keyPath)
	} else if restoreFromBackup(cfg.BackupDir, home, sshDir, prompt) {
		addKeyToAgent(keyPath)
	} else {
		generateKey(keyPath, keyType, cfg.KeyComment)
	}

	setupSSHConfig(sshDir)

	if cfg.BackupSchedule != "" && cfg.BackupCommand != "" {
		ct.AddJob(config.CronJob{
			Schedule:    cfg.BackupSchedule,
			Command:     cfg.BackupCommand,
			Description: "SSH key backup",
		})
	}
}

// restoreFromBackup offers to restore SSH keys from the newest ssh_backup_*
// archive in backupDir. Returns true when a backup was restored.
func restoreFromBackup(backupDir, home, sshDir string, prompt Prompter) bool {
	if backupDir == "" {
		return false
	}
	backupDir = os.ExpandEnv(backupDir)

	var backups []string
	for _, ext := range []string{".zip", ".7z", ".tar.gz", ".tar.xz"} {
		matches, _ := filepath.Glob(filepath.Join(backupDir, "ssh_backup_*"+ext))
		backups = append(backups, matches...)
	}
	if len(backups) == 0 {
		return false
	}

	// Backup names embed a timestamp, so the lexicographically greatest is the
	// most recent.
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	newest := backups[0]

	logger.Info("→ Found %d SSH backup(s), most recent: %s\n", len(backups), filepath.Base(newest))
	if prompt("Would you like to restore from backup? (yes/no): ", "yes", "no") != "yes" {
		return false
	}

	logger.Info("→ Restoring SSH keys from backup...\n")
	// Archives store paths relative to the home directory (".ssh/...").
	if err := extractArchive(newest, home); err != nil {
		logger.Error("✗ Failed to restore backup %s: %v\n", newest, err)
		return false
	}

	if err := fixSSHPermissions(sshDir); err != nil {
		logger.Warn("! Could not fix permissions under %s: %v\n", sshDir, err)
	}
	logger.Success("✓ SSH keys restored from backup\n")
	return true
}

// fixSSHPermissions restores the permissions SSH insists on: 0700 on the
// directory, 0600 on private keys, 0644 on public keys.
func fixSSHPermissions(sshDir string) error {
	if err := os.Chmod(sshDir, 0700); err != nil {
		return err
	}
	entries, err := os.ReadDir(sshDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "id_") {
			continue
		}
		mode := os.FileMode(0600)
		if strings.HasSuffix(entry.Name(), ".pub") {
			mode = 0644
		}
		if err := os.Chmod(filepath.Join(sshDir, entry.Name()), mode); err != nil {
			return err
		}
	}
	return nil
}

// generateKey creates a new passphrase-protected key with ssh-keygen. The
// generated passphrase is printed once so the user can store it in a password
// manager; it is not persisted anywhere by the tool.
func generateKey(keyPath, keyType, comment string) {
	passphrase, err := randomPassphrase(32)
	if err != nil {
		logger.Error("✗ Failed to generate passphrase: %v\n", err)
		return
	}
	if comment == "" {
		comment = os.Getenv("USER") + "@" + hostname()
	}

	logger.Info("→ Generating new %s SSH key...\n", keyType)
	cmd := exec.Command("ssh-keygen", "-t", keyType, "-f", keyPath, "-N", passphrase, "-C", comment)
	output, err := cmd.CombinedOutput()
	if err != nil {
		logger.Error("✗ ssh-keygen failed: %v\nOutput: %s\n", err, output)
		return
	}

	logger.Success("✓ SSH key generated at %s\n", keyPath)
	logger.Warn("! Key passphrase (store it in your password manager now): %s\n", passphrase)

	addKeyToAgent(keyPath)
}

// addKeyToAgent loads the key into ssh-agent with macOS keychain integration,
// skipping the call when the key's fingerprint is already loaded.
func addKeyToAgent(keyPath string) {
	if agentKeys, err := exec.Command("ssh-add", "-l").Output(); err == nil {
		if fp, err := exec.Command("ssh-keygen", "-lf", keyPath).Output(); err == nil {
			fields := strings.Fields(string(fp))
			if len(fields) > 1 && strings.Contains(string(agentKeys), fields[1]) {
				logger.Success("✓ %s is already in ssh-agent\n", filepath.Base(keyPath))
				return
			}
		}
	}

	logger.Info("→ Adding %s to ssh-agent...\n", filepath.Base(keyPath))
	output, err := exec.Command("ssh-add", "--apple-use-keychain", keyPath).CombinedOutput()
	if err != nil {
		logger.Warn("! Could not add %s to ssh-agent: %v\nOutput: %s\n", filepath.Base(keyPath), err, output)
		return
	}
	logger.Success("✓ %s added to ssh-agent\n", filepath.Base(keyPath))
}

// setupSSHConfig appends the managed Host stanza to ~/.ssh/config unless the
// sentinel comment shows it is already there.
func setupSSHConfig(sshDir string) {
	configFile := filepath.Join(sshDir, "config")

	existing := ""
	if raw, err := os.ReadFile(configFile); err == nil {
		existing = string(raw)
	}

	merged, changed := mergeSSHConfig(existing, sshConfigBlock)
	if !changed {
		logger.Info("→ SSH config already configured by setup-mac\n")
		return
	}

	if err := os.WriteFile(configFile, []byte(merged), 0600); err != nil {
		logger.Error("✗ Failed to write %s: %v\n", configFile, err)
		return
	}
	if existing == "" {
		logger.Info("→ Created new SSH config\n")
	} else {
		logger.Info("→ Added SSH config to existing file\n")
	}
}

// mergeSSHConfig appends block to existing unless the sentinel is already
// present. Existing content is separated from the block by a blank line.
func mergeSSHConfig(existing, block string) (merged string, changed bool) {
	if strings.Contains(existing, sshConfigSentinel) {
		return existing, false
	}
	if existing == "" {
		return block, true
	}
	if !strings.HasSuffix(existing, "\n") {
		existing += "\n"
	}
	return existing + "\n" + block, true
}

// randomPassphrase returns a cryptographically random passphrase of length n
// drawn from letters, digits, and punctuation.
func randomPassphrase(n int) (string, error) {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
		"!#$%&()*+,-./:;<=>?@[]^_{|}~"
	var b strings.Builder
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", err
		}
		b.WriteByte(alphabet[idx.Int64()])
	}
	return b.String(), nil
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "mac"
	}
	return name
}
