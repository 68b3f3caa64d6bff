package installer

import (
	"os/exec"
	"strings"

	"setup-mac/internal/config"
	"setup-mac/internal/logger"
)

// MAS installs Mac App Store applications through the `mas` CLI. The output of
// `mas list` is cached on the object so it is only queried once per run, with
// an explicit refresh after every successful install.
type MAS struct {
	installed string
	loaded    bool
}

// NewMAS returns a MAS with an unloaded cache.
func NewMAS() *MAS {
	return &MAS{}
}

// InstallApp installs a single App Store app by numeric ID. The name is used
// only for logging. Returns true on success or when already installed.
func (m *MAS) InstallApp(app config.App) bool {
	if !commandExists("mas") {
		logger.Error("✗ mas CLI is not installed. Please install it first.\n")
		return false
	}

	if !m.loaded {
		m.refresh()
	}

	// mas list prints "<id> <name> (<version>)" per line; the ID substring
	// check mirrors how the tool has always detected installed apps.
	if strings.Contains(m.installed, app.ID) {
		logger.Success("✓ %s is already installed\n", app.Name)
		return true
	}

	logger.Info("→ Installing %s from Mac App Store...\n", app.Name)
	cmd := exec.Command("mas", "install", app.ID)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		logger.Error("✗ Failed to install %s: %v\nOutput: %s\n", app.Name, err, output)
		return false
	}

	logger.Success("✓ Installed %s\n", app.Name)
	m.refresh()
	return true
}

// refresh re-reads the installed app list. Failures leave the previous cache in
// place so a flaky `mas list` does not forget earlier results.
func (m *MAS) refresh() {
	output, err := exec.Command("mas", "list").Output()
	if err != nil {
		logger.Debug("[DEBUG] mas list failed: %v\n", err)
		m.loaded = true
		return
	}
	m.installed = string(output)
	m.loaded = true
}

// SyncApps installs every configured App Store app in order.
func SyncApps(apps []config.App, m *MAS) {
	for _, app := range apps {
		m.InstallApp(app)
	}
}
