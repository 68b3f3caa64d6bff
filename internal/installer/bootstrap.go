package installer

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"setup-mac/internal/logger"
	"setup-mac/internal/state"
)

// nodeBootstrapScript loads nvm and installs the current Node.js LTS release.
// It runs through a shell because nvm is a shell function, not a binary.
const nodeBootstrapScript = `export NVM_DIR="$HOME/.nvm"
[ -s "/opt/homebrew/opt/nvm/nvm.sh" ] && \. "/opt/homebrew/opt/nvm/nvm.sh"
nvm install --lts`

// BootstrapNode installs the Node.js LTS release through nvm after the nvm
// formula itself has been installed.
func BootstrapNode() {
	logger.Info("→ Installing Node.js LTS via nvm...\n")
	if err := os.MkdirAll(filepath.Join(os.Getenv("HOME"), ".nvm"), 0755); err != nil {
		logger.Error("✗ Failed to create ~/.nvm: %v\n", err)
		return
	}
	cmd := exec.Command("/bin/zsh", "-c", nodeBootstrapScript)
	if output, err := cmd.CombinedOutput(); err != nil {
		logger.Error("✗ nvm install --lts failed: %v\nOutput: %s\n", err, output)
		return
	}
	logger.Success("✓ Node.js LTS installed\n")
}

// BootstrapPipx registers the pipx binary directory on PATH.
func BootstrapPipx() {
	if !commandExists("pipx") {
		logger.Warn("! pipx is not installed; skipping ensurepath\n")
		return
	}
	if output, err := exec.Command("pipx", "ensurepath").CombinedOutput(); err != nil {
		logger.Error("✗ pipx ensurepath failed: %v\nOutput: %s\n", err, output)
		return
	}
	logger.Success("✓ pipx paths configured\n")
}

// BootstrapColima starts the Colima VM with 4 CPUs and 8GB memory unless it is
// already running.
func BootstrapColima() {
	if !commandExists("colima") {
		logger.Warn("! colima is not installed; skipping VM start\n")
		return
	}

	status, _ := exec.Command("colima", "status").CombinedOutput()
	if !colimaNeedsStart(string(status)) {
		logger.Success("✓ Colima is already running\n")
		return
	}

	logger.Info("→ Starting Colima with 4 CPUs and 8GB memory...\n")
	if output, err := exec.Command("colima", "start", "--cpu", "4", "--memory", "8").CombinedOutput(); err != nil {
		logger.Error("✗ colima start failed: %v\nOutput: %s\n", err, output)
		return
	}
	logger.Success("✓ Docker CLI and Colima configured (4 CPUs, 8GB memory)\n")
}

// colimaNeedsStart reports whether `colima status` output indicates the VM is
// not running yet.
func colimaNeedsStart(status string) bool {
	return !strings.Contains(status, "Running")
}

// SetupAtuin installs Atuin when missing (importing existing shell history
// right after the install), then gates `atuin sync` behind a one-time login
// confirmation. The shell integration section itself comes from shell.yaml.
func SetupAtuin(st *state.State, prompt Prompter) {
	logger.Info("→ Setting up Atuin...\n")

	if commandExists("atuin") {
		logger.Success("✓ Atuin is already installed\n")
	} else {
		logger.Info("→ Installing Atuin...\n")
		cmd := exec.Command("/bin/sh", "-c",
			"curl --proto '=https' --tlsv1.2 -LsSf https://setup.atuin.sh | sh")
		if output, err := cmd.CombinedOutput(); err != nil {
			logger.Error("✗ Atuin installation failed: %v\nOutput: %s\n", err, output)
			return
		}
		logger.Info("→ Importing shell history...\n")
		if output, err := exec.Command("atuin", "import", "auto").CombinedOutput(); err != nil {
			logger.Warn("! atuin import failed: %v\nOutput: %s\n", err, output)
		}
	}

	if confirmAtuinLogin(st, prompt) {
		if output, err := exec.Command("atuin", "sync").CombinedOutput(); err != nil {
			logger.Warn("! atuin sync failed: %v\nOutput: %s\n", err, output)
		}
	}
}

// confirmAtuinLogin runs the one-time Atuin login confirmation and reports
// whether a sync should happen now. A login confirmed on an earlier run means
// no prompt and no new sync.
func confirmAtuinLogin(st *state.State, prompt Prompter) bool {
	if st.IsCompleted("atuin_login_completed") {
		return false
	}
	return ConfirmManualStep("atuin_login_completed", "Atuin sync",
		[]string{
			"1. Open a new terminal",
			"2. Run: atuin register -u <USERNAME> -e <EMAIL>",
			"3. Or login with: atuin login -u <USERNAME>",
			"Note: this step is optional. Atuin works locally without login.",
		}, true, st, prompt)
}
