package installer

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"setup-mac/internal/config"
	"setup-mac/internal/logger"
	"setup-mac/internal/shellcfg"
)

// RCPath resolves the shell rc file provisioning writes to: the configured
// rc_file if set, otherwise the detected shell's default.
func RCPath(sh config.Shell) string {
	if sh.RCFile != "" {
		return sh.RCFile
	}
	rc := ".zshrc"
	if detectShell() == "bash" {
		rc = ".bashrc"
	}
	return filepath.Join(os.Getenv("HOME"), rc)
}

// detectShell identifies the user's shell from the SHELL environment variable.
// Returns "zsh" or "bash", defaulting to zsh.
func detectShell() string {
	shell := os.Getenv("SHELL")
	logger.Debug("[DEBUG] Detected shell environment: %s\n", shell)

	if strings.Contains(shell, "zsh") {
		return "zsh"
	} else if strings.Contains(shell, "bash") {
		return "bash"
	}
	return "zsh"
}

// SyncPackages installs every configured Homebrew package in order. Failures
// are logged per package and do not stop the run.
func SyncPackages(packages []config.Package, brew *Brew) {
	for _, pkg := range packages {
		brew.Install(pkg)
	}
}

// SyncShell appends every configured section to the rc file and, when a plugin
// list is configured, aligns the plugins=(...) declaration to match. Sections
// are append-only; a full provisioning run removes all managed sections first.
func SyncShell(sh config.Shell) {
	rc := RCPath(sh)

	for _, section := range sh.Sections {
		if err := shellcfg.AppendBlock(section.Description, section.Lines, rc); err != nil {
			logger.Error("✗ Failed to add section %q to %s: %v\n", section.Description, rc, err)
		}
	}

	if len(sh.Plugins) > 0 {
		if err := shellcfg.AlignPlugins(sh.Plugins, rc); err != nil {
			logger.Error("✗ Failed to align plugins: %v\n", err)
		}
	}
}

// InstallOhMyZsh installs Oh My Zsh via its official installer unless the
// ~/.oh-my-zsh directory already exists.
func InstallOhMyZsh() {
	omzDir := filepath.Join(os.Getenv("HOME"), ".oh-my-zsh")
	if _, err := os.Stat(omzDir); err == nil {
		logger.Success("✓ Oh My Zsh is already installed\n")
		return
	}

	logger.Info("→ Installing Oh My Zsh...\n")
	cmd := exec.Command("sh", "-c",
		`sh -c "$(curl -fsSL https://raw.githubusercontent.com/ohmyzsh/ohmyzsh/master/tools/install.sh)" "" --unattended`)
	output, err := cmd.CombinedOutput()
	if err != nil {
		logger.Error("✗ Oh My Zsh installation failed: %v\nOutput: %s\n", err, output)
		return
	}
	logger.Success("✓ Oh My Zsh installed successfully\n")
}

// InstallZshPlugin clones a zsh plugin repository into the oh-my-zsh custom
// plugins directory unless it is already present. The plugin still has to be
// listed in shell.plugins to be activated.
func InstallZshPlugin(name, repoURL string) {
	pluginDir := filepath.Join(zshCustomDir(), "plugins", name)
	if _, err := os.Stat(pluginDir); err == nil {
		logger.Success("✓ %s is already installed\n", name)
		return
	}

	logger.Info("→ Cloning %s...\n", name)
	cmd := exec.Command("git", "clone", "--depth=1", repoURL, pluginDir)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		logger.Error("✗ Failed to clone %s: %v\nOutput: %s\n", name, err, output)
		return
	}
	logger.Success("✓ %s installed successfully\n", name)
}

// zshCustomDir resolves $ZSH_CUSTOM, defaulting to ~/.oh-my-zsh/custom.
func zshCustomDir() string {
	if custom := os.Getenv("ZSH_CUSTOM"); custom != "" {
		return custom
	}
	return filepath.Join(os.Getenv("HOME"), ".oh-my-zsh", "custom")
}
