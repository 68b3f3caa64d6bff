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

// Brew installs Homebrew formulae and casks. It keeps an explicit cache of the
// installed package lists so `brew list` only runs once per run per package
// type; the cache is refreshed after every mutating install.
type Brew struct {
	formulae map[string]bool
	casks    map[string]bool
}

// NewBrew returns a Brew with empty caches; they are populated lazily on the
// first Install call for each package type.
func NewBrew() *Brew {
	return &Brew{}
}

// Install installs a single Homebrew package or cask, skipping packages that
// are already installed. Returns true on success (including the already-
// installed case).
func (b *Brew) Install(pkg config.Package) bool {
	pkgType := pkg.Type
	if pkgType == "" {
		pkgType = "formula"
	}

	if b.installed(pkg.Name, pkgType) {
		logger.Success("✓ %s is already installed\n", pkg.Name)
		return true
	}

	args := []string{"install"}
	if pkgType == "cask" {
		args = append(args, "--cask")
	}
	args = append(args, pkg.Name)

	logger.Info("→ Installing %s...\n", pkg.Name)
	cmd := exec.Command("brew", args...)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		logger.Error("✗ Failed to install %s: %v\nOutput: %s\n", pkg.Name, err, output)
		return false
	}

	logger.Success("✓ Installed %s\n", pkg.Name)
	b.refresh(pkgType)
	return true
}

// installed reports whether the package is in the cached installed list,
// loading the cache on first use.
func (b *Brew) installed(name, pkgType string) bool {
	cache := b.cacheFor(pkgType)
	if *cache == nil {
		b.refresh(pkgType)
	}
	return (*cache)[name]
}

// refresh re-reads the installed package list for the given type from brew.
// A failing `brew list` leaves an empty cache, so installs are attempted anyway.
func (b *Brew) refresh(pkgType string) {
	args := []string{"list"}
	if pkgType == "cask" {
		args = append(args, "--cask")
	}

	cache := make(map[string]bool)
	output, err := exec.Command("brew", args...).Output()
	if err != nil {
		logger.Debug("[DEBUG] brew list failed (%v); assuming nothing installed\n", err)
	} else {
		for _, name := range strings.Fields(string(output)) {
			cache[name] = true
		}
	}
	*b.cacheFor(pkgType) = cache
}

func (b *Brew) cacheFor(pkgType string) *map[string]bool {
	if pkgType == "cask" {
		return &b.casks
	}
	return &b.formulae
}

// InstallHomebrew bootstraps Homebrew itself when missing and makes sure the
// shellenv hook is present in ~/.zprofile as a managed section.
func InstallHomebrew() {
	// Configure Homebrew in the login shell profile regardless; a fresh run has
	// already cleaned managed sections from it.
	zprofile := filepath.Join(os.Getenv("HOME"), ".zprofile")
	if err := shellcfg.AppendBlock("Homebrew setup",
		[]string{`eval "$(/opt/homebrew/bin/brew shellenv)"`}, zprofile); err != nil {
		logger.Error("✗ Failed to update %s: %v\n", zprofile, err)
	}

	if commandExists("brew") {
		logger.Success("✓ Homebrew is already installed\n")
		return
	}

	logger.Info("→ Installing Homebrew...\n")
	cmd := exec.Command("/bin/bash", "-c",
		`/bin/bash -c "$(curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh)"`)
	output, err := cmd.CombinedOutput()
	if err != nil {
		logger.Error("✗ Homebrew installation failed: %v\nOutput: %s\n", err, output)
		return
	}
	logger.Success("✓ Homebrew installed successfully\n")
}
