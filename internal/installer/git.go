package installer

import (
	"os/exec"
	"strings"

	"setup-mac/internal/logger"
)

// identityAttempts bounds the re-prompt loops in promptGitIdentity so a canned
// prompter that can never satisfy validation does not loop forever.
const identityAttempts = 3

// SyncGitConfig makes sure git has a global identity. An existing user.name
// and user.email pair is kept untouched; otherwise both are prompted for and
// written along with the tool's defaults: init.defaultBranch main and
// pull.rebase false.
func SyncGitConfig(prompt Prompter) {
	logger.Info("→ Setting up Git configuration...\n")

	existingName := gitGlobal("user.name")
	existingEmail := gitGlobal("user.email")
	if existingName != "" && existingEmail != "" {
		logger.Info("→ Git already configured: %s <%s>\n", existingName, existingEmail)
		logger.Success("✓ Keeping existing Git configuration\n")
		return
	}

	name, email, ok := promptGitIdentity(prompt)
	if !ok {
		logger.Warn("! No valid Git identity supplied; configure it later with git config --global\n")
		return
	}

	settings := [][2]string{
		{"user.name", name},
		{"user.email", email},
		{"init.defaultBranch", "main"},
		{"pull.rebase", "false"},
	}
	for _, kv := range settings {
		cmd := exec.Command("git", "config", "--global", kv[0], kv[1])
		logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
		if output, err := cmd.CombinedOutput(); err != nil {
			logger.Error("✗ Failed to set %s: %v\nOutput: %s\n", kv[0], err, output)
			return
		}
	}

	logger.Success("✓ Git configuration updated: %s <%s>\n", name, email)
	logger.Info("  Default branch: main\n")
	logger.Info("  Pull strategy: merge (not rebase)\n")
}

// promptGitIdentity asks for the commit name and email, re-prompting until
// both pass validation or the attempts run out.
func promptGitIdentity(prompt Prompter) (name, email string, ok bool) {
	name = prompt("Enter your full name (for Git commits): ")
	for i := 1; !validGitName(name); i++ {
		if i == identityAttempts {
			return "", "", false
		}
		name = prompt("Name cannot be empty. Please enter your full name: ")
	}

	email = prompt("Enter your email address (for Git commits): ")
	for i := 1; !validGitEmail(email); i++ {
		if i == identityAttempts {
			return "", "", false
		}
		email = prompt("Please enter a valid email address: ")
	}
	return name, email, true
}

func validGitName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func validGitEmail(email string) bool {
	email = strings.TrimSpace(email)
	return email != "" && strings.Contains(email, "@")
}

// gitGlobal reads one global git config value, returning "" when unset.
func gitGlobal(key string) string {
	output, err := exec.Command("git", "config", "--global", key).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}
