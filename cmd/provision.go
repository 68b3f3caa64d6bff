package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"setup-mac/internal/config"
	"setup-mac/internal/installer"
	"setup-mac/internal/logger"
	"setup-mac/internal/shellcfg"
	"setup-mac/internal/state"
)

// configPath holds the path to the main configuration YAML file.
// It's passed via the `--config` or `-c` flag.
var configPath string

// statePath is the path to the persistent state file tracking confirmed
// manual steps.
var statePath string

// assumeYes disables interactive prompts; every confirmation gets its first
// accepted answer.
var assumeYes bool

// prompter picks the Prompter for this run based on the --yes flag.
func prompter() installer.Prompter {
	if assumeYes {
		return installer.NonInteractivePrompter("yes")
	}
	return installer.TerminalPrompter(os.Stdin)
}

// fastSyntaxHighlightingRepo is cloned into the oh-my-zsh custom plugins
// directory; the plugin itself is activated through shell.plugins.
const fastSyntaxHighlightingRepo = "https://github.com/zdharma-continuum/fast-syntax-highlighting.git"

// provisionCmd is the top-level command applying the full configuration:
// shell sections and plugins, Homebrew packages and their bootstrap steps,
// App Store apps, Git identity, SSH, and cron.
var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Provision the machine to match the config (shell, packages, apps, ssh, cron)",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig(configPath)
		st := state.LoadState(statePath)
		prompt := prompter()
		ct := installer.Crontab{}
		rc := installer.RCPath(cfg.Shell)

		// A full run starts from a clean slate: every managed section and every
		// scheduled job is removed before the desired state is applied.
		if err := shellcfg.RemoveAllBlocks(rc); err != nil {
			logger.Error("✗ Failed to clean %s: %v\n", rc, err)
		}
		zprofile := filepath.Join(os.Getenv("HOME"), ".zprofile")
		if err := shellcfg.RemoveAllBlocks(zprofile); err != nil {
			logger.Error("✗ Failed to clean %s: %v\n", zprofile, err)
		}
		ct.Clear()

		installer.InstallHomebrew()
		installer.InstallOhMyZsh()
		installer.InstallZshPlugin("fast-syntax-highlighting", fastSyntaxHighlightingRepo)

		installer.SyncShell(cfg.Shell)
		installer.SyncPackages(cfg.Packages, installer.NewBrew())

		// One-shot bootstrap steps for tools that need more than a brew install.
		installer.BootstrapNode()
		installer.BootstrapPipx()
		installer.BootstrapColima()
		installer.SetupAtuin(st, prompt)

		installer.SyncApps(cfg.Apps, installer.NewMAS())
		installer.SetupKeyRemapping()
		installer.SyncGitConfig(prompt)
		installer.SyncSSH(cfg.SSH, prompt, ct)
		installer.SyncCron(cfg.Cron, ct)

		installer.ConfirmManualStep("iterm2_natural_text_editing",
			"iTerm2 natural text editing",
			[]string{
				"1. Open iTerm2",
				"2. Go to iTerm → Preferences → Profiles → Keys → Key mappings",
				"3. Click Presets... → Natural Text Editing",
			}, false, st, prompt)

		state.SaveState(statePath, st)
	},
}

// provisionShellCmd applies only the shell rc sections and plugin alignment.
// Without the full run's initial cleanup, repeated invocations append duplicate
// sections; that trade-off is documented on AppendBlock.
var provisionShellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Apply only shell rc sections and plugin alignment",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig(configPath)
		installer.InstallOhMyZsh()
		installer.InstallZshPlugin("fast-syntax-highlighting", fastSyntaxHighlightingRepo)
		installer.SyncShell(cfg.Shell)
	},
}

// provisionPackagesCmd installs only the Homebrew packages.
var provisionPackagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "Install only Homebrew formulae and casks",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig(configPath)
		installer.InstallHomebrew()
		installer.SyncPackages(cfg.Packages, installer.NewBrew())
		installer.BootstrapNode()
		installer.BootstrapPipx()
		installer.BootstrapColima()
	},
}

// provisionAppsCmd installs only the Mac App Store apps.
var provisionAppsCmd = &cobra.Command{
	Use:   "apps",
	Short: "Install only Mac App Store apps",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig(configPath)
		installer.SyncApps(cfg.Apps, installer.NewMAS())
	},
}

// provisionSSHCmd sets up only the SSH key, agent, config, and backup cron.
var provisionSSHCmd = &cobra.Command{
	Use:   "ssh",
	Short: "Set up only the SSH key, agent integration, and backup schedule",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig(configPath)
		installer.SyncSSH(cfg.SSH, prompter(), installer.Crontab{})
	},
}

// provisionCronCmd installs only the configured cron jobs.
var provisionCronCmd = &cobra.Command{
	Use:   "cron",
	Short: "Install only the configured cron jobs",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig(configPath)
		installer.SyncCron(cfg.Cron, installer.Crontab{})
	},
}

// init sets up CLI flags and adds subcommands to the root command.
func init() {
	provisionCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to configuration file")
	provisionCmd.PersistentFlags().StringVar(&statePath, "state", "state.json", "Path to state file")
	provisionCmd.PersistentFlags().BoolVar(&assumeYes, "yes", false, "Answer prompts non-interactively")

	provisionCmd.AddCommand(provisionShellCmd)
	provisionCmd.AddCommand(provisionPackagesCmd)
	provisionCmd.AddCommand(provisionAppsCmd)
	provisionCmd.AddCommand(provisionSSHCmd)
	provisionCmd.AddCommand(provisionCronCmd)
	// Register the `provision` command with the root command.
	rootCmd.AddCommand(provisionCmd)
}
