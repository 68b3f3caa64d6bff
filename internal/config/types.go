package config

// Package represents a single Homebrew package to install.
// - Name: the formula or cask name as brew knows it.
// - Type: either "formula" or "cask"; empty means formula.
type Package struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// App represents a Mac App Store application installed via the `mas` CLI.
// - ID: the numeric App Store identifier, kept as a string (mas takes it verbatim).
// - Name: human-readable name used only for logging.
type App struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Section is one managed block appended to the shell rc file: a description
// (which becomes part of the marker lines) and the raw lines written verbatim
// between the markers.
type Section struct {
	Description string   `yaml:"description"`
	Lines       []string `yaml:"lines"`
}

// Shell holds everything written into the user's shell rc file.
//   - RCFile: explicit rc file path; empty means ~/.zshrc (or ~/.bashrc when the
//     detected shell is bash).
//   - Sections: managed blocks, appended in order.
//   - Plugins: desired oh-my-zsh plugin list for the plugins=(...) declaration.
type Shell struct {
	RCFile   string    `yaml:"rc_file"`
	Sections []Section `yaml:"sections"`
	Plugins  []string  `yaml:"plugins"`
}

// CronJob describes one crontab entry.
// - Schedule: standard five-field cron expression (e.g. "0 9 * * *").
// - Command: the command line to run.
// - Description: optional comment written above the entry.
type CronJob struct {
	Schedule    string `yaml:"schedule"`
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

// SSH holds SSH key management settings.
//   - KeyType: key algorithm passed to ssh-keygen (default ed25519).
//   - KeyComment: comment embedded in a newly generated key.
//   - BackupDir: directory scanned for ssh_backup_* archives to restore from.
//   - BackupSchedule: cron expression for the periodic key backup job; empty
//     disables backup scheduling.
//   - BackupCommand: command the backup cron job runs.
type SSH struct {
	KeyType        string `yaml:"key_type"`
	KeyComment     string `yaml:"key_comment"`
	BackupDir      string `yaml:"backup_dir"`
	BackupSchedule string `yaml:"backup_schedule"`
	BackupCommand  string `yaml:"backup_command"`
}

// Config is the top-level structure returned after loading all YAML
// configuration files.
type Config struct {
	Packages []Package
	Apps     []App
	Shell    Shell
	Cron     []CronJob
	SSH      SSH
}
