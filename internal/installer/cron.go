package installer

import (
	"os"
	"os/exec"
	"strings"

	"setup-mac/internal/config"
	"setup-mac/internal/logger"
)

// Crontab edits the current user's cron table. Installation goes through a
// temporary file handed to `crontab <file>`, which replaces the whole table in
// one step; cron itself guarantees the swap is atomic.
type Crontab struct{}

// Read returns the current crontab content, or "" when the user has none.
func (Crontab) Read() string {
	output, err := exec.Command("crontab", "-l").Output()
	if err != nil {
		// crontab -l exits non-zero when no crontab exists for the user.
		return ""
	}
	return string(output)
}

// Clear removes all cron jobs for the current user. Returns true when the
// table is empty afterwards (including when it already was).
func (ct Crontab) Clear() bool {
	logger.Info("→ Clearing crontab...\n")

	if strings.TrimSpace(ct.Read()) == "" {
		logger.Success("✓ Crontab is already empty\n")
		return true
	}

	if output, err := exec.Command("crontab", "-r").CombinedOutput(); err != nil {
		logger.Error("✗ Failed to clear crontab: %v\nOutput: %s\n", err, output)
		return false
	}
	logger.Success("✓ Crontab cleared successfully\n")
	return true
}

// AddJob appends one cron job to the table unless an entry with the same
// command is already present. Returns true when the job is installed or was
// already there.
func (ct Crontab) AddJob(job config.CronJob) bool {
	label := job.Description
	if label == "" {
		label = job.Command
	}
	logger.Info("→ Setting up cron job: %s\n", label)

	merged, added := mergeCrontab(ct.Read(), job)
	if !added {
		logger.Success("✓ Cron job already exists\n")
		return true
	}

	tmp, err := os.CreateTemp("", "setup-mac-crontab-*")
	if err != nil {
		logger.Error("✗ Failed to create temporary crontab file: %v\n", err)
		return false
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(merged); err != nil {
		tmp.Close()
		logger.Error("✗ Failed to write temporary crontab file: %v\n", err)
		return false
	}
	tmp.Close()

	if output, err := exec.Command("crontab", tmp.Name()).CombinedOutput(); err != nil {
		logger.Error("✗ Failed to install cron job: %v\nOutput: %s\n", err, output)
		return false
	}

	logger.Success("✓ Cron job added: %s %s\n", job.Schedule, job.Command)
	return true
}

// mergeCrontab appends the job's entry (with an optional description comment)
// to the current table text. When the command already appears anywhere in the
// table the text is returned unchanged and added is false.
func mergeCrontab(current string, job config.CronJob) (merged string, added bool) {
	if job.Command != "" && strings.Contains(current, job.Command) {
		return current, false
	}

	if current != "" && !strings.HasSuffix(current, "\n") {
		current += "\n"
	}

	var b strings.Builder
	b.WriteString(current)
	if job.Description != "" {
		b.WriteString("# " + job.Description + "\n")
	}
	b.WriteString(job.Schedule + " " + job.Command + "\n")
	return b.String(), true
}

// SyncCron installs every configured cron job in order.
func SyncCron(jobs []config.CronJob, ct Crontab) {
	for _, job := range jobs {
		ct.AddJob(job)
	}
}
