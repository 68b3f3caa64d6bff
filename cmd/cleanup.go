package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"setup-mac/internal/config"
	"setup-mac/internal/installer"
	"setup-mac/internal/logger"
	"setup-mac/internal/shellcfg"
)

// cleanupCmd strips everything the tool manages without re-applying anything:
// all managed sections in the rc files and the whole crontab.
var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove all managed shell sections and clear the crontab",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig(configPath)

		rc := installer.RCPath(cfg.Shell)
		if err := shellcfg.RemoveAllBlocks(rc); err != nil {
			logger.Error("✗ Failed to clean %s: %v\n", rc, err)
		}
		zprofile := filepath.Join(os.Getenv("HOME"), ".zprofile")
		if err := shellcfg.RemoveAllBlocks(zprofile); err != nil {
			logger.Error("✗ Failed to clean %s: %v\n", zprofile, err)
		}

		installer.Crontab{}.Clear()
	},
}

func init() {
	cleanupCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to configuration file")
	rootCmd.AddCommand(cleanupCmd)
}
