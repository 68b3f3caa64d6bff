package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads the main config.yaml file and the per-concern sub-configs it
// references: packages.yaml, apps.yaml, shell.yaml, cron.yaml, and ssh.yaml.
// It returns a populated Config struct.
//
// Sub-config paths are resolved relative to the main config file's directory so
// the config bundle can live anywhere. A missing or malformed file is fatal:
// provisioning cannot proceed without its desired state.
func LoadConfig(configFile string) Config {
	// mainConfig holds the paths to the per-concern config files.
	mainConfig := struct {
		Config struct {
			PackagesFile string `yaml:"packages_file"`
			AppsFile     string `yaml:"apps_file"`
			ShellFile    string `yaml:"shell_file"`
			CronFile     string `yaml:"cron_file"`
			SSHFile      string `yaml:"ssh_file"`
		} `yaml:"config"`
	}{}

	raw, err := os.ReadFile(configFile)
	if err != nil {
		panic("Failed to read " + configFile + ": " + err.Error())
	}
	if err := yaml.Unmarshal(raw, &mainConfig); err != nil {
		panic("Failed to unmarshal " + configFile + ": " + err.Error())
	}

	baseDir := filepath.Dir(configFile)

	// ----- Load packages.yaml -----
	var packagesWrapper struct {
		Packages []Package `yaml:"packages"`
	}
	loadSubConfig(baseDir, mainConfig.Config.PackagesFile, &packagesWrapper)

	// ----- Load apps.yaml -----
	var appsWrapper struct {
		Apps []App `yaml:"apps"`
	}
	loadSubConfig(baseDir, mainConfig.Config.AppsFile, &appsWrapper)

	// ----- Load shell.yaml -----
	var shellWrapper struct {
		Shell Shell `yaml:"shell"`
	}
	loadSubConfig(baseDir, mainConfig.Config.ShellFile, &shellWrapper)

	// ----- Load cron.yaml -----
	var cronWrapper struct {
		Cron []CronJob `yaml:"cron"`
	}
	loadSubConfig(baseDir, mainConfig.Config.CronFile, &cronWrapper)

	// ----- Load ssh.yaml -----
	var sshWrapper struct {
		SSH SSH `yaml:"ssh"`
	}
	loadSubConfig(baseDir, mainConfig.Config.SSHFile, &sshWrapper)

	return Config{
		Packages: packagesWrapper.Packages,
		Apps:     appsWrapper.Apps,
		Shell:    shellWrapper.Shell,
		Cron:     cronWrapper.Cron,
		SSH:      sshWrapper.SSH,
	}
}

// loadSubConfig reads one referenced YAML file into the given wrapper struct.
// An empty path means the concern is not configured and is skipped.
func loadSubConfig(baseDir, path string, out any) {
	if path == "" {
		return
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic("Failed to read " + path + ": " + err.Error())
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		panic("Failed to unmarshal " + path + ": " + err.Error())
	}
}
