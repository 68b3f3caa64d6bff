package installer

import (
	"os"
	"os/exec"
	"path/filepath"

	"setup-mac/internal/logger"
)

// keyRemapProperty maps Caps Lock (0x700000039) to F18 (0x70000006D), the key
// bound to Korean/English input switching, avoiding the system-default delay.
const keyRemapProperty = `{"UserKeyMapping":[{"HIDKeyboardModifierMappingSrc": 0x700000039, "HIDKeyboardModifierMappingDst": 0x70000006D}]}`

// CreateLaunchAgent writes a LaunchAgent plist under ~/Library/LaunchAgents.
func CreateLaunchAgent(name, plistContent string) error {
	agentDir := filepath.Join(os.Getenv("HOME"), "Library", "LaunchAgents")
	if err := os.MkdirAll(agentDir, 0755); err != nil {
		return err
	}

	agentPath := filepath.Join(agentDir, name+".plist")
	if err := os.WriteFile(agentPath, []byte(plistContent), 0644); err != nil {
		return err
	}

	logger.Success("✓ Created LaunchAgent: %s\n", agentPath)
	return nil
}

// SetupKeyRemapping applies the Korean/English key remapping with hidutil and
// installs a LaunchAgent so the remapping survives reboots.
func SetupKeyRemapping() {
	logger.Info("→ Configuring Korean/English key remapping...\n")

	cmd := exec.Command("hidutil", "property", "--set", keyRemapProperty)
	if output, err := cmd.CombinedOutput(); err != nil {
		logger.Error("✗ hidutil failed: %v\nOutput: %s\n", err, output)
		return
	}

	plist := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
<key>Label</key>
<string>com.setup-mac.KeyRemapping</string>
<key>ProgramArguments</key>
<array>
    <string>/usr/bin/hidutil</string>
    <string>property</string>
    <string>--set</string>
    <string>` + keyRemapProperty + `</string>
</array>
<key>RunAtLoad</key>
<true/>
</dict>
</plist>`

	if err := CreateLaunchAgent("com.setup-mac.KeyRemapping", plist); err != nil {
		logger.Error("✗ Failed to create LaunchAgent: %v\n", err)
		return
	}
	logger.Success("✓ Key remapping configured\n")
}
