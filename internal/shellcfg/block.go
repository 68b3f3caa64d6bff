package shellcfg

import (
	"os"
	"strings"

	"setup-mac/internal/logger"
)

// RemoveAllBlocks strips every managed section from the shell config file at
// path (defaulting to ~/.zshrc). A missing file is treated as "nothing to
// clean" and succeeds without touching the filesystem.
//
// The scanner keeps a single inside-a-section flag: a start marker turns it on
// (the marker line is dropped), an end marker turns it off (also dropped), and
// ordinary lines survive only while the flag is off. A start marker seen while
// already inside re-arms the flag, and an end marker seen outside is ignored,
// so malformed files degrade gracefully; an unterminated section is removed
// through end-of-file.
//
// After filtering, runs of consecutive blank lines are collapsed to a single
// blank line. A blank first line is always kept. The rewritten file ends with
// exactly one trailing newline.
func RemoveAllBlocks(path string) error {
	if path == "" {
		path = DefaultRCPath()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Success("✓ No managed sections to clean up in %s\n", path)
			return nil
		}
		return err
	}

	lines := splitLines(string(raw))
	kept := make([]string, 0, len(lines))
	inside := false
	for _, line := range lines {
		switch classifyLine(line) {
		case lineBlockStart:
			inside = true
		case lineBlockEnd:
			inside = false
		default:
			if !inside {
				kept = append(kept, line)
			}
		}
	}

	kept = collapseBlankRuns(kept)

	if err := os.WriteFile(path, []byte(strings.Join(kept, "\n")+"\n"), 0644); err != nil {
		return err
	}
	logger.Success("✓ Cleaned up managed sections in %s\n", path)
	return nil
}

// collapseBlankRuns drops every blank line that immediately follows another
// blank line. A blank line at position 0 or after a non-blank line is kept.
func collapseBlankRuns(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if line != "" || i == 0 || lines[i-1] != "" {
			out = append(out, line)
		}
	}
	return out
}

// AppendBlock appends a named managed section to the shell config file at path
// (defaulting to ~/.zshrc), creating the file if it does not exist. The section
// is the start marker, the given lines verbatim, and the end marker.
//
// Existing content is normalized to end with one blank separator line before
// the section; an empty file gets no leading separation.
//
// AppendBlock is append-only: it never looks for an existing section with the
// same description, so calling it twice produces two sections. A full
// provisioning run calls RemoveAllBlocks first, which keeps the file clean.
func AppendBlock(description string, lines []string, path string) error {
	if path == "" {
		path = DefaultRCPath()
	}

	var content string
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	} else {
		content = string(raw)
	}

	// Ensure exactly one blank line between previous content and the new section.
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if content != "" && !strings.HasSuffix(content, "\n\n") {
		content += "\n"
	}

	var b strings.Builder
	b.WriteString(content)
	b.WriteString(StartMarker(description))
	b.WriteString("\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	b.WriteString(EndMarker(description))
	b.WriteString("\n")

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return err
	}
	logger.Success("✓ Added section to %s: %s\n", path, description)
	return nil
}
