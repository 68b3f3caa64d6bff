package shellcfg

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"setup-mac/internal/logger"
)

// ErrNoDeclaration is returned by AlignList when the file contains no complete
// `name=(...)` declaration: either the assignment is missing entirely, or it
// opens but no closing parenthesis follows before end-of-file.
var ErrNoDeclaration = errors.New("no complete declaration found")

// AlignList rewrites the first `name=(...)` declaration in the file at path so
// its entries match the desired list exactly. The declaration may span multiple
// physical lines; it ends at the first line containing a closing parenthesis.
// Whatever its original shape, it is replaced by a single line:
//
//	name=(entry1 entry2 ...)
//
// Entry order and duplicates are written verbatim; AlignList does not sort or
// deduplicate. Only the first declaration is affected — any later declaration
// of the same name is left alone. When the file is missing or holds no complete
// declaration, the error is returned and the file is untouched.
func AlignList(name string, entries []string, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	lines := splitLines(string(raw))

	start, end := -1, -1
	prefix := name + "="
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), prefix) {
			continue
		}
		start = i
		if strings.Contains(line, ")") {
			// Single-line declaration.
			end = i
		} else {
			// Multi-line: scan forward for the closing parenthesis.
			for j := i + 1; j < len(lines); j++ {
				if strings.Contains(lines[j], ")") {
					end = j
					break
				}
			}
		}
		break
	}

	if start < 0 || end < 0 {
		return fmt.Errorf("%s in %s: %w", name, path, ErrNoDeclaration)
	}

	joined := strings.Join(entries, " ")
	out := make([]string, 0, len(lines))
	out = append(out, lines[:start]...)
	out = append(out, name+"=("+joined+")")
	out = append(out, lines[end+1:]...)

	if err := os.WriteFile(path, []byte(strings.Join(out, "\n")+"\n"), 0644); err != nil {
		return err
	}
	logger.Success("✓ Updated %s in %s: (%s)\n", name, path, joined)
	return nil
}

// AlignPlugins reconciles the `plugins=(...)` declaration in the shell config
// file (defaulting to ~/.zshrc) against the desired plugin list.
func AlignPlugins(plugins []string, path string) error {
	if path == "" {
		path = DefaultRCPath()
	}
	return AlignList("plugins", plugins, path)
}
