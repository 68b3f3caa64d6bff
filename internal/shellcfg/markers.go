package shellcfg

import (
	"os"
	"path/filepath"
	"strings"
)

// Marker suffixes shared by every managed section. A managed section looks like:
//
//	# <description> ###### START(AUTO-GENERATED DO NOT EDIT) ######
//	<verbatim configuration lines>
//	# <description> ###### END(AUTO-GENERATED DO NOT EDIT) ######
//
// Detection is by substring containment, not full-line equality, so markers are
// still recognized if the user indents them or appends trailing text.
const (
	startMarkerTag = "###### START(AUTO-GENERATED DO NOT EDIT) ######"
	endMarkerTag   = "###### END(AUTO-GENERATED DO NOT EDIT) ######"
)

// StartMarker returns the literal start marker line for a named section.
func StartMarker(description string) string {
	return "# " + description + " " + startMarkerTag
}

// EndMarker returns the literal end marker line for a named section.
func EndMarker(description string) string {
	return "# " + description + " " + endMarkerTag
}

// lineKind tags a single rc-file line for the block scanner.
type lineKind int

const (
	linePlain lineKind = iota
	lineBlockStart
	lineBlockEnd
)

// classifyLine decides whether a line is a start marker, an end marker, or
// ordinary content. The matching rule lives only here; call sites work with the
// tagged kinds so the rule could be hardened (e.g. exact-line match) in one place.
func classifyLine(line string) lineKind {
	switch {
	case strings.Contains(line, startMarkerTag):
		return lineBlockStart
	case strings.Contains(line, endMarkerTag):
		return lineBlockEnd
	default:
		return linePlain
	}
}

// DefaultRCPath returns the shell rc file operated on when no explicit path is
// given: the current user's ~/.zshrc.
func DefaultRCPath() string {
	return filepath.Join(os.Getenv("HOME"), ".zshrc")
}

// splitLines splits file content into physical lines, dropping the final empty
// element produced by a trailing newline. Empty content yields no lines.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}
