package parser

import "strings"

// HasContent reports whether a line carries parseable information. It is
// applied after classification, so section banners have already done their
// job as transition markers and can be discarded here. The "Total pot"
// line is also dropped; the result parser reads it from the unfiltered
// summary bucket instead.
func HasContent(line string) bool {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return false
	case strings.HasPrefix(trimmed, "*** "):
		return false
	case strings.HasPrefix(trimmed, "Board ["):
		return false
	case strings.HasPrefix(trimmed, "Total pot "):
		return false
	case strings.HasSuffix(trimmed, " leaves the table"):
		return false
	case strings.HasSuffix(trimmed, " is sitting out"):
		return false
	case strings.HasSuffix(trimmed, ": sits out"):
		return false
	}
	return true
}

func filterLines(lines []string) []string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if HasContent(line) {
			kept = append(kept, line)
		}
	}
	return kept
}
