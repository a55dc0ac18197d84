// Package parser converts plain-text hand-history logs into the
// structured model in internal/handhistory. The pipeline runs strictly
// downward: raw lines -> per-hand groups -> (section, line) pairs ->
// filtered pairs -> typed section records -> assembled hands.
package parser

import "strings"

// SplitHands partitions a log file's lines into per-hand groups. Each
// group is one contiguous run of non-blank lines; blank-line runs act as
// separators and are discarded. No group is ever empty.
func SplitHands(lines []string) [][]string {
	var groups [][]string
	var current []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				groups = append(groups, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}
