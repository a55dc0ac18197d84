// Package phh re-encodes parsed hand histories in PHH-style TOML. PHH
// carries integer amounts, so money values are converted to cents.
package phh

// Hand represents a single parsed poker hand encoded in PHH format.
type Hand struct {
	Variant           string         `toml:"variant"`
	Table             string         `toml:"table,omitempty"`
	BlindsOrStraddles []int64        `toml:"blinds_or_straddles"`
	StartingStacks    []int64        `toml:"starting_stacks"`
	Players           []string       `toml:"players,omitempty"`
	Actions           []string       `toml:"actions"`
	HandID            string         `toml:"hand"`
	Metadata          map[string]any `toml:"metadata,omitempty"`
}
