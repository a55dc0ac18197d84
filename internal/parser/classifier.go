package parser

import "regexp"

// Section identifies which part of a hand a line belongs to. Values are
// ordered by the position the section occupies within a hand; the
// classifier only ever moves forward through them.
type Section int

const (
	SectionMetaData Section = iota
	SectionPlayers
	SectionBlinds
	SectionHero
	SectionPreflop
	SectionFlop
	SectionTurn
	SectionRiver
	SectionShowDown
	SectionSummary
)

func (s Section) String() string {
	switch s {
	case SectionMetaData:
		return "MetaData"
	case SectionPlayers:
		return "Players"
	case SectionBlinds:
		return "Blinds"
	case SectionHero:
		return "Hero"
	case SectionPreflop:
		return "Preflop"
	case SectionFlop:
		return "Flop"
	case SectionTurn:
		return "Turn"
	case SectionRiver:
		return "River"
	case SectionShowDown:
		return "ShowDown"
	case SectionSummary:
		return "Summary"
	default:
		return "unknown"
	}
}

// TaggedLine pairs a source line with the section active when it was read.
type TaggedLine struct {
	Section Section
	Text    string
}

// sectionMarker advances the cursor when its pattern matches a line. The
// new section applies to the matching line itself, so banner lines land in
// the bucket they announce and seat lines land in Players.
type sectionMarker struct {
	re      *regexp.Regexp
	section Section
}

var sectionMarkers = []sectionMarker{
	{regexp.MustCompile(`^Seat \d+: .+ \(\$?[\d.]+ in chips\)`), SectionPlayers},
	// matches both "name: posts small blind $X" and the no-colon variant
	{regexp.MustCompile(` posts small blind \$?[\d.]+`), SectionBlinds},
	{regexp.MustCompile(`^Dealt to `), SectionHero},
	{regexp.MustCompile(`^\*\*\* FLOP \*\*\*`), SectionFlop},
	{regexp.MustCompile(`^\*\*\* TURN \*\*\*`), SectionTurn},
	{regexp.MustCompile(`^\*\*\* RIVER \*\*\*`), SectionRiver},
	{regexp.MustCompile(`^\*\*\* SHOW DOWN \*\*\*`), SectionShowDown},
	{regexp.MustCompile(`^\*\*\* SUMMARY \*\*\*`), SectionSummary},
}

// Classify walks one hand's lines in order and tags every line with the
// section active at that point. The section cursor is threaded as an
// explicit fold through nextSection and never moves backwards.
func Classify(lines []string) []TaggedLine {
	tagged := make([]TaggedLine, 0, len(lines))
	section := SectionMetaData
	for _, line := range lines {
		section = nextSection(section, line)
		tagged = append(tagged, TaggedLine{Section: section, Text: line})
	}
	return tagged
}

// nextSection is the classifier's transition function. Marker patterns win
// over the default rule; markers that would move the cursor backwards are
// ignored. Hero is a one-shot state: the line after it becomes Preflop
// unless that line carries its own marker.
func nextSection(current Section, line string) Section {
	for _, m := range sectionMarkers {
		if m.section < current {
			continue
		}
		if m.re.MatchString(line) {
			return m.section
		}
	}
	if current == SectionHero {
		return SectionPreflop
	}
	return current
}

// streetSections lists the sections that become streets on the assembled
// hand, in source order.
var streetSections = []Section{
	SectionBlinds,
	SectionPreflop,
	SectionFlop,
	SectionTurn,
	SectionRiver,
	SectionShowDown,
}
