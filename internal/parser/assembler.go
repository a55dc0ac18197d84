package parser

import "github.com/lox/handtracker/internal/handhistory"

// assembleHand wires the section parsers together for one hand's line
// group: classify, bucket by section, then parse in dependency order.
// The result is read from the unfiltered summary bucket before the line
// filter is applied anywhere else. Any stage returning ErrInvalidHand
// short-circuits assembly.
func assembleHand(group []string) (handhistory.HandHistory, error) {
	buckets := make(map[Section][]string)
	for _, tl := range Classify(group) {
		buckets[tl.Section] = append(buckets[tl.Section], tl.Text)
	}

	result, err := parseResult(buckets[SectionSummary])
	if err != nil {
		return handhistory.HandHistory{}, err
	}

	metaData, err := parseMetaData(filterLines(buckets[SectionMetaData]))
	if err != nil {
		return handhistory.HandHistory{}, err
	}

	players := parsePlayers(filterLines(buckets[SectionPlayers]))

	// The hero section is validated for well-formedness even though the
	// assembled record does not retain it; showdown card lookup works off
	// the show/muck actions instead.
	if _, err := parseHero(filterLines(buckets[SectionHero]), players); err != nil {
		return handhistory.HandHistory{}, err
	}

	var streets []handhistory.Street
	for _, section := range streetSections {
		actions, err := parseStreetActions(filterLines(buckets[section]), players)
		if err != nil {
			return handhistory.HandHistory{}, err
		}
		if len(actions) == 0 {
			continue
		}
		streets = append(streets, handhistory.Street{Type: streetType(section), Actions: actions})
	}

	summaryActions, err := parseSummaryActions(filterLines(buckets[SectionSummary]), players)
	if err != nil {
		return handhistory.HandHistory{}, err
	}
	if len(summaryActions) > 0 {
		streets = append(streets, handhistory.Street{Type: handhistory.Summary, Actions: summaryActions})
	}

	return handhistory.HandHistory{
		MetaData: metaData,
		Players:  players,
		Streets:  streets,
		Result:   result,
	}, nil
}

func streetType(section Section) handhistory.StreetType {
	switch section {
	case SectionBlinds:
		return handhistory.Blinds
	case SectionPreflop:
		return handhistory.Preflop
	case SectionFlop:
		return handhistory.Flop
	case SectionTurn:
		return handhistory.Turn
	case SectionRiver:
		return handhistory.River
	case SectionShowDown:
		return handhistory.ShowDown
	default:
		return handhistory.Summary
	}
}
