package parser

import (
	"github.com/lox/handtracker/internal/handhistory"
)

// parseMetaData reads the hand header. Line 0 must be the site header
// (site name plus blind stake), line 1 the table-name line.
func parseMetaData(lines []string) (handhistory.MetaData, error) {
	if len(lines) < 2 {
		return handhistory.MetaData{}, invalidHandf("metadata requires 2 lines, have %d", len(lines))
	}
	header := reSiteHeader.FindStringSubmatch(lines[0])
	if header == nil {
		return handhistory.MetaData{}, invalidHandf("unrecognized site header %q", lines[0])
	}
	small, err := handhistory.ParseMoney(header[2])
	if err != nil {
		return handhistory.MetaData{}, invalidHandf("small blind in %q: %v", lines[0], err)
	}
	big, err := handhistory.ParseMoney(header[3])
	if err != nil {
		return handhistory.MetaData{}, invalidHandf("big blind in %q: %v", lines[0], err)
	}
	table := reTableName.FindStringSubmatch(lines[1])
	if table == nil {
		return handhistory.MetaData{}, invalidHandf("unrecognized table line %q", lines[1])
	}
	return handhistory.MetaData{
		Site:      header[1],
		TableName: table[1],
		Stake:     handhistory.Stake{SmallBlind: small, BigBlind: big},
	}, nil
}

// parsePlayers extracts the seat roster in source order. Lines that are
// not seat listings are skipped; there is no failure path.
func parsePlayers(lines []string) []handhistory.Player {
	var players []handhistory.Player
	for _, line := range lines {
		m := reSeatLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		stack, err := handhistory.ParseMoney(m[3])
		if err != nil {
			continue
		}
		players = append(players, handhistory.Player{Name: m[2], Stack: stack})
	}
	return players
}

// parseHero locates the unique "Dealt to" line and resolves the named
// player against the roster.
func parseHero(lines []string, roster []handhistory.Player) (handhistory.Hero, error) {
	var dealt []string
	for _, line := range lines {
		if reDealtTo.MatchString(line) {
			dealt = append(dealt, line)
		}
	}
	if len(dealt) != 1 {
		return handhistory.Hero{}, invalidHandf("expected 1 hero deal line, have %d", len(dealt))
	}
	m := reDealtTo.FindStringSubmatch(dealt[0])
	player, ok := lookupPlayer(roster, m[1])
	if !ok {
		return handhistory.Hero{}, invalidHandf("hero %q not in roster", m[1])
	}
	return handhistory.Hero{
		Player: player,
		Cards:  handhistory.HoleCards{Left: m[2], Right: m[3]},
	}, nil
}

// parseStreetActions converts one action street's filtered lines into
// ordered player actions. Both resolution stages fail the whole hand when
// no pattern matches.
func parseStreetActions(lines []string, roster []handhistory.Player) ([]handhistory.PlayerAction, error) {
	var actions []handhistory.PlayerAction
	for _, line := range lines {
		name, phrase, ok := resolveLine(line)
		if !ok {
			return nil, invalidHandf("unrecognized action line %q", line)
		}
		player, ok := lookupPlayer(roster, name)
		if !ok {
			return nil, invalidHandf("player %q in %q not in roster", name, line)
		}
		action, ok, err := classifyPhrase(phrase)
		if err != nil {
			return nil, invalidHandf("action %q: %v", line, err)
		}
		if !ok {
			return nil, invalidHandf("unrecognized action phrase %q", phrase)
		}
		actions = append(actions, handhistory.PlayerAction{Player: player, Action: action})
	}
	return actions, nil
}

// parseSummaryActions converts the filtered summary bucket into ordered
// player actions using the seat-prefixed pattern variants. Non-seat lines
// (the site may append rake or board notes) have already been filtered.
func parseSummaryActions(lines []string, roster []handhistory.Player) ([]handhistory.PlayerAction, error) {
	var actions []handhistory.PlayerAction
	for _, line := range lines {
		name, action, ok, err := resolveSummaryLine(line)
		if err != nil {
			return nil, invalidHandf("summary line %q: %v", line, err)
		}
		if !ok {
			return nil, invalidHandf("unrecognized summary line %q", line)
		}
		player, ok := lookupPlayer(roster, name)
		if !ok {
			return nil, invalidHandf("player %q in %q not in roster", name, line)
		}
		actions = append(actions, handhistory.PlayerAction{Player: player, Action: action})
	}
	return actions, nil
}

// parseResult scans the unfiltered summary bucket for the single
// "Total pot $X | Rake $Y" line.
func parseResult(lines []string) (handhistory.Result, error) {
	for _, line := range lines {
		m := reTotalPot.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		pot, err := handhistory.ParseMoney(m[1])
		if err != nil {
			return handhistory.Result{}, invalidHandf("pot in %q: %v", line, err)
		}
		rake, err := handhistory.ParseMoney(m[2])
		if err != nil {
			return handhistory.Result{}, invalidHandf("rake in %q: %v", line, err)
		}
		return handhistory.Result{Pot: pot, Rake: rake}, nil
	}
	return handhistory.Result{}, invalidHandf("no total pot line in summary")
}

func lookupPlayer(roster []handhistory.Player, name string) (handhistory.Player, bool) {
	for _, p := range roster {
		if p.Name == name {
			return p, true
		}
	}
	return handhistory.Player{}, false
}
