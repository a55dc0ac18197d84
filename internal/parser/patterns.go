package parser

import (
	"regexp"

	"github.com/lox/handtracker/internal/handhistory"
)

// The lexical pattern library. Every rule table below is static data
// evaluated top-to-bottom; the first matching rule wins. Keeping the
// tables as data means each pattern is unit-testable independently of the
// parsers that consume them.

// Metadata and structural patterns.
var (
	// site header, e.g. "PokerStars Zoom Hand #89514792441:  Hold'em No
	// Limit ($0.05/$0.10) - 2024/03/17 21:45:10 ET"
	reSiteHeader = regexp.MustCompile(`^(\w+) (?:Game|Hand|Zoom Hand) #\d+:.*\(\$?([\d.]+)/\$?([\d.]+)(?: USD)?\)`)

	// table name, e.g. "Table 'Halley III' 6-max Seat #1 is the button"
	reTableName = regexp.MustCompile(`^Table '([^']+)'`)

	// seat listing, e.g. "Seat 2: hero_cat ($2.00 in chips)"
	reSeatLine = regexp.MustCompile(`^Seat (\d+): (.+?) \(\$?([\d.]+) in chips\)`)

	// hero deal, e.g. "Dealt to hero_cat [Ah Ad]"
	reDealtTo = regexp.MustCompile(`^Dealt to (.+?) \[(\w\w) (\w\w)\]`)

	// closing result, e.g. "Total pot $4.00 | Rake $0.12"
	reTotalPot = regexp.MustCompile(`^Total pot \$?([\d.]+)(?: Main pot \$?[\d.]+\..*)? \| Rake \$?([\d.]+)`)
)

// lineShape resolves a raw action line into (player name, action phrase).
// Most lines are "name: phrase"; a handful of phrasings put the name
// elsewhere, so those run first.
type lineShape struct {
	re      *regexp.Regexp
	resolve func(m []string) (player, phrase string)
}

var lineShapes = []lineShape{
	{
		// "Uncalled bet ($0.05) returned to hero_cat"
		re: regexp.MustCompile(`^Uncalled bet \(\$?[\d.]+\) returned to (.+)$`),
		resolve: func(m []string) (string, string) {
			return m[1], m[0]
		},
	},
	{
		// "hero_cat collected $3.88 from pot"
		re: regexp.MustCompile(`^(.+?) collected \$?[\d.]+ from (?:the )?pot$`),
		resolve: func(m []string) (string, string) {
			return m[1], m[0][len(m[1])+1:]
		},
	},
	{
		// "villain77 has timed out"
		re: regexp.MustCompile(`^(.+?) has timed out`),
		resolve: func(m []string) (string, string) {
			return m[1], "has timed out"
		},
	},
	{
		// standard "name: phrase"; must run before the no-colon blind
		// variant, whose lazy name group would otherwise capture the colon
		re: regexp.MustCompile(`^([^:]+): (.+)$`),
		resolve: func(m []string) (string, string) {
			return m[1], m[2]
		},
	},
	{
		// "villain77 posts big blind $0.10" (no-colon blind post variant)
		re: regexp.MustCompile(`^(.+?) (posts (?:small|big) blind \$?[\d.]+)$`),
		resolve: func(m []string) (string, string) {
			return m[1], m[2]
		},
	},
}

// resolveLine splits an action line into the acting player's name and the
// action phrase. Returns ok=false when no shape matches.
func resolveLine(line string) (player, phrase string, ok bool) {
	for _, shape := range lineShapes {
		if m := shape.re.FindStringSubmatch(line); m != nil {
			player, phrase = shape.resolve(m)
			return player, phrase, true
		}
	}
	return "", "", false
}

// actionRule classifies an action phrase into one typed Action.
type actionRule struct {
	re    *regexp.Regexp
	build func(m []string) (handhistory.Action, error)
}

var actionRules = []actionRule{
	{
		re: regexp.MustCompile(`^checks\b`),
		build: func(m []string) (handhistory.Action, error) {
			return handhistory.Action{Type: handhistory.Check}, nil
		},
	},
	{
		re: regexp.MustCompile(`^folds\b`),
		build: func(m []string) (handhistory.Action, error) {
			return handhistory.Action{Type: handhistory.Fold}, nil
		},
	},
	{
		re: regexp.MustCompile(`^calls \$?([\d.]+)`),
		build: func(m []string) (handhistory.Action, error) {
			return amountAction(handhistory.Call, m[1])
		},
	},
	{
		re: regexp.MustCompile(`^bets \$?([\d.]+)`),
		build: func(m []string) (handhistory.Action, error) {
			return amountAction(handhistory.Bet, m[1])
		},
	},
	{
		re: regexp.MustCompile(`^raises \$?([\d.]+) to \$?([\d.]+)`),
		build: func(m []string) (handhistory.Action, error) {
			base, err := handhistory.ParseMoney(m[1])
			if err != nil {
				return handhistory.Action{}, err
			}
			to, err := handhistory.ParseMoney(m[2])
			if err != nil {
				return handhistory.Action{}, err
			}
			return handhistory.Action{Type: handhistory.Raise, Amount: base, To: to}, nil
		},
	},
	{
		re: regexp.MustCompile(`^posts (?:small blind|big blind|the ante) \$?([\d.]+)`),
		build: func(m []string) (handhistory.Action, error) {
			return amountAction(handhistory.Posts, m[1])
		},
	},
	{
		re: regexp.MustCompile(`^Uncalled bet \(\$?([\d.]+)\) returned to `),
		build: func(m []string) (handhistory.Action, error) {
			return amountAction(handhistory.CollectUncalled, m[1])
		},
	},
	{
		re: regexp.MustCompile(`^collected \$?([\d.]+) from (?:the )?pot`),
		build: func(m []string) (handhistory.Action, error) {
			return amountAction(handhistory.CollectFromPot, m[1])
		},
	},
	{
		re: regexp.MustCompile(`^has timed out`),
		build: func(m []string) (handhistory.Action, error) {
			return handhistory.Action{Type: handhistory.TimedOut}, nil
		},
	},
	{
		re: regexp.MustCompile(`^doesn't show hand`),
		build: func(m []string) (handhistory.Action, error) {
			return handhistory.Action{Type: handhistory.DoesntShow}, nil
		},
	},
	{
		re: regexp.MustCompile(`^shows \[(\w\w) (\w\w)\]`),
		build: func(m []string) (handhistory.Action, error) {
			return handhistory.Action{
				Type:  handhistory.Shows,
				Cards: handhistory.HoleCards{Left: m[1], Right: m[2]},
			}, nil
		},
	},
	{
		re: regexp.MustCompile(`^mucks hand`),
		build: func(m []string) (handhistory.Action, error) {
			return handhistory.Action{Type: handhistory.Mucks}, nil
		},
	},
}

// classifyPhrase converts an action phrase into a typed Action. Returns
// ok=false when no rule matches.
func classifyPhrase(phrase string) (handhistory.Action, bool, error) {
	for _, rule := range actionRules {
		if m := rule.re.FindStringSubmatch(phrase); m != nil {
			action, err := rule.build(m)
			return action, true, err
		}
	}
	return handhistory.Action{}, false, nil
}

// Summary lines carry a seat-number prefix and optionally one or more
// parenthetical seat-role notes that are tolerated but not captured.
const summaryRoles = `(?: \((?:button|small blind|big blind)\))*`

type summaryRule struct {
	re    *regexp.Regexp
	build func(m []string) (player string, action handhistory.Action, err error)
}

var summaryRules = []summaryRule{
	{
		// "Seat 1: villain77 (button) folded before Flop (didn't bet)"
		re: regexp.MustCompile(`^Seat \d+: (.+?)` + summaryRoles + ` folded (?:before Flop|on the (?:Flop|Turn|River))(?: \(didn't bet\))?$`),
		build: func(m []string) (string, handhistory.Action, error) {
			return m[1], handhistory.Action{Type: handhistory.Fold}, nil
		},
	},
	{
		// "Seat 2: hero_cat (big blind) showed [Ah Ad] and won ($3.88) with a pair of Aces"
		re: regexp.MustCompile(`^Seat \d+: (.+?)` + summaryRoles + ` showed \[(\w\w) (\w\w)\] and won \(\$?([\d.]+)\)(?: with .+)?$`),
		build: func(m []string) (string, handhistory.Action, error) {
			amount, err := handhistory.ParseMoney(m[4])
			if err != nil {
				return "", handhistory.Action{}, err
			}
			return m[1], handhistory.Action{
				Type:   handhistory.ShowedAndWon,
				Amount: amount,
				Cards:  handhistory.HoleCards{Left: m[2], Right: m[3]},
			}, nil
		},
	},
	{
		// "Seat 1: villain77 showed [Kc Ks] and lost with a pair of Kings"
		re: regexp.MustCompile(`^Seat \d+: (.+?)` + summaryRoles + ` showed \[(\w\w) (\w\w)\] and lost(?: with .+)?$`),
		build: func(m []string) (string, handhistory.Action, error) {
			return m[1], handhistory.Action{
				Type:  handhistory.ShowedAndLost,
				Cards: handhistory.HoleCards{Left: m[2], Right: m[3]},
			}, nil
		},
	},
	{
		// "Seat 3: some_fish mucked [7c 2d]"
		re: regexp.MustCompile(`^Seat \d+: (.+?)` + summaryRoles + ` mucked \[(\w\w) (\w\w)\]$`),
		build: func(m []string) (string, handhistory.Action, error) {
			return m[1], handhistory.Action{
				Type:  handhistory.MucksAndShows,
				Cards: handhistory.HoleCards{Left: m[2], Right: m[3]},
			}, nil
		},
	},
	{
		// "Seat 2: hero_cat (big blind) collected ($0.10)"
		re: regexp.MustCompile(`^Seat \d+: (.+?)` + summaryRoles + ` collected \(\$?([\d.]+)\)$`),
		build: func(m []string) (string, handhistory.Action, error) {
			action, err := amountAction(handhistory.CollectFromPot, m[2])
			return m[1], action, err
		},
	},
}

// resolveSummaryLine parses one summary seat line into the acting player
// and their typed action. Returns ok=false when no variant matches.
func resolveSummaryLine(line string) (string, handhistory.Action, bool, error) {
	for _, rule := range summaryRules {
		if m := rule.re.FindStringSubmatch(line); m != nil {
			player, action, err := rule.build(m)
			return player, action, true, err
		}
	}
	return "", handhistory.Action{}, false, nil
}

func amountAction(t handhistory.ActionType, token string) (handhistory.Action, error) {
	amount, err := handhistory.ParseMoney(token)
	if err != nil {
		return handhistory.Action{}, err
	}
	return handhistory.Action{Type: t, Amount: amount}, nil
}
