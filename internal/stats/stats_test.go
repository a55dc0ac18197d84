package stats

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handtracker/internal/handhistory"
	"github.com/lox/handtracker/internal/parser"
)

const blindStealHand = `PokerStars Game #75001234501:  Hold'em No Limit ($0.05/$0.10 USD) - 2024/03/17 20:01:11 ET
Table 'Arcturus II' 6-max Seat #1 is the button
Seat 1: villain77 ($10.00 in chips)
Seat 2: hero_cat ($9.50 in chips)
villain77: posts small blind $0.05
hero_cat: posts big blind $0.10
*** HOLE CARDS ***
Dealt to hero_cat [7c 2d]
villain77: folds
Uncalled bet ($0.05) returned to hero_cat
hero_cat collected $0.10 from pot
hero_cat: doesn't show hand
*** SUMMARY ***
Total pot $0.10 | Rake $0.00
Seat 1: villain77 (button) (small blind) folded before Flop
Seat 2: hero_cat (big blind) collected ($0.10)
`

const multiStreetHand = `PokerStars Game #75001234502:  Hold'em No Limit ($0.05/$0.10 USD) - 2024/03/17 20:03:40 ET
Table 'Arcturus II' 6-max Seat #3 is the button
Seat 1: villain77 ($10.00 in chips)
Seat 2: hero_cat ($9.55 in chips)
Seat 3: rock_n_roll ($12.30 in chips)
villain77: posts small blind $0.05
hero_cat: posts big blind $0.10
*** HOLE CARDS ***
Dealt to hero_cat [Qs Qd]
rock_n_roll: calls $0.10
villain77: folds
hero_cat: raises $0.30 to $0.40
rock_n_roll: calls $0.30
*** FLOP *** [2h 8c Qc]
hero_cat: bets $0.55
rock_n_roll: calls $0.55
*** TURN *** [2h 8c Qc] [4d]
hero_cat: checks
rock_n_roll: checks
*** RIVER *** [2h 8c Qc 4d] [9s]
hero_cat: bets $1.20
rock_n_roll has timed out
rock_n_roll: folds
Uncalled bet ($1.20) returned to hero_cat
hero_cat collected $1.80 from pot
hero_cat: doesn't show hand
*** SUMMARY ***
Total pot $1.95 | Rake $0.15
Board [2h 8c Qc 4d 9s]
Seat 1: villain77 (small blind) folded before Flop
Seat 2: hero_cat (big blind) collected ($1.80)
Seat 3: rock_n_roll (button) folded on the River
`

const allInHand = `PokerStars Zoom Hand #89514792441:  Hold'em No Limit ($0.05/$0.10) - 2024/03/17 21:45:10 ET
Table 'Halley' 6-max Seat #1 is the button
Seat 1: villain77 ($4.52 in chips)
Seat 2: hero_cat ($2.00 in chips)
villain77: posts small blind $0.05
hero_cat: posts big blind $0.10
*** HOLE CARDS ***
Dealt to hero_cat [Ah Ad]
villain77: raises $0.20 to $0.30
hero_cat: raises $0.60 to $0.90
villain77: raises $1.10 to $2.00
hero_cat: calls $1.10 and is all-in
*** FLOP *** [2c 7d Jh]
*** TURN *** [2c 7d Jh] [5s]
*** RIVER *** [2c 7d Jh 5s] [9c]
*** SHOW DOWN ***
hero_cat: shows [Ah Ad] (a pair of Aces)
villain77: shows [Kc Ks] (a pair of Kings)
hero_cat collected $3.88 from pot
*** SUMMARY ***
Total pot $4.00 | Rake $0.12
Board [2c 7d Jh 5s 9c]
Seat 1: villain77 (button) (small blind) showed [Kc Ks] and lost with a pair of Kings
Seat 2: hero_cat (big blind) showed [Ah Ad] and won ($3.88) with a pair of Aces
`

const muckedShowdownHand = `PokerStars Game #75001234504:  Hold'em No Limit ($0.05/$0.10 USD) - 2024/03/17 20:09:02 ET
Table 'Arcturus II' 6-max Seat #1 is the button
Seat 1: villain77 ($10.00 in chips)
Seat 2: hero_cat ($10.00 in chips)
villain77: posts small blind $0.05
hero_cat: posts big blind $0.10
*** HOLE CARDS ***
Dealt to hero_cat [Jh Js]
villain77: calls $0.05
hero_cat: checks
*** FLOP *** [3c 6d 9h]
hero_cat: checks
villain77: checks
*** TURN *** [3c 6d 9h] [Td]
hero_cat: bets $0.20
villain77: calls $0.20
*** RIVER *** [3c 6d 9h Td] [2s]
hero_cat: checks
villain77: checks
*** SHOW DOWN ***
hero_cat: shows [Jh Js] (a pair of Jacks)
villain77: mucks hand
hero_cat collected $0.57 from pot
*** SUMMARY ***
Total pot $0.60 | Rake $0.03
Board [3c 6d 9h Td 2s]
Seat 1: villain77 (button) (small blind) mucked [9c 8c]
Seat 2: hero_cat (big blind) showed [Jh Js] and won ($0.57) with a pair of Jacks
`

func parseFixture(t *testing.T, text string) handhistory.HandHistory {
	t.Helper()
	hands := parser.New(nil).ParseLines(strings.Split(text, "\n"), "fixture")
	require.Len(t, hands, 1)
	return hands[0]
}

func parseSession(t *testing.T) []handhistory.HandHistory {
	t.Helper()
	session := blindStealHand + "\n" + multiStreetHand + "\n" + allInHand + "\n" + muckedShowdownHand
	hands := parser.New(nil).ParseLines(strings.Split(session, "\n"), "fixture")
	require.Len(t, hands, 4)
	return hands
}

func money(s string) decimal.Decimal {
	return handhistory.MustMoney(s)
}

func TestMoneyDifferenceBlindSteal(t *testing.T) {
	hand := parseFixture(t, blindStealHand)

	// The small blind folds to nothing and loses exactly the blind; the
	// big blind keeps the posted small blind.
	assert.True(t, MoneyDifference("villain77", hand).Equal(money("0.05").Neg()))
	assert.True(t, MoneyDifference("hero_cat", hand).Equal(money("0.05")))
}

func TestMoneyDifferenceMultiStreet(t *testing.T) {
	hand := parseFixture(t, multiStreetHand)

	// hero: blind 0.10 replaced by raise-to 0.40, 0.55 flop, 1.20 river
	// returned uncalled, 1.80 collected.
	assert.True(t, MoneyDifference("hero_cat", hand).Equal(money("0.85")))
	assert.True(t, MoneyDifference("villain77", hand).Equal(money("0.05").Neg()))
	assert.True(t, MoneyDifference("rock_n_roll", hand).Equal(money("0.95").Neg()))
}

func TestMoneyDifferenceAllIn(t *testing.T) {
	hand := parseFixture(t, allInHand)

	// Preflop raise war. Each raise restates the round total, so the
	// posted blinds must not be double counted.
	assert.True(t, MoneyDifference("hero_cat", hand).Equal(money("1.88")))
	assert.True(t, MoneyDifference("villain77", hand).Equal(money("2.00").Neg()))
}

func TestMoneyDifferenceSumsToRake(t *testing.T) {
	for _, hand := range parseSession(t) {
		sum := decimal.Zero
		for _, p := range hand.Players {
			sum = sum.Add(MoneyDifference(p.Name, hand))
		}
		assert.True(t, sum.Equal(hand.Result.Rake.Neg()),
			"hand at %s: differences sum to %s, rake %s",
			hand.MetaData.TableName, sum, hand.Result.Rake)
	}
}

func TestCardsShown(t *testing.T) {
	assert.Equal(t, handhistory.NoCards, CardsShown("hero_cat", parseFixture(t, blindStealHand)))
	assert.Equal(t, handhistory.NoCards, CardsShown("villain77", parseFixture(t, blindStealHand)))

	allIn := parseFixture(t, allInHand)
	assert.Equal(t, handhistory.HoleCards{Left: "Ah", Right: "Ad"}, CardsShown("hero_cat", allIn))
	assert.Equal(t, handhistory.HoleCards{Left: "Kc", Right: "Ks"}, CardsShown("villain77", allIn))

	// A body-line muck reveals nothing, but the summary's "mucked [..]"
	// line does.
	mucked := parseFixture(t, muckedShowdownHand)
	assert.Equal(t, handhistory.HoleCards{Left: "9c", Right: "8c"}, CardsShown("villain77", mucked))
}

func TestPlayerInvolved(t *testing.T) {
	hands := parseSession(t)

	assert.Len(t, PlayerInvolved("hero_cat", hands), 4)
	assert.Len(t, PlayerInvolved("rock_n_roll", hands), 1)
	assert.Empty(t, PlayerInvolved("nobody", hands))

	// Exact-case only; neither case folding nor substrings.
	assert.Empty(t, PlayerInvolved("HERO_CAT", hands))
	assert.Empty(t, PlayerInvolved("hero", hands))
}

func TestGraphPoints(t *testing.T) {
	assert.Empty(t, GraphPoints(nil))

	results := make([]decimal.Decimal, 10)
	for i := range results {
		results[i] = money("0.25")
	}
	points := GraphPoints(results)
	require.Len(t, points, 10)
	assert.True(t, points[0].Equal(money("0.25")))
	assert.True(t, points[4].Equal(money("1.25")))
	assert.True(t, points[9].Equal(money("2.50")))
}

func TestGraphPointsSigned(t *testing.T) {
	points := GraphPoints([]decimal.Decimal{
		money("0.05"),
		money("2.00").Neg(),
		money("1.88"),
	})
	require.Len(t, points, 3)
	assert.True(t, points[1].Equal(money("1.95").Neg()))
	assert.True(t, points[2].Equal(money("0.07").Neg()))
}

func TestFrequencyTimeouts(t *testing.T) {
	hands := parseSession(t)

	timedOut := func(a handhistory.Action) bool {
		return a.Type == handhistory.TimedOut
	}
	assert.InDelta(t, 25.0, Frequency("rock_n_roll", hands, timedOut), 0.001)
	assert.InDelta(t, 0.0, Frequency("hero_cat", hands, timedOut), 0.001)
	assert.Equal(t, 0.0, Frequency("hero_cat", nil, timedOut))
}

func TestVPIP(t *testing.T) {
	hands := parseSession(t)

	// hero voluntarily puts money in everywhere but the blind-steal hand;
	// blind posts never count.
	assert.InDelta(t, 75.0, VPIP("hero_cat", hands), 0.001)
	assert.InDelta(t, 50.0, VPIP("villain77", hands), 0.001)
	assert.InDelta(t, 0.0, VPIP("nobody", hands), 0.001)
}
