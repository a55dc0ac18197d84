// Package stats derives per-player statistics from parsed hand histories.
// Every function here is a stateless fold over the assembled model.
package stats

import (
	"github.com/shopspring/decimal"

	"github.com/lox/handtracker/internal/handhistory"
)

// MoneyDifference returns the signed net result for the named player over
// one hand: everything collected minus everything contributed. The caller
// must pass a player from the hand's roster.
//
// Contributions are tracked per betting round. Blinds and preflop share a
// round, because a preflop "raises $X to $Y" states the player's total for
// the round including any blind they posted; within a round a raise
// replaces the raiser's contribution while calls, bets and posts add
// incrementally. Summary actions are ignored: the collect lines they carry
// duplicate ones already present in the hand body.
func MoneyDifference(name string, hand handhistory.HandHistory) decimal.Decimal {
	diff := decimal.Zero
	contribution := decimal.Zero
	round := -1
	for _, street := range hand.Streets {
		if street.Type == handhistory.Summary {
			continue
		}
		if r := bettingRound(street.Type); r != round {
			diff = diff.Sub(contribution)
			contribution = decimal.Zero
			round = r
		}
		for _, pa := range street.Actions {
			if pa.Player.Name != name {
				continue
			}
			switch pa.Action.Type {
			case handhistory.Posts, handhistory.Call, handhistory.Bet:
				contribution = contribution.Add(pa.Action.Amount)
			case handhistory.Raise:
				contribution = pa.Action.To
			case handhistory.CollectUncalled, handhistory.CollectFromPot:
				diff = diff.Add(pa.Action.Amount)
			}
		}
	}
	return diff.Sub(contribution)
}

// bettingRound groups street types into betting rounds for contribution
// tracking. Blinds and preflop are one round.
func bettingRound(t handhistory.StreetType) int {
	switch t {
	case handhistory.Blinds, handhistory.Preflop:
		return 0
	case handhistory.Flop:
		return 1
	case handhistory.Turn:
		return 2
	case handhistory.River:
		return 3
	default:
		return 4
	}
}

// CardsShown returns the two cards the named player revealed anywhere in
// the hand, or the sentinel pair if they never did.
func CardsShown(name string, hand handhistory.HandHistory) handhistory.HoleCards {
	for _, street := range hand.Streets {
		for _, pa := range street.Actions {
			if pa.Player.Name != name {
				continue
			}
			switch pa.Action.Type {
			case handhistory.Shows, handhistory.ShowedAndWon,
				handhistory.ShowedAndLost, handhistory.MucksAndShows:
				return pa.Action.Cards
			}
		}
	}
	return handhistory.NoCards
}

// PlayerInvolved returns the subset of hands whose roster contains the
// exact-case name. No substring or case-folding semantics.
func PlayerInvolved(name string, hands []handhistory.HandHistory) []handhistory.HandHistory {
	var involved []handhistory.HandHistory
	for _, hand := range hands {
		if _, ok := hand.PlayerNamed(name); ok {
			involved = append(involved, hand)
		}
	}
	return involved
}

// GraphPoints converts a sequence of per-hand results into cumulative
// graph points of equal length.
func GraphPoints(results []decimal.Decimal) []decimal.Decimal {
	points := make([]decimal.Decimal, len(results))
	sum := decimal.Zero
	for i, r := range results {
		sum = sum.Add(r)
		points[i] = sum
	}
	return points
}

// Frequency returns the percentage (0-100) of the given hands in which the
// predicate holds for at least one of the named player's actions. Hands
// where the player is not seated still count toward the denominator.
func Frequency(name string, hands []handhistory.HandHistory, predicate func(handhistory.Action) bool) float64 {
	if len(hands) == 0 {
		return 0
	}
	matched := 0
	for _, hand := range hands {
		if actedWith(name, hand, predicate) {
			matched++
		}
	}
	return float64(matched) / float64(len(hands)) * 100
}

// VPIP is the voluntarily-put-money-in-pot rate: the percentage of hands
// in which the player called, bet or raised. Blind posts do not count.
func VPIP(name string, hands []handhistory.HandHistory) float64 {
	return Frequency(name, hands, func(a handhistory.Action) bool {
		switch a.Type {
		case handhistory.Call, handhistory.Bet, handhistory.Raise:
			return true
		}
		return false
	})
}

func actedWith(name string, hand handhistory.HandHistory, predicate func(handhistory.Action) bool) bool {
	for _, street := range hand.Streets {
		for _, pa := range street.Actions {
			if pa.Player.Name == name && predicate(pa.Action) {
				return true
			}
		}
	}
	return false
}
