// Package handhistory defines the structured model a parsed hand-history
// log is converted into. Values are constructed once per parse pass and
// never mutated afterwards.
package handhistory

import "github.com/shopspring/decimal"

// NoCard is the sentinel token used when a player's hole cards are unknown.
const NoCard = "??"

// Player describes a seated player at hand start.
type Player struct {
	Name  string
	Stack decimal.Decimal
}

// HoleCards holds a two-card hand as rank+suit tokens (e.g. "Ac").
type HoleCards struct {
	Left  string
	Right string
}

// NoCards is the sentinel pair returned when a player never revealed.
var NoCards = HoleCards{Left: NoCard, Right: NoCard}

// Known returns true if the cards are not the sentinel pair.
func (h HoleCards) Known() bool {
	return h.Left != NoCard && h.Right != NoCard
}

func (h HoleCards) String() string {
	return h.Left + " " + h.Right
}

// ActionType discriminates the closed set of action variants.
type ActionType int

const (
	Check ActionType = iota
	Fold
	Call
	Bet
	Raise
	Posts
	CollectUncalled
	CollectFromPot
	TimedOut
	DoesntShow
	Shows
	Mucks
	MucksAndShows
	ShowedAndWon
	ShowedAndLost
)

// String returns the action name used in rendered output.
func (t ActionType) String() string {
	switch t {
	case Check:
		return "checks"
	case Fold:
		return "folds"
	case Call:
		return "calls"
	case Bet:
		return "bets"
	case Raise:
		return "raises"
	case Posts:
		return "posts"
	case CollectUncalled:
		return "collects uncalled bet"
	case CollectFromPot:
		return "collects from pot"
	case TimedOut:
		return "timed out"
	case DoesntShow:
		return "doesn't show"
	case Shows:
		return "shows"
	case Mucks:
		return "mucks"
	case MucksAndShows:
		return "mucks (shown)"
	case ShowedAndWon:
		return "showed and won"
	case ShowedAndLost:
		return "showed and lost"
	default:
		return "unknown"
	}
}

// Action is one variant of the closed action union. Which payload fields
// are meaningful depends on Type:
//
//	Call, Bet, Posts, CollectUncalled, CollectFromPot  -> Amount
//	Raise                                              -> Amount (base), To
//	Shows, MucksAndShows, ShowedAndLost                -> Cards
//	ShowedAndWon                                       -> Cards, Amount
//	Check, Fold, TimedOut, DoesntShow, Mucks           -> none
type Action struct {
	Type   ActionType
	Amount decimal.Decimal
	To     decimal.Decimal
	Cards  HoleCards
}

// PlayerAction attributes one action event to one player.
type PlayerAction struct {
	Player Player
	Action Action
}

// StreetType identifies a betting round or non-betting section.
type StreetType int

const (
	Blinds StreetType = iota
	Preflop
	Flop
	Turn
	River
	ShowDown
	Summary
)

func (t StreetType) String() string {
	switch t {
	case Blinds:
		return "Blinds"
	case Preflop:
		return "Preflop"
	case Flop:
		return "Flop"
	case Turn:
		return "Turn"
	case River:
		return "River"
	case ShowDown:
		return "ShowDown"
	case Summary:
		return "Summary"
	default:
		return "unknown"
	}
}

// Street is an ordered run of actions within one section of a hand.
// Streets with no actions are dropped during assembly.
type Street struct {
	Type    StreetType
	Actions []PlayerAction
}

// Stake is the blind structure for a hand.
type Stake struct {
	SmallBlind decimal.Decimal
	BigBlind   decimal.Decimal
}

// MetaData carries the site and table identification for a hand.
type MetaData struct {
	Site      string
	TableName string
	Stake     Stake
}

// Result is the closing summary of a hand.
type Result struct {
	Pot  decimal.Decimal
	Rake decimal.Decimal
}

// Hero is the viewpoint player together with the cards dealt to them.
// It is consumed during assembly and not retained on HandHistory.
type Hero struct {
	Player Player
	Cards  HoleCards
}

// HandHistory is the assembled record for one hand, the sole artifact
// consumed by downstream statistics.
type HandHistory struct {
	MetaData MetaData
	Players  []Player
	Streets  []Street
	Result   Result
}

// PlayerNamed returns the roster entry with the given exact-case name.
func (h HandHistory) PlayerNamed(name string) (Player, bool) {
	for _, p := range h.Players {
		if p.Name == name {
			return p, true
		}
	}
	return Player{}, false
}

// StreetOfType returns the street with the given type, if present.
func (h HandHistory) StreetOfType(t StreetType) (Street, bool) {
	for _, s := range h.Streets {
		if s.Type == t {
			return s, true
		}
	}
	return Street{}, false
}
