package phh

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/lox/handtracker/internal/handhistory"
)

// Encode writes the hand to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *Hand) error {
	if hand == nil {
		return fmt.Errorf("phh: hand is nil")
	}

	enc := toml.NewEncoder(w)
	// Use tabs for arrays to match human expectations
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *Hand) ([]byte, error) {
	var buf strings.Builder
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// FromHandHistory converts one parsed hand into its PHH representation.
// The index numbers the hand within the exported session.
func FromHandHistory(index int, hand handhistory.HandHistory) *Hand {
	players := make([]string, len(hand.Players))
	stacks := make([]int64, len(hand.Players))
	for i, p := range hand.Players {
		players[i] = p.Name
		stacks[i] = cents(p.Stack)
	}

	out := &Hand{
		Variant: "NT",
		Table:   hand.MetaData.TableName,
		BlindsOrStraddles: []int64{
			cents(hand.MetaData.Stake.SmallBlind),
			cents(hand.MetaData.Stake.BigBlind),
		},
		StartingStacks: stacks,
		Players:        players,
		HandID:         fmt.Sprintf("hand-%d", index+1),
		Metadata: map[string]any{
			"site":        hand.MetaData.Site,
			"total_pot":   cents(hand.Result.Pot),
			"rake":        cents(hand.Result.Rake),
			"amount_unit": "cents",
		},
	}

	for _, street := range hand.Streets {
		if street.Type == handhistory.Summary {
			continue
		}
		for _, pa := range street.Actions {
			if formatted, ok := formatAction(playerIndex(hand.Players, pa.Player.Name), pa.Action); ok {
				out.Actions = append(out.Actions, formatted)
			}
		}
	}
	return out
}

// formatAction converts a typed action to a PHH action string. It returns
// false for blind posts, which are captured by blinds_or_straddles.
func formatAction(seat int, action handhistory.Action) (string, bool) {
	player := fmt.Sprintf("p%d", seat+1)
	switch action.Type {
	case handhistory.Fold, handhistory.TimedOut:
		return fmt.Sprintf("%s f", player), true
	case handhistory.Check, handhistory.Call:
		return fmt.Sprintf("%s cc", player), true
	case handhistory.Bet:
		return fmt.Sprintf("%s cbr %d", player, cents(action.Amount)), true
	case handhistory.Raise:
		return fmt.Sprintf("%s cbr %d", player, cents(action.To)), true
	case handhistory.Shows:
		return fmt.Sprintf("%s sm %s%s", player, action.Cards.Left, action.Cards.Right), true
	case handhistory.Posts:
		return "", false
	default:
		return fmt.Sprintf("# %s %s %d", player, action.Type, cents(action.Amount)), true
	}
}

func playerIndex(roster []handhistory.Player, name string) int {
	for i, p := range roster {
		if p.Name == name {
			return i
		}
	}
	return 0
}

func cents(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
