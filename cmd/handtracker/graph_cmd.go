package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lox/handtracker/internal/stats"
)

// GraphCmd prints the running profit total after each hand the player was
// involved in, one point per line, ready for plotting.
type GraphCmd struct {
	Player string `help:"Player name (defaults to the configured hero)"`
	Path   string `arg:"" optional:"" help:"Hand history file or directory (defaults to configured history dirs)"`
}

func (cmd GraphCmd) Run(app *App) error {
	player, err := app.ResolvePlayer(cmd.Player)
	if err != nil {
		return err
	}
	hands, err := app.LoadHands(cmd.Path)
	if err != nil {
		return err
	}

	involved := stats.PlayerInvolved(player, hands)
	diffs := make([]decimal.Decimal, len(involved))
	for i, hand := range involved {
		diffs[i] = stats.MoneyDifference(player, hand)
	}
	for i, point := range stats.GraphPoints(diffs) {
		fmt.Printf("%d\t%s\n", i+1, point.StringFixed(2))
	}
	return nil
}
