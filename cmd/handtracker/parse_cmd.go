package main

import (
	"fmt"
)

// ParseCmd parses hand-history files and prints a one-line summary per
// parsed hand.
type ParseCmd struct {
	Path string `arg:"" optional:"" help:"Hand history file or directory (defaults to configured history dirs)"`
}

func (cmd ParseCmd) Run(app *App) error {
	hands, err := app.LoadHands(cmd.Path)
	if err != nil {
		return err
	}
	for i, hand := range hands {
		fmt.Printf("#%d %s %s ($%s/$%s) players=%d pot=$%s rake=$%s\n",
			i+1,
			hand.MetaData.Site,
			hand.MetaData.TableName,
			hand.MetaData.Stake.SmallBlind.StringFixed(2),
			hand.MetaData.Stake.BigBlind.StringFixed(2),
			len(hand.Players),
			hand.Result.Pot.StringFixed(2),
			hand.Result.Rake.StringFixed(2),
		)
	}
	fmt.Printf("%d hands parsed\n", len(hands))
	return nil
}
