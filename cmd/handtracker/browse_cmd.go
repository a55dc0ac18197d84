package main

import (
	"github.com/lox/handtracker/internal/tui"
)

// BrowseCmd opens the interactive hand browser.
type BrowseCmd struct {
	Player string `help:"Player to annotate results for (defaults to the configured hero)"`
	Path   string `arg:"" optional:"" help:"Hand history file or directory (defaults to configured history dirs)"`
}

func (cmd BrowseCmd) Run(app *App) error {
	hands, err := app.LoadHands(cmd.Path)
	if err != nil {
		return err
	}
	hero := cmd.Player
	if hero == "" {
		hero = app.Config.Tracker.Hero
	}
	return tui.Run(hands, hero)
}
