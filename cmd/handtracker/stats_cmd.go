package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/lox/handtracker/internal/handhistory"
	"github.com/lox/handtracker/internal/stats"
)

var (
	statsTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	statsLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Width(14)

	statsWinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	statsLossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)
)

// StatsCmd prints a per-player session report.
type StatsCmd struct {
	Player string `help:"Player name (defaults to the configured hero)"`
	Path   string `arg:"" optional:"" help:"Hand history file or directory (defaults to configured history dirs)"`
}

func (cmd StatsCmd) Run(app *App) error {
	player, err := app.ResolvePlayer(cmd.Player)
	if err != nil {
		return err
	}
	hands, err := app.LoadHands(cmd.Path)
	if err != nil {
		return err
	}

	involved := stats.PlayerInvolved(player, hands)
	net := decimal.Zero
	shown := 0
	for _, hand := range involved {
		net = net.Add(stats.MoneyDifference(player, hand))
		if stats.CardsShown(player, hand).Known() {
			shown++
		}
	}
	vpip := stats.VPIP(player, involved)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", statsTitleStyle.Render(player))
	fmt.Fprintf(&b, "%s %d of %d\n", statsLabelStyle.Render("hands"), len(involved), len(hands))
	netStyle, rendered := statsWinStyle, "+$"+net.StringFixed(2)
	if net.IsNegative() {
		netStyle, rendered = statsLossStyle, "-$"+net.Abs().StringFixed(2)
	}
	fmt.Fprintf(&b, "%s %s\n", statsLabelStyle.Render("net"), netStyle.Render(rendered))
	fmt.Fprintf(&b, "%s %.1f%%\n", statsLabelStyle.Render("vpip"), vpip)
	fmt.Fprintf(&b, "%s %d\n", statsLabelStyle.Render("cards shown"), shown)
	fmt.Fprintf(&b, "%s %.1f%%\n", statsLabelStyle.Render("timeout rate"),
		stats.Frequency(player, involved, func(a handhistory.Action) bool {
			return a.Type == handhistory.TimedOut
		}))
	fmt.Print(b.String())
	return nil
}
