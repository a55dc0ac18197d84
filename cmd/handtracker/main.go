package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`
	Config  string           `help:"Path to the tracker config file" default:"handtracker.hcl"`

	Parse  ParseCmd  `cmd:"" help:"Parse hand history files and summarize what was found"`
	Stats  StatsCmd  `cmd:"" help:"Per-player session statistics"`
	Graph  GraphCmd  `cmd:"" help:"Cumulative profit points for a player"`
	Export ExportCmd `cmd:"" help:"Export parsed hands as PHH TOML"`
	Browse BrowseCmd `cmd:"" help:"Browse parsed hands interactively"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handtracker"),
		kong.Description("Poker hand-history parser and session tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	app, err := newApp(cli.Debug, cli.Config)
	ctx.FatalIfErrorf(err)
	err = ctx.Run(app)
	ctx.FatalIfErrorf(err)
}
