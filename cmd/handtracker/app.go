package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/handtracker/internal/config"
	"github.com/lox/handtracker/internal/handhistory"
	"github.com/lox/handtracker/internal/parser"
)

// App carries the shared dependencies every command runs with.
type App struct {
	Logger *log.Logger
	Config *config.Config
	Parser *parser.Parser
}

func newApp(debug bool, configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	level := log.InfoLevel
	if parsed, err := log.ParseLevel(cfg.Tracker.LogLevel); err == nil {
		level = parsed
	}
	if debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	return &App{
		Logger: logger,
		Config: cfg,
		Parser: parser.New(logger),
	}, nil
}

// LoadHands parses the given file or directory; with an empty path it
// scans the configured history directories instead.
func (a *App) LoadHands(path string) ([]handhistory.HandHistory, error) {
	if path == "" {
		dirs := a.Config.Dirs()
		if len(dirs) == 0 {
			return nil, errors.New("no path given and no history directories configured")
		}
		var all []handhistory.HandHistory
		for _, dir := range dirs {
			hands, err := a.Parser.ParseDir(dir)
			if err != nil {
				return nil, err
			}
			all = append(all, hands...)
		}
		return all, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return a.Parser.ParseDir(path)
	}
	return a.Parser.Parse(path)
}

// ResolvePlayer picks the player name for stats commands: the explicit
// flag wins, then the configured hero.
func (a *App) ResolvePlayer(name string) (string, error) {
	if name != "" {
		return name, nil
	}
	if a.Config.Tracker.Hero != "" {
		return a.Config.Tracker.Hero, nil
	}
	return "", fmt.Errorf("no player given and no hero configured")
}
