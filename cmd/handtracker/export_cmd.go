package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/lox/handtracker/internal/fileutil"
	"github.com/lox/handtracker/internal/phh"
)

// ExportCmd re-encodes parsed hands as PHH TOML, one section per hand.
type ExportCmd struct {
	Path string `arg:"" optional:"" help:"Hand history file or directory (defaults to configured history dirs)"`
	Out  string `help:"Output file (defaults to stdout)"`
}

func (cmd ExportCmd) Run(app *App) error {
	hands, err := app.LoadHands(cmd.Path)
	if err != nil {
		return err
	}
	if len(hands) == 0 {
		return fmt.Errorf("no hands to export")
	}

	var buf bytes.Buffer
	for i, hand := range hands {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if err := phh.Encode(&buf, phh.FromHandHistory(i, hand)); err != nil {
			return fmt.Errorf("encoding hand %d: %w", i+1, err)
		}
	}

	if cmd.Out == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := fileutil.WriteFileAtomic(cmd.Out, buf.Bytes(), 0o644); err != nil {
		return err
	}
	app.Logger.Info("exported hands", "hands", len(hands), "out", cmd.Out)
	return nil
}
