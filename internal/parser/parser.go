package parser

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/handtracker/internal/handhistory"
)

// Parser is the file-level driver. It is stateless apart from its logger
// and safe to reuse across files.
type Parser struct {
	logger *log.Logger
}

// New creates a parser. A nil logger falls back to the package default.
func New(logger *log.Logger) *Parser {
	if logger == nil {
		logger = log.Default()
	}
	return &Parser{logger: logger}
}

// Parse reads one hand-history log fully into memory and returns the
// hands that parsed cleanly, in source order. Individual malformed hands
// are skipped; a missing or unreadable file is a hard failure.
func (p *Parser) Parse(path string) ([]handhistory.HandHistory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading hand history: %w", err)
	}
	return p.ParseLines(splitIntoLines(data), path), nil
}

// ParseLines parses already-read log lines. The path is used only for
// logging skipped hands.
func (p *Parser) ParseLines(lines []string, path string) []handhistory.HandHistory {
	groups := SplitHands(lines)
	hands := make([]handhistory.HandHistory, 0, len(groups))
	for i, group := range groups {
		hand, err := assembleHand(group)
		if err != nil {
			p.logger.Debug("skipping invalid hand", "file", path, "hand", i+1, "err", err)
			continue
		}
		hands = append(hands, hand)
	}
	return hands
}

// ParseDir walks root recursively, parses every .txt file independently
// and concatenates the results in traversal order.
func (p *Parser) ParseDir(root string) ([]handhistory.HandHistory, error) {
	var all []handhistory.HandHistory
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".txt" {
			return nil
		}
		hands, err := p.Parse(path)
		if err != nil {
			return err
		}
		p.logger.Debug("parsed hand history file", "file", path, "hands", len(hands))
		all = append(all, hands...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return all, nil
}

func splitIntoLines(data []byte) []string {
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}
