// Package tui implements an interactive browser over parsed hand
// histories: one hand per page, left/right to move between hands,
// up/down to scroll within one.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/lox/handtracker/internal/handhistory"
	"github.com/lox/handtracker/internal/stats"
)

// BrowserModel is the Bubble Tea model for the hand browser.
type BrowserModel struct {
	hands []handhistory.HandHistory
	hero  string

	viewport viewport.Model
	index    int

	width       int
	height      int
	initialized bool
	quitting    bool
}

// NewBrowser creates a browser over the given hands. The hero name is
// used to annotate each hand with that player's net result; it may be
// empty.
func NewBrowser(hands []handhistory.HandHistory, hero string) *BrowserModel {
	vp := viewport.New(10, 5)
	return &BrowserModel{hands: hands, hero: hero, viewport: vp}
}

// Run drives the browser to completion on the current terminal.
func Run(hands []handhistory.HandHistory, hero string) error {
	if len(hands) == 0 {
		return fmt.Errorf("no hands to browse")
	}
	_, err := tea.NewProgram(NewBrowser(hands, hero), tea.WithAltScreen()).Run()
	return err
}

func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "left", "h":
			if m.index > 0 {
				m.index--
				m.refresh()
			}
			return m, nil
		case "right", "l":
			if m.index < len(m.hands)-1 {
				m.index++
				m.refresh()
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 3 // header + footer
		m.initialized = true
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *BrowserModel) View() string {
	if m.quitting || !m.initialized || len(m.hands) == 0 {
		return ""
	}
	header := HeaderStyle.Render(fmt.Sprintf(" hand %d/%d ", m.index+1, len(m.hands)))
	footer := InfoStyle.Render("←/→ hand  ↑/↓ scroll  q quit")
	return header + "\n" + m.viewport.View() + "\n" + footer
}

func (m *BrowserModel) refresh() {
	m.viewport.SetContent(renderHand(m.hands[m.index], m.hero))
	m.viewport.GotoTop()
}

// renderHand formats one hand for display.
func renderHand(hand handhistory.HandHistory, hero string) string {
	var b strings.Builder

	md := hand.MetaData
	fmt.Fprintf(&b, "%s\n", PlayerStyle.Render(fmt.Sprintf("%s - %s ($%s/$%s)",
		md.Site, md.TableName, md.Stake.SmallBlind.StringFixed(2), md.Stake.BigBlind.StringFixed(2))))
	fmt.Fprintf(&b, "%s\n\n", InfoStyle.Render(fmt.Sprintf("pot $%s, rake $%s",
		hand.Result.Pot.StringFixed(2), hand.Result.Rake.StringFixed(2))))

	for _, p := range hand.Players {
		fmt.Fprintf(&b, "%s\n", PlayerStyle.Render(fmt.Sprintf("  %s ($%s)", p.Name, p.Stack.StringFixed(2))))
	}

	for _, street := range hand.Streets {
		fmt.Fprintf(&b, "\n%s\n", StreetStyle.Render(street.Type.String()))
		for _, pa := range street.Actions {
			b.WriteString("  " + formatAction(pa) + "\n")
		}
	}

	if hero != "" {
		if _, ok := hand.PlayerNamed(hero); ok {
			diff := stats.MoneyDifference(hero, hand)
			style := WinStyle
			if diff.IsNegative() {
				style = LossStyle
			}
			fmt.Fprintf(&b, "\n%s\n", style.Render(fmt.Sprintf("%s: %s", hero, signed(diff))))
		}
	}
	return b.String()
}

func formatAction(pa handhistory.PlayerAction) string {
	a := pa.Action
	switch a.Type {
	case handhistory.Raise:
		return fmt.Sprintf("%s raises $%s to $%s", pa.Player.Name, a.Amount.StringFixed(2), a.To.StringFixed(2))
	case handhistory.Call, handhistory.Bet, handhistory.Posts,
		handhistory.CollectUncalled, handhistory.CollectFromPot:
		return fmt.Sprintf("%s %s $%s", pa.Player.Name, a.Type, a.Amount.StringFixed(2))
	case handhistory.Shows, handhistory.MucksAndShows, handhistory.ShowedAndLost:
		return fmt.Sprintf("%s %s [%s]", pa.Player.Name, a.Type, a.Cards)
	case handhistory.ShowedAndWon:
		return fmt.Sprintf("%s %s [%s] ($%s)", pa.Player.Name, a.Type, a.Cards, a.Amount.StringFixed(2))
	default:
		return fmt.Sprintf("%s %s", pa.Player.Name, a.Type)
	}
}

func signed(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "+$" + d.StringFixed(2)
}
