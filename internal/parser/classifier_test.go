package parser

import "testing"

func TestClassifyFullHand(t *testing.T) {
	lines := []string{
		"PokerStars Game #1:  Hold'em No Limit ($0.05/$0.10 USD) - 2024/03/17 20:01:11 ET",
		"Table 'Arcturus II' 6-max Seat #1 is the button",
		"Seat 1: villain77 ($10.00 in chips)",
		"Seat 2: hero_cat ($9.50 in chips)",
		"villain77: posts small blind $0.05",
		"hero_cat: posts big blind $0.10",
		"*** HOLE CARDS ***",
		"Dealt to hero_cat [7c 2d]",
		"villain77: folds",
		"Uncalled bet ($0.05) returned to hero_cat",
		"*** SUMMARY ***",
		"Total pot $0.10 | Rake $0.00",
	}
	want := []Section{
		SectionMetaData,
		SectionMetaData,
		SectionPlayers,
		SectionPlayers,
		SectionBlinds,
		SectionBlinds,
		SectionBlinds, // banner carries no marker of its own
		SectionHero,
		SectionPreflop,
		SectionPreflop,
		SectionSummary,
		SectionSummary,
	}

	tagged := Classify(lines)
	if len(tagged) != len(want) {
		t.Fatalf("got %d tagged lines, want %d", len(tagged), len(want))
	}
	for i, tl := range tagged {
		if tl.Section != want[i] {
			t.Errorf("line %d (%q): got %s, want %s", i, tl.Text, tl.Section, want[i])
		}
		if tl.Text != lines[i] {
			t.Errorf("line %d: text changed to %q", i, tl.Text)
		}
	}
}

func TestClassifyBannersTagTheirOwnStreet(t *testing.T) {
	banners := map[string]Section{
		"*** FLOP *** [2h 8c Qc]":       SectionFlop,
		"*** TURN *** [2h 8c Qc] [4d]":  SectionTurn,
		"*** RIVER *** [2h 8c Qc] [9s]": SectionRiver,
		"*** SHOW DOWN ***":             SectionShowDown,
		"*** SUMMARY ***":               SectionSummary,
	}
	for line, want := range banners {
		if got := nextSection(SectionPreflop, line); got != want {
			t.Errorf("nextSection(Preflop, %q) = %s, want %s", line, got, want)
		}
	}
}

func TestClassifyHeroIsOneShot(t *testing.T) {
	// Any non-marker line directly after the hero deal becomes Preflop.
	if got := nextSection(SectionHero, "villain77: folds"); got != SectionPreflop {
		t.Errorf("got %s, want Preflop", got)
	}
	// A banner on the very next line wins over the one-shot rule; the
	// forward-only cursor then skips the streets in between.
	if got := nextSection(SectionHero, "*** SUMMARY ***"); got != SectionSummary {
		t.Errorf("got %s, want Summary", got)
	}
}

func TestClassifyBlindPostOpensBlinds(t *testing.T) {
	// Both blind-post phrasings must advance the cursor out of Players,
	// or the posted blind would be lost to the seat-line parser.
	posts := []string{
		"villain77: posts small blind $0.05",
		"villain77 posts small blind $0.05",
	}
	for _, line := range posts {
		if got := nextSection(SectionPlayers, line); got != SectionBlinds {
			t.Errorf("nextSection(Players, %q) = %s, want Blinds", line, got)
		}
	}
}

func TestClassifyNeverMovesBackwards(t *testing.T) {
	// A stray seat-like listing late in the hand must not reset the
	// cursor to Players.
	if got := nextSection(SectionSummary, "Seat 1: villain77 ($10.00 in chips)"); got != SectionSummary {
		t.Errorf("got %s, want Summary", got)
	}
	if got := nextSection(SectionRiver, "x: posts small blind $0.05"); got != SectionRiver {
		t.Errorf("got %s, want River", got)
	}
}
