package handhistory

import "testing"

func TestParseMoney(t *testing.T) {
	valid := map[string]string{
		"$0.05":   "0.05",
		"0.05":    "0.05",
		" $3.88 ": "3.88",
		"$10":     "10",
		"$0.00":   "0",
	}
	for input, want := range valid {
		got, err := ParseMoney(input)
		if err != nil {
			t.Errorf("ParseMoney(%q): %v", input, err)
			continue
		}
		if got.String() != want {
			t.Errorf("ParseMoney(%q) = %s, want %s", input, got, want)
		}
	}

	invalid := []string{"", "$", "abc", "$-1.00", "$1.2.3"}
	for _, input := range invalid {
		if _, err := ParseMoney(input); err == nil {
			t.Errorf("ParseMoney(%q): expected error", input)
		}
	}
}

func TestMustMoneyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid input")
		}
	}()
	MustMoney("nope")
}
