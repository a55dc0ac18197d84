package handhistory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseMoney converts a textual money token into a decimal amount. A
// leading currency symbol and surrounding whitespace are tolerated
// ("$0.05", "0.05", " $3.88 ").
func ParseMoney(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "$")
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty money token %q", s)
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid money token %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative money token %q", s)
	}
	return d, nil
}

// MustMoney is ParseMoney for static values; it panics on bad input.
func MustMoney(s string) decimal.Decimal {
	d, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return d
}
