package parser

import (
	"errors"
	"fmt"
)

// ErrInvalidHand marks a hand whose lines do not fit the known grammar: a
// required line is absent, a pattern fails to match, an amount is
// malformed, or an acting player is not in the roster. The file-level
// driver catches it per hand and drops that hand from the output.
var ErrInvalidHand = errors.New("invalid hand")

func invalidHandf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidHand)
}
