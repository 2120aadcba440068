package abc

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNotation = errors.New("invalid notation")
	ErrInvalidDuration = errors.New("invalid duration")
)

// NotationError is a marker that needs a pitch in progress (an octave
// shift or a sharp) found with none open. Pos counts runes after language
// substitution.
type NotationError struct {
	Pos  int
	Char rune
	Msg  string
}

func (e *NotationError) Error() string {
	return fmt.Sprintf("invalid notation at %d (%q): %s", e.Pos, e.Char, e.Msg)
}

func (e *NotationError) Is(target error) bool {
	return target == ErrInvalidNotation
}

// DurationError is an accumulated duration string that is not a
// numerator/denominator expression. Pos is where the token ended.
type DurationError struct {
	Pos      int
	Duration string
	Msg      string
}

func (e *DurationError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("invalid duration %q: %s", e.Duration, e.Msg)
	}
	return fmt.Sprintf("invalid duration %q at %d: %s", e.Duration, e.Pos, e.Msg)
}

func (e *DurationError) Is(target error) bool {
	return target == ErrInvalidDuration
}
