package abc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// DefaultDuration is a quarter note.
const DefaultDuration = 4.0

// CalcDuration turns the digits and slashes written after a pitch into a
// duration value where 1 is a whole note and 4 a quarter. The written text
// is a fraction of a quarter note, so the result is 4 divided by it.
//
//	""   -> 4
//	"/"  -> 8, "//" -> 16 (each bare slash halves)
//	"/2" -> 8 (implicit numerator 1)
//	"2"  -> 2, "3/2" -> 8/3
func CalcDuration(d string) (float64, error) {
	if d == "" {
		return DefaultDuration, nil
	}
	if k := strings.Count(d, "/"); k == len(d) {
		return DefaultDuration * math.Pow(2, float64(k)), nil
	}
	if d[0] == '/' {
		d = "1" + d
	}

	num, den := d, "1"
	if i := strings.IndexByte(d, '/'); i >= 0 {
		num, den = d[:i], d[i+1:]
	}
	n, err := parseDigits(num)
	if err != nil {
		return 0, &DurationError{Pos: -1, Duration: d, Msg: "numerator " + err.Error()}
	}
	m, err := parseDigits(den)
	if err != nil {
		return 0, &DurationError{Pos: -1, Duration: d, Msg: "denominator " + err.Error()}
	}
	if n == 0 {
		return 0, &DurationError{Pos: -1, Duration: d, Msg: "zero length"}
	}
	if m == 0 {
		return 0, &DurationError{Pos: -1, Duration: d, Msg: "division by zero"}
	}
	return DefaultDuration * float64(m) / float64(n), nil
}

func parseDigits(s string) (uint64, error) {
	if s == "" {
		return 0, errEmpty
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errNotDigits
		}
	}
	return strconv.ParseUint(s, 10, 32)
}

var (
	errEmpty     = errors.New("is missing")
	errNotDigits = errors.New("is not a whole number")
)
