package abc

import (
	"errors"
	"strings"

	"github.com/jsphweid/barscribe/bar"
	"github.com/jsphweid/barscribe/note"
)

var ErrNoTarget = errors.New("no target to place notes into")

type state int

const (
	idle state = iota
	pitchOpen
	restOpen
)

// scanner holds the token in progress. Digits and slashes collect in
// duration until the token is emitted.
type scanner struct {
	out      cursor
	state    state
	pitch    note.Note
	duration strings.Builder

	// a 'b' right after an uppercase pitch letter or its accidental is a
	// flat. After a lowercase letter 'b' is always the pitch b.
	upper       bool
	flatAllowed bool
}

// ToBars parses text and places the resulting notes and rests into target.
//
// Uppercase A-G are pitches in octave 4, lowercase a-g in octave 5. '#'
// is a sharp. A 'b' directly after an uppercase letter is a flat, so "Bb"
// is B-flat and "bb" is two b notes. ' and , shift the octave, Z or z is a
// rest, digits and '/' give the duration (see CalcDuration). Spaces and '|'
// are cosmetic. Other characters are ignored.
//
// For IntoBars and IntoTrack a new bar is started when the last one is full
// or too short for the next note or rest.
//
// Parsing stops at the first error. Notes placed before the error stay in
// target.
func ToBars(text string, target Target, lang Language) error {
	out, ok := target.cursor()
	if !ok {
		return ErrNoTarget
	}
	s := scanner{out: out}

	pos := 0
	for _, r := range Translate(text, lang) {
		if err := s.step(pos, r); err != nil {
			return err
		}
		pos++
	}
	return s.emit(pos)
}

// Parse parses text into a fresh sequence of 4/4 bars in C.
func Parse(text string, lang Language) ([]*bar.Bar, error) {
	var bars []*bar.Bar
	err := ToBars(text, IntoBars(&bars), lang)
	return bars, err
}

// ParseWith parses text into bars that start with the given key and meter.
func ParseWith(text string, lang Language, key string, meter bar.Meter) ([]*bar.Bar, error) {
	first, err := bar.New(key, meter)
	if err != nil {
		return nil, err
	}
	bars := []*bar.Bar{first}
	err = ToBars(text, IntoBars(&bars), lang)
	return bars, err
}

func (s *scanner) step(pos int, r rune) error {
	flatAllowed := s.flatAllowed
	s.flatAllowed = false

	switch {
	case r >= 'A' && r <= 'G':
		return s.open(pos, r, note.DefaultOctave, true)
	case r == 'b' && flatAllowed:
		s.pitch.Name += "b"
		s.flatAllowed = true
	case r >= 'a' && r <= 'g':
		return s.open(pos, r-'a'+'A', note.DefaultOctave+1, false)
	case r == '#':
		if s.state != pitchOpen {
			return &NotationError{Pos: pos, Char: r, Msg: "sharp without a pitch"}
		}
		s.pitch.Name += "#"
		s.flatAllowed = s.upper
	case r == 'Z' || r == 'z':
		if err := s.emit(pos); err != nil {
			return err
		}
		s.state = restOpen
	case r == '\'':
		if s.state != pitchOpen {
			return &NotationError{Pos: pos, Char: r, Msg: "octave up without a pitch"}
		}
		s.pitch.OctaveUp()
	case r == ',':
		if s.state != pitchOpen {
			return &NotationError{Pos: pos, Char: r, Msg: "octave down without a pitch"}
		}
		s.pitch.OctaveDown()
	case r == ' ' || r == '|':
	case (r >= '0' && r <= '9') || r == '/':
		s.duration.WriteRune(r)
	}
	return nil
}

func (s *scanner) open(pos int, letter rune, octave int, upper bool) error {
	if err := s.emit(pos); err != nil {
		return err
	}
	s.pitch = note.MustNew(string(letter), octave)
	s.state = pitchOpen
	s.upper = upper
	s.flatAllowed = upper
	return nil
}

// emit places the open pitch or rest with the duration collected so far.
// With nothing open the duration is kept for the first token.
func (s *scanner) emit(pos int) error {
	if s.state == idle {
		return nil
	}
	d, err := CalcDuration(s.duration.String())
	if err != nil {
		var de *DurationError
		if errors.As(err, &de) {
			de.Pos = pos
		}
		return err
	}

	var n *note.Note
	if s.state == pitchOpen {
		p := s.pitch
		n = &p
	}
	s.state = idle
	s.duration.Reset()
	return s.out.place(n, d)
}
