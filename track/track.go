package track

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/barscribe/bar"
	"github.com/jsphweid/barscribe/instrument"
	"github.com/jsphweid/barscribe/note"
)

var (
	ErrNoteOutOfRange = errors.New("note out of instrument range")
	ErrTooLong        = errors.New("duration does not fit an empty bar")
)

type Track struct {
	Name       string
	Instrument *instrument.Instrument
	Bars       []*bar.Bar
}

func New(instr *instrument.Instrument) *Track {
	if instr == nil {
		instr = instrument.Default()
	}
	return &Track{Instrument: instr}
}

func (t *Track) AddBar(b *bar.Bar) {
	t.Bars = append(t.Bars, b)
}

// Extend appends copies of bars so a refrain can be added more than once.
func (t *Track) Extend(bars []*bar.Bar) {
	for _, b := range bars {
		c := *b
		c.Placements = append([]bar.Placement(nil), b.Placements...)
		t.Bars = append(t.Bars, &c)
	}
}

// AddNotes places n (nil for a rest) in the last bar, starting a new bar
// with the same key and meter when the last one is full or cannot hold the
// duration.
func (t *Track) AddNotes(n *note.Note, duration float64) error {
	if n != nil && t.Instrument != nil && !t.Instrument.NoteInRange(*n) {
		return fmt.Errorf("%w: %v on %v", ErrNoteOutOfRange, *n, t.Instrument)
	}
	if len(t.Bars) == 0 {
		t.Bars = append(t.Bars, bar.NewDefault())
	}
	last := t.Bars[len(t.Bars)-1]
	next, ok := PlaceOrAdvance(last, n, duration)
	if !ok {
		return fmt.Errorf("%w: %v in %v", ErrTooLong, duration, last.Meter)
	}
	if next != nil {
		t.Bars = append(t.Bars, next)
	}
	return nil
}

// PlaceOrAdvance places n in last, or in a successor of last when last is
// full or too short. The successor is returned when it was used. ok is
// false when the duration does not fit even an empty bar.
func PlaceOrAdvance(last *bar.Bar, n *note.Note, duration float64) (next *bar.Bar, ok bool) {
	if last.PlaceNotes(n, duration) {
		return nil, true
	}
	next = last.Successor()
	if !next.PlaceNotes(n, duration) {
		return nil, false
	}
	return next, true
}

func (t *Track) Len() int {
	return len(t.Bars)
}

func (t *Track) String() string {
	parts := make([]string, len(t.Bars))
	for i, b := range t.Bars {
		parts[i] = b.String()
	}
	return strings.Join(parts, " | ")
}
