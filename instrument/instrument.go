package instrument

import (
	"errors"
	"fmt"

	"github.com/jsphweid/barscribe/note"
)

var ErrUnknownInstrument = errors.New("unknown instrument")

type Instrument struct {
	Name  string
	Range [2]note.Note
	Clef  string

	// 0 means no limit
	MaxNotes int

	Program MidiInstr
}

func Default() *Instrument {
	return &Instrument{
		Name:  "Instrument",
		Range: [2]note.Note{note.MustNew("C", 0), note.MustNew("C", 8)},
		Clef:  "bass and treble",
	}
}

func Piano() *Instrument {
	return &Instrument{
		Name:    "Piano",
		Range:   [2]note.Note{note.MustNew("F", 0), note.MustNew("B", 8)},
		Clef:    "bass and treble",
		Program: AcousticGrandPiano,
	}
}

func Guitar() *Instrument {
	return &Instrument{
		Name:     "Guitar",
		Range:    [2]note.Note{note.MustNew("E", 3), note.MustNew("E", 7)},
		Clef:     "Treble",
		MaxNotes: 6,
		Program:  AcousticGuitarNylon,
	}
}

// Midi returns a General MIDI instrument covering C-0 to B-8.
func Midi(program MidiInstr) *Instrument {
	return &Instrument{
		Name:    program.String(),
		Range:   [2]note.Note{note.MustNew("C", 0), note.MustNew("B", 8)},
		Clef:    "bass and treble",
		Program: program,
	}
}

func (i *Instrument) SetRange(low, high note.Note) error {
	if high.Less(low) {
		return fmt.Errorf("range %v - %v is inverted", low, high)
	}
	i.Range = [2]note.Note{low, high}
	return nil
}

func (i *Instrument) NoteInRange(n note.Note) bool {
	v := n.Int()
	return v >= i.Range[0].Int() && v <= i.Range[1].Int()
}

func (i *Instrument) CanPlayNotes(notes []note.Note) bool {
	if i.MaxNotes > 0 && len(notes) > i.MaxNotes {
		return false
	}
	for _, n := range notes {
		if !i.NoteInRange(n) {
			return false
		}
	}
	return true
}

func (i *Instrument) String() string {
	return fmt.Sprintf("%s [%v - %v]", i.Name, i.Range[0], i.Range[1])
}
