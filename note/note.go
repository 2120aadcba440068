package note

import (
	"errors"
	"fmt"
	"strings"
)

const DefaultOctave = 4

const DefaultVelocity = 64

var ErrNoteFormat = errors.New("invalid note")

var pitchClasses = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

var sharpNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Note is a pitch: a letter name with optional accidentals plus an octave.
// C-4 is middle C.
type Note struct {
	Name     string
	Octave   int
	Velocity uint8
	Channel  uint8
}

func New(name string, octave int) (Note, error) {
	if err := validateName(name); err != nil {
		return Note{}, err
	}
	return Note{Name: name, Octave: octave, Velocity: DefaultVelocity}, nil
}

// MustNew is New for names known at compile time.
func MustNew(name string, octave int) Note {
	n, err := New(name, octave)
	if err != nil {
		panic(err)
	}
	return n
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrNoteFormat)
	}
	if _, ok := pitchClasses[name[0]]; !ok {
		return fmt.Errorf("%w: %q does not start with A-G", ErrNoteFormat, name)
	}
	for _, c := range name[1:] {
		if c != '#' && c != 'b' {
			return fmt.Errorf("%w: unknown accidental %q in %q", ErrNoteFormat, c, name)
		}
	}
	return nil
}

func FromInt(i int) Note {
	octave := i / 12
	pc := i % 12
	if pc < 0 {
		pc += 12
		octave--
	}
	return Note{Name: sharpNames[pc], Octave: octave, Velocity: DefaultVelocity}
}

func (n Note) accidentalOffset() int {
	offset := 0
	for _, c := range n.Name[1:] {
		switch c {
		case '#':
			offset++
		case 'b':
			offset--
		}
	}
	return offset
}

// Int counts semitones from C-0. Accidentals are not wrapped, so B#-4
// equals C-5.
func (n Note) Int() int {
	return n.Octave*12 + pitchClasses[n.Name[0]] + n.accidentalOffset()
}

// MidiKey is Int shifted so that C-4 lands on key 60.
func (n Note) MidiKey() (uint8, error) {
	key := n.Int() + 12
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("%w: %v is outside the MIDI key range", ErrNoteFormat, n)
	}
	return uint8(key), nil
}

func (n *Note) Augment() {
	if strings.HasSuffix(n.Name, "b") {
		n.Name = n.Name[:len(n.Name)-1]
		return
	}
	n.Name += "#"
}

func (n *Note) Diminish() {
	if strings.HasSuffix(n.Name, "#") {
		n.Name = n.Name[:len(n.Name)-1]
		return
	}
	n.Name += "b"
}

func (n *Note) OctaveUp() {
	n.Octave++
}

func (n *Note) OctaveDown() {
	n.Octave--
}

func (n Note) Less(other Note) bool {
	return n.Int() < other.Int()
}

// Equal compares pitch only.
func (n Note) Equal(other Note) bool {
	return n.Int() == other.Int()
}

func (n Note) String() string {
	return fmt.Sprintf("%s-%d", n.Name, n.Octave)
}
