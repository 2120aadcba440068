package bar

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jsphweid/barscribe/note"
)

// durations are floats (4 = quarter) so sums drift
const epsilon = 1e-9

var ErrMeterFormat = errors.New("invalid meter")

type Meter struct {
	Beats int
	Unit  int
}

var CommonTime = Meter{Beats: 4, Unit: 4}

func ParseMeter(s string) (Meter, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Meter{}, fmt.Errorf("%w: %q", ErrMeterFormat, s)
	}
	beats, err := strconv.Atoi(parts[0])
	if err != nil {
		return Meter{}, fmt.Errorf("%w: %q", ErrMeterFormat, s)
	}
	unit, err := strconv.Atoi(parts[1])
	if err != nil {
		return Meter{}, fmt.Errorf("%w: %q", ErrMeterFormat, s)
	}
	m := Meter{Beats: beats, Unit: unit}
	if !m.Valid() {
		return Meter{}, fmt.Errorf("%w: %q", ErrMeterFormat, s)
	}
	return m, nil
}

// Valid reports whether the unit is a power of two and there is at least
// one beat.
func (m Meter) Valid() bool {
	return m.Beats > 0 && m.Unit > 0 && m.Unit&(m.Unit-1) == 0
}

func (m Meter) String() string {
	return fmt.Sprintf("%d/%d", m.Beats, m.Unit)
}

// Placement is a note (nil for a rest) starting at Beat, a fraction of a
// whole note from the start of the bar.
type Placement struct {
	Beat     float64
	Duration float64
	Note     *note.Note
}

func (p Placement) IsRest() bool {
	return p.Note == nil
}

type Bar struct {
	Key         string
	Meter       Meter
	Length      float64
	CurrentBeat float64
	Placements  []Placement
}

func New(key string, meter Meter) (*Bar, error) {
	if !meter.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrMeterFormat, meter)
	}
	return &Bar{
		Key:    key,
		Meter:  meter,
		Length: float64(meter.Beats) / float64(meter.Unit),
	}, nil
}

// NewDefault returns an empty bar in C with 4/4.
func NewDefault() *Bar {
	b, _ := New("C", CommonTime)
	return b
}

// Successor returns an empty bar with the same key and meter.
func (b *Bar) Successor() *Bar {
	return &Bar{Key: b.Key, Meter: b.Meter, Length: b.Length}
}

// PlaceNotes places n (nil for a rest) at the current beat. Duration uses
// the reciprocal convention: 1 whole, 2 half, 4 quarter. It returns false
// and leaves the bar untouched when the note does not fit.
func (b *Bar) PlaceNotes(n *note.Note, duration float64) bool {
	if duration <= 0 || math.IsInf(duration, 0) || math.IsNaN(duration) {
		return false
	}
	value := 1 / duration
	if b.CurrentBeat+value > b.Length+epsilon {
		return false
	}
	var placed *note.Note
	if n != nil {
		c := *n
		placed = &c
	}
	b.Placements = append(b.Placements, Placement{
		Beat:     b.CurrentBeat,
		Duration: duration,
		Note:     placed,
	})
	b.CurrentBeat += value
	return true
}

func (b *Bar) PlaceRest(duration float64) bool {
	return b.PlaceNotes(nil, duration)
}

func (b *Bar) IsFull() bool {
	return b.Length-b.CurrentBeat < epsilon
}

// SpaceLeft is the unfilled fraction of a whole note.
func (b *Bar) SpaceLeft() float64 {
	left := b.Length - b.CurrentBeat
	if left < epsilon {
		return 0
	}
	return left
}

// ValueLeft is SpaceLeft expressed as a duration value, 0 when full.
func (b *Bar) ValueLeft() float64 {
	left := b.SpaceLeft()
	if left == 0 {
		return 0
	}
	return 1 / left
}

// Notes returns the sounding notes in placement order.
func (b *Bar) Notes() []note.Note {
	var res []note.Note
	for _, p := range b.Placements {
		if p.Note != nil {
			res = append(res, *p.Note)
		}
	}
	return res
}

func (b *Bar) Len() int {
	return len(b.Placements)
}

func (b *Bar) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range b.Placements {
		if i > 0 {
			sb.WriteString(" ")
		}
		if p.IsRest() {
			sb.WriteString("z")
		} else {
			sb.WriteString(p.Note.String())
		}
		sb.WriteString(":" + strconv.FormatFloat(p.Duration, 'g', 4, 64))
	}
	sb.WriteString("]")
	return sb.String()
}
