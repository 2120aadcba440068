package midi

import (
	"fmt"
	"math"
	"sort"

	"github.com/jsphweid/barscribe/bar"
	"github.com/jsphweid/barscribe/constants"
	"github.com/jsphweid/barscribe/note"
	"github.com/jsphweid/barscribe/track"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type timedMessage struct {
	absTicks uint64
	isOff    bool
	msg      []byte
}

func ticksFor(wholeNotes float64) uint64 {
	return uint64(math.Round(wholeNotes * 4 * constants.TicksPerQuarter))
}

// FromTrack renders t as a single track SMF. Rests become gaps and each bar
// lasts as long as what was placed in it.
func FromTrack(t *track.Track, bpm float64, channel uint8) (*smf.SMF, error) {
	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var out smf.Track
	if t.Name != "" {
		out.Add(0, smf.MetaTrackSequenceName(t.Name))
	}
	out.Add(0, smf.MetaTempo(bpm))
	if t.Instrument != nil {
		out.Add(0, midi.ProgramChange(channel, uint8(t.Instrument.Program)))
	}

	var msgs []timedMessage
	var barStart float64
	var meter bar.Meter
	for _, b := range t.Bars {
		if b.Meter != meter {
			meter = b.Meter
			msgs = append(msgs, timedMessage{absTicks: ticksFor(barStart), msg: smf.MetaMeter(uint8(meter.Beats), uint8(meter.Unit))})
		}
		for _, p := range b.Placements {
			if p.IsRest() {
				continue
			}
			on, off, err := noteMessages(*p.Note, channel)
			if err != nil {
				return nil, err
			}
			start := barStart + p.Beat
			msgs = append(msgs,
				timedMessage{absTicks: ticksFor(start), msg: on},
				timedMessage{absTicks: ticksFor(start + 1/p.Duration), isOff: true, msg: off},
			)
		}
		barStart += b.CurrentBeat
	}

	// note offs first so repeated pitches do not swallow each other
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].absTicks != msgs[j].absTicks {
			return msgs[i].absTicks < msgs[j].absTicks
		}
		return msgs[i].isOff && !msgs[j].isOff
	})

	var prev uint64
	for _, m := range msgs {
		out.Add(uint32(m.absTicks-prev), m.msg)
		prev = m.absTicks
	}
	end := ticksFor(barStart)
	if end < prev {
		end = prev
	}
	out.Close(uint32(end - prev))

	res.Tracks = append(res.Tracks, out)
	return &res, nil
}

func noteMessages(n note.Note, channel uint8) ([]byte, []byte, error) {
	key, err := n.MidiKey()
	if err != nil {
		return nil, nil, fmt.Errorf("could not export %v: %w", n, err)
	}
	vel := n.Velocity
	if vel == 0 {
		vel = note.DefaultVelocity
	}
	return midi.NoteOn(channel, key, vel), midi.NoteOff(channel, key), nil
}
