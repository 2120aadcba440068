package midi

import (
	"path/filepath"
	"testing"

	"github.com/jsphweid/barscribe/abc"
	"github.com/jsphweid/barscribe/instrument"
	"github.com/jsphweid/barscribe/note"
	"github.com/jsphweid/barscribe/track"
	"github.com/stretchr/testify/assert"
)

func parsedTrack(t *testing.T, notation string) *track.Track {
	t.Helper()
	tr := track.New(instrument.Midi(instrument.Flute))
	if err := abc.ToBars(notation, abc.IntoTrack(tr), abc.Default); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return tr
}

func onsets(events []NoteEvent) []NoteEvent {
	var res []NoteEvent
	for _, e := range events {
		if e.On {
			res = append(res, e)
		}
	}
	return res
}

func TestExportRoundTrip(t *testing.T) {
	tr := parsedTrack(t, "GGGA | B2A2")
	s, err := FromTrack(tr, 180, 0)
	assert := assert.New(t)
	assert.Nil(err)

	path := filepath.Join(t.TempDir(), "tune.mid")
	assert.Nil(WriteMidiFile(path, s))
	read, err := ReadMidiFile(path)
	assert.Nil(err)

	events := NoteEvents(read)
	ons := onsets(events)
	assert.Len(events, 12)
	assert.Len(ons, 6)

	keys := make([]uint8, len(ons))
	ticks := make([]uint64, len(ons))
	for i, e := range ons {
		keys[i] = e.Key
		ticks[i] = e.AbsTicks
	}
	assert.Equal([]uint8{67, 67, 67, 69, 71, 69}, keys)
	assert.Equal([]uint64{0, 960, 1920, 2880, 3840, 5760}, ticks)
}

func TestRestsBecomeGaps(t *testing.T) {
	tr := parsedTrack(t, "z C")
	s, err := FromTrack(tr, 120, 0)
	assert := assert.New(t)
	assert.Nil(err)

	ons := onsets(NoteEvents(s))
	assert.Len(ons, 1)
	assert.Equal(uint64(960), ons[0].AbsTicks)
}

func TestRepeatedPitchEndsBeforeRestarting(t *testing.T) {
	s, err := FromTrack(parsedTrack(t, "CC"), 120, 0)
	assert := assert.New(t)
	assert.Nil(err)

	events := NoteEvents(s)
	assert.Len(events, 4)
	assert.False(events[1].On)
	assert.True(events[2].On)
	assert.Equal(events[1].AbsTicks, events[2].AbsTicks)
}

func TestExportRejectsUnplayableNotes(t *testing.T) {
	tr := track.New(nil)
	n := note.MustNew("C", 12)
	tr.Bars = parsedTrack(t, "C").Bars
	tr.Bars[0].Placements[0].Note = &n

	_, err := FromTrack(tr, 120, 0)
	assert.ErrorIs(t, err, note.ErrNoteFormat)
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.NotNil(t, err)
}
