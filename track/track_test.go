package track

import (
	"testing"

	"github.com/jsphweid/barscribe/bar"
	"github.com/jsphweid/barscribe/instrument"
	"github.com/jsphweid/barscribe/note"
	"github.com/stretchr/testify/assert"
)

func TestAddNotesAdvancesBars(t *testing.T) {
	tr := New(nil)
	n := note.MustNew("A", 4)

	assert := assert.New(t)
	for i := 0; i < 5; i++ {
		assert.Nil(tr.AddNotes(&n, 4))
	}
	assert.Equal(2, tr.Len())
	assert.True(tr.Bars[0].IsFull())
	assert.Equal(1, tr.Bars[1].Len())
}

func TestAddNotesRejectsOutOfRange(t *testing.T) {
	tr := New(instrument.Guitar())
	n := note.MustNew("C", 2)

	assert.ErrorIs(t, tr.AddNotes(&n, 4), ErrNoteOutOfRange)
}

func TestAddNotesRejectsDurationLongerThanBar(t *testing.T) {
	b, _ := bar.New("C", bar.Meter{Beats: 2, Unit: 4})
	tr := New(nil)
	tr.AddBar(b)
	n := note.MustNew("C", 4)

	assert.ErrorIs(t, tr.AddNotes(&n, 1), ErrTooLong)
}

func TestExtendCopiesBars(t *testing.T) {
	refrain := []*bar.Bar{bar.NewDefault()}
	n := note.MustNew("G", 4)
	refrain[0].PlaceNotes(&n, 4)

	tr := New(instrument.Midi(instrument.Flute))
	tr.Extend(refrain)
	tr.Extend(refrain)
	tr.Bars[0].PlaceNotes(&n, 4)

	assert := assert.New(t)
	assert.Equal(2, tr.Len())
	assert.Equal(2, tr.Bars[0].Len())
	assert.Equal(1, tr.Bars[1].Len())
	assert.Equal(1, refrain[0].Len())
}
