package abc

import (
	"github.com/jsphweid/barscribe/bar"
	"github.com/jsphweid/barscribe/note"
	"github.com/jsphweid/barscribe/track"
)

type targetKind int

const (
	targetBar targetKind = iota + 1
	targetBars
	targetTrack
)

// Target is where parsed notes go: a single bar, a growable list of bars,
// or a track. Build one with IntoBar, IntoBars or IntoTrack.
type Target struct {
	kind  targetKind
	bar   *bar.Bar
	bars  *[]*bar.Bar
	track *track.Track
}

// IntoBar places notes directly into b. Nothing advances when b fills up;
// notes that do not fit are dropped by the bar.
func IntoBar(b *bar.Bar) Target {
	return Target{kind: targetBar, bar: b}
}

// IntoBars appends to *bars, creating bars as they fill.
func IntoBars(bars *[]*bar.Bar) Target {
	return Target{kind: targetBars, bars: bars}
}

// IntoTrack places notes with t.AddNotes. Unlike IntoBars, a note outside
// the instrument range or longer than a whole bar stops parsing with the
// error from AddNotes.
func IntoTrack(t *track.Track) Target {
	return Target{kind: targetTrack, track: t}
}

// cursor is a Target reduced to "current bar plus a way to advance".
type cursor struct {
	single *bar.Bar
	seq    *[]*bar.Bar
	track  *track.Track
}

func (t Target) cursor() (cursor, bool) {
	switch t.kind {
	case targetBar:
		return cursor{single: t.bar}, t.bar != nil
	case targetBars:
		return cursor{seq: t.bars}, t.bars != nil
	case targetTrack:
		if t.track == nil {
			return cursor{}, false
		}
		return cursor{track: t.track}, true
	}
	return cursor{}, false
}

// place puts n (nil for a rest) into the current bar. In a sequence a new
// bar with the previous key and meter is started when the last one is full
// or cannot hold the duration. A note longer than a whole bar is dropped.
func (c cursor) place(n *note.Note, duration float64) error {
	switch {
	case c.single != nil:
		c.single.PlaceNotes(n, duration)
	case c.track != nil:
		return c.track.AddNotes(n, duration)
	default:
		bars := c.seq
		if len(*bars) == 0 {
			*bars = append(*bars, bar.NewDefault())
		}
		if next, ok := track.PlaceOrAdvance((*bars)[len(*bars)-1], n, duration); ok && next != nil {
			*bars = append(*bars, next)
		}
	}
	return nil
}
