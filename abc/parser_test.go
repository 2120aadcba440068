package abc

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/jsphweid/barscribe/bar"
	"github.com/jsphweid/barscribe/instrument"
	"github.com/jsphweid/barscribe/track"
	"github.com/stretchr/testify/assert"
)

type placed struct {
	Name     string
	Octave   int
	Duration float64
	Rest     bool
}

func flatten(bars []*bar.Bar) []placed {
	var res []placed
	for _, b := range bars {
		for _, p := range b.Placements {
			if p.IsRest() {
				res = append(res, placed{Duration: p.Duration, Rest: true})
				continue
			}
			res = append(res, placed{Name: p.Note.Name, Octave: p.Note.Octave, Duration: p.Duration})
		}
	}
	return res
}

func mustParse(t *testing.T, text string, lang Language) []placed {
	t.Helper()
	bars, err := Parse(text, lang)
	if err != nil {
		t.Fatalf("parse %q failed: %v", text, err)
	}
	return flatten(bars)
}

func TestDefaultDurationIsQuarter(t *testing.T) {
	got := mustParse(t, "GGGA", Default)

	assert.Equal(t, []placed{
		{Name: "G", Octave: 4, Duration: 4},
		{Name: "G", Octave: 4, Duration: 4},
		{Name: "G", Octave: 4, Duration: 4},
		{Name: "A", Octave: 4, Duration: 4},
	}, got)
}

func TestDurationsFollowPitch(t *testing.T) {
	got := mustParse(t, "B2A2", Default)

	assert.Equal(t, []placed{
		{Name: "B", Octave: 4, Duration: 2},
		{Name: "A", Octave: 4, Duration: 2},
	}, got)
}

func TestRestEndsPitch(t *testing.T) {
	bars, err := Parse("G3Z", Default)

	assert := assert.New(t)
	assert.Nil(err)
	got := flatten(bars)
	assert.Len(got, 2)
	assert.Equal("G", got[0].Name)
	assert.InDelta(4.0/3, got[0].Duration, 1e-9)
	assert.Equal(placed{Duration: 4, Rest: true}, got[1])
	assert.Len(bars, 1)
	assert.True(bars[0].IsFull())
}

func TestRestFollowedByPitch(t *testing.T) {
	got := mustParse(t, "z2 C", Default)

	assert.Equal(t, []placed{
		{Duration: 2, Rest: true},
		{Name: "C", Octave: 4, Duration: 4},
	}, got)
}

func TestLowercaseIsOneOctaveUp(t *testing.T) {
	upper := mustParse(t, "GGGA", Default)
	lower := mustParse(t, "ggga", Default)

	assert := assert.New(t)
	assert.Len(lower, len(upper))
	for i := range upper {
		up := upper[i]
		up.Octave++
		assert.Equal(up, lower[i])
	}
}

func TestOctaveMarks(t *testing.T) {
	got := mustParse(t, "C' c, C,, c''", Default)

	assert := assert.New(t)
	assert.Equal(5, got[0].Octave)
	assert.Equal(4, got[1].Octave)
	assert.Equal(2, got[2].Octave)
	assert.Equal(7, got[3].Octave)
}

func TestAccidentals(t *testing.T) {
	got := mustParse(t, "F#2 Bb2 Ab a b c## bb", Default)

	names := make([]string, len(got))
	for i, p := range got {
		names[i] = p.Name
	}
	assert := assert.New(t)
	assert.Equal([]string{"F#", "Bb", "Ab", "A", "B", "C##", "B", "B"}, names)
	assert.Equal(5, got[7].Octave)
}

func TestLowercaseDiffersOnlyInOctave(t *testing.T) {
	for _, text := range []string{"GBAA", "F#G'A,", "C2B/2 Z"} {
		upper := mustParse(t, text, Default)
		lower := mustParse(t, strings.ToLower(text), Default)

		for i := range upper {
			if !upper[i].Rest {
				upper[i].Octave++
			}
		}
		assert.Equal(t, upper, lower, text)
	}
}

func TestFrenchLowercaseSiIsAPitch(t *testing.T) {
	assert.Equal(t, []placed{
		{Name: "G", Octave: 5, Duration: 4},
		{Name: "B", Octave: 5, Duration: 4},
	}, mustParse(t, "solsi", French))
}

func TestNoteCountMatchesLetters(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	letters := "ABCDEFG"
	for i := 0; i < 50; i++ {
		n := r.Intn(40)
		tokens := make([]string, n)
		for j := range tokens {
			tokens[j] = string(letters[r.Intn(len(letters))])
		}
		got := mustParse(t, strings.Join(tokens, " "), Default)
		assert.Len(t, got, n)
	}
}

func TestFullBarStartsNewBarWithSameKeyAndMeter(t *testing.T) {
	bars, err := ParseWith("GGGGA", Default, "F", bar.Meter{Beats: 3, Unit: 4})

	assert := assert.New(t)
	assert.Nil(err)
	assert.Len(bars, 2)
	assert.Equal(3, bars[0].Len())
	assert.Equal(2, bars[1].Len())
	assert.Equal("F", bars[1].Key)
	assert.Equal(bar.Meter{Beats: 3, Unit: 4}, bars[1].Meter)
}

func TestNoteThatDoesNotFitStartsNewBar(t *testing.T) {
	bars, err := Parse("GGG A2", Default)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Len(bars, 2)
	assert.Equal(3, bars[0].Len())
	assert.Equal(1, bars[1].Len())
}

func TestSingleBarDoesNotAdvance(t *testing.T) {
	b := bar.NewDefault()
	err := ToBars("GGGGG", IntoBar(b), Default)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(4, b.Len())
}

func TestTrackTarget(t *testing.T) {
	tr := track.New(nil)

	assert := assert.New(t)
	assert.Nil(ToBars("AAAA | E2E2 | AGF#E | D3Z", IntoTrack(tr), Default))
	assert.Equal(4, tr.Len())
	for _, b := range tr.Bars {
		assert.True(b.IsFull())
	}
}

func TestTrackTargetChecksInstrument(t *testing.T) {
	tr := track.New(instrument.Guitar())

	assert := assert.New(t)
	assert.ErrorIs(ToBars("E C,", IntoTrack(tr), Default), track.ErrNoteOutOfRange)
	assert.Equal(1, tr.Bars[0].Len())

	short, _ := bar.New("C", bar.Meter{Beats: 2, Unit: 4})
	tr = track.New(nil)
	tr.AddBar(short)
	assert.ErrorIs(ToBars("E4", IntoTrack(tr), Default), track.ErrTooLong)
}

func TestBarsTargetDropsNoteLongerThanBar(t *testing.T) {
	bars, err := ParseWith("E E4 E", Default, "C", bar.Meter{Beats: 2, Unit: 4})

	assert := assert.New(t)
	assert.Nil(err)
	assert.Len(flatten(bars), 2)
}

func TestParsingTwiceIsIdentical(t *testing.T) {
	text := "GGGA | B2A2 | GBAA | G3Z"
	var first, second []*bar.Bar

	assert := assert.New(t)
	assert.Nil(ToBars(text, IntoBars(&first), Default))
	assert.Nil(ToBars(text, IntoBars(&second), Default))
	assert.Equal(flatten(first), flatten(second))
	assert.Len(first, 4)
}

func TestOctaveMarkWithoutPitch(t *testing.T) {
	for _, text := range []string{",", "'", "z'", "Z,", "G2 z ,"} {
		_, err := Parse(text, Default)
		var ne *NotationError
		assert.True(t, errors.As(err, &ne), text)
		assert.ErrorIs(t, err, ErrInvalidNotation, text)
	}
}

func TestSharpWithoutPitch(t *testing.T) {
	_, err := Parse("#G", Default)
	assert.ErrorIs(t, err, ErrInvalidNotation)

	_, err = Parse("z#", Default)
	assert.ErrorIs(t, err, ErrInvalidNotation)
}

func TestBadDurationReportsPosition(t *testing.T) {
	_, err := Parse("G3/ A", Default)

	var de *DurationError
	assert := assert.New(t)
	assert.True(errors.As(err, &de))
	assert.Equal(4, de.Pos)
	assert.Equal("3/", de.Duration)
	assert.ErrorIs(err, ErrInvalidDuration)
}

func TestPartialResultsSurviveErrors(t *testing.T) {
	var bars []*bar.Bar
	err := ToBars("G A z ' B", IntoBars(&bars), Default)

	assert := assert.New(t)
	assert.ErrorIs(err, ErrInvalidNotation)
	assert.Len(flatten(bars), 2)
}

func TestUnknownCharactersAreIgnored(t *testing.T) {
	got := mustParse(t, "G~A\t-C!é", Default)
	assert.Len(t, got, 3)
}

func TestLeadingDurationAppliesToFirstToken(t *testing.T) {
	got := mustParse(t, "2G", Default)
	assert.Equal(t, []placed{{Name: "G", Octave: 4, Duration: 2}}, got)
}

func TestEmptyInput(t *testing.T) {
	bars, err := Parse("  | 4 ", Default)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Empty(bars)
}

func TestZeroTarget(t *testing.T) {
	assert.ErrorIs(t, ToBars("G", Target{}, Default), ErrNoTarget)
	assert.ErrorIs(t, ToBars("G", IntoBars(nil), Default), ErrNoTarget)
}

func TestFrenchMatchesEnglish(t *testing.T) {
	cases := []struct {
		french  string
		english string
	}{
		{"SOL SOL SOL LA", "G G G A"},
		{"SOL SOL SOL LA | SI2 LA2 | SOL SI LA LA | SOL3 Z", "GGGA | B2A2 | GBAA | G3Z"},
		{"LA LA LA LA | MI2 MI2 | LA SOL FA# MI | RE3 Z", "AAAA | E2E2 | AGF#E | D3Z"},
		{"do ré mi FAd", "c d e F#"},
	}

	for _, c := range cases {
		t.Run(c.french, func(t *testing.T) {
			assert.Equal(t, mustParse(t, c.english, Default), mustParse(t, c.french, French))
		})
	}
}
