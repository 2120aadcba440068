package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

func Encode(s *smf.SMF) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("could not encode midi: %w", err)
	}
	return buf.Bytes(), nil
}

func WriteMidiFile(filepath string, s *smf.SMF) error {
	dat, err := Encode(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, dat, 0666)
}

type NoteEvent struct {
	Track    int
	AbsTicks uint64
	Channel  uint8
	Key      uint8
	Velocity uint8
	On       bool
}

// NoteEvents lists note starts and ends with absolute tick offsets.
func NoteEvents(s *smf.SMF) []NoteEvent {
	var res []NoteEvent
	for i, track := range s.Tracks {
		var absTicks uint64
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			msg := midi.Message(evt.Message)
			var ch, key, vel uint8
			switch {
			case msg.GetNoteStart(&ch, &key, &vel):
				res = append(res, NoteEvent{Track: i, AbsTicks: absTicks, Channel: ch, Key: key, Velocity: vel, On: true})
			case msg.GetNoteEnd(&ch, &key):
				res = append(res, NoteEvent{Track: i, AbsTicks: absTicks, Channel: ch, Key: key})
			}
		}
	}
	return res
}
