package instrument

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jsphweid/barscribe/note"
)

// General MIDI percussion is always on channel 10.
const PercussionChannel = 9

var ErrVelocity = errors.New("velocity must be between 0 and 127")

// PercussionKey is a General MIDI percussion key number.
type PercussionKey uint8

const (
	AcousticBassDrum PercussionKey = 35
	BassDrum1        PercussionKey = 36
	SideStick        PercussionKey = 37
	AcousticSnare    PercussionKey = 38
	HandClap         PercussionKey = 39
	ElectricSnare    PercussionKey = 40
	LowFloorTom      PercussionKey = 41
	ClosedHiHat      PercussionKey = 42
	HighFloorTom     PercussionKey = 43
	PedalHiHat       PercussionKey = 44
	LowTom           PercussionKey = 45
	OpenHiHat        PercussionKey = 46
	LowMidTom        PercussionKey = 47
	HiMidTom         PercussionKey = 48
	CrashCymbal1     PercussionKey = 49
	HighTom          PercussionKey = 50
	RideCymbal1      PercussionKey = 51
	ChineseCymbal    PercussionKey = 52
	RideBell         PercussionKey = 53
	Tambourine       PercussionKey = 54
	SplashCymbal     PercussionKey = 55
	Cowbell          PercussionKey = 56
	CrashCymbal2     PercussionKey = 57
	Vibraslap        PercussionKey = 58
	RideCymbal2      PercussionKey = 59
	HiBongo          PercussionKey = 60
	LowBongo         PercussionKey = 61
	MuteHiConga      PercussionKey = 62
	OpenHiConga      PercussionKey = 63
	LowConga         PercussionKey = 64
	HighTimbale      PercussionKey = 65
	LowTimbale       PercussionKey = 66
	HighAgogo        PercussionKey = 67
	LowAgogo         PercussionKey = 68
	Cabasa           PercussionKey = 69
	Maracas          PercussionKey = 70
	ShortWhistle     PercussionKey = 71
	LongWhistle      PercussionKey = 72
	ShortGuiro       PercussionKey = 73
	LongGuiro        PercussionKey = 74
	Claves           PercussionKey = 75
	HiWoodBlock      PercussionKey = 76
	LowWoodBlock     PercussionKey = 77
	MuteCuica        PercussionKey = 78
	OpenCuica        PercussionKey = 79
	MuteTriangle     PercussionKey = 80
	OpenTriangle     PercussionKey = 81
)

var percussionNames = map[PercussionKey]string{
	35: "Acoustic Bass Drum",
	36: "Bass Drum 1",
	37: "Side Stick",
	38: "Acoustic Snare",
	39: "Hand Clap",
	40: "Electric Snare",
	41: "Low Floor Tom",
	42: "Closed Hi Hat",
	43: "High Floor Tom",
	44: "Pedal Hi-Hat",
	45: "Low Tom",
	46: "Open Hi-Hat",
	47: "Low-Mid Tom",
	48: "Hi Mid Tom",
	49: "Crash Cymbal 1",
	50: "High Tom",
	51: "Ride Cymbal 1",
	52: "Chinese Cymbal",
	53: "Ride Bell",
	54: "Tambourine",
	55: "Splash Cymbal",
	56: "Cowbell",
	57: "Crash Cymbal 2",
	58: "Vibraslap",
	59: "Ride Cymbal 2",
	60: "Hi Bongo",
	61: "Low Bongo",
	62: "Mute Hi Conga",
	63: "Open Hi Conga",
	64: "Low Conga",
	65: "High Timbale",
	66: "Low Timbale",
	67: "High Agogo",
	68: "Low Agogo",
	69: "Cabasa",
	70: "Maracas",
	71: "Short Whistle",
	72: "Long Whistle",
	73: "Short Guiro",
	74: "Long Guiro",
	75: "Claves",
	76: "Hi Wood Block",
	77: "Low Wood Block",
	78: "Mute Cuica",
	79: "Open Cuica",
	80: "Mute Triangle",
	81: "Open Triangle",
}

func (k PercussionKey) Valid() bool {
	_, ok := percussionNames[k]
	return ok
}

func (k PercussionKey) String() string {
	if name, ok := percussionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PercussionKey(%d)", uint8(k))
}

// Note returns the pitch that sounds k on channel 10. Note numbering puts
// C-4 at 48, MIDI keys put it at 60.
func (k PercussionKey) Note() note.Note {
	return note.FromInt(int(k) - 12)
}

func comparableName(s string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s))
}

// ParsePercussionKey accepts "Closed Hi Hat", "closed_hi_hat" and the like.
func ParsePercussionKey(name string) (PercussionKey, error) {
	want := comparableName(name)
	for k, v := range percussionNames {
		if comparableName(v) == want {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInstrument, name)
}

func PercussionKeys() []PercussionKey {
	var res []PercussionKey
	for k := AcousticBassDrum; k <= OpenTriangle; k++ {
		res = append(res, k)
	}
	return res
}

// Percussion is the General MIDI drum kit.
func Percussion() *Instrument {
	return &Instrument{
		Name:  "Midi Percussion",
		Range: [2]note.Note{AcousticBassDrum.Note(), OpenTriangle.Note()},
		Clef:  "percussion",
	}
}

// PercussionNote is a drum hit. Percussion has no staff name, so the key is
// the identity. A zero Duration lets the instrument ring out.
type PercussionNote struct {
	Key      PercussionKey
	Velocity uint8
	Channel  uint8
	Duration time.Duration
}

func NewPercussionNote(key PercussionKey, velocity int) (PercussionNote, error) {
	if !key.Valid() {
		return PercussionNote{}, fmt.Errorf("%w: %d", ErrUnknownInstrument, uint8(key))
	}
	if velocity < 0 || velocity > 127 {
		return PercussionNote{}, fmt.Errorf("%w: got %d", ErrVelocity, velocity)
	}
	return PercussionNote{Key: key, Velocity: uint8(velocity), Channel: PercussionChannel}, nil
}

func (p PercussionNote) Int() int {
	return int(p.Key)
}

func (p PercussionNote) String() string {
	return p.Key.String()
}
