package model

// Tune is a tune file: named parts written in notation and the order to
// play them in.
type Tune struct {
	Title      string            `yaml:"title" json:"title"`
	Language   string            `yaml:"language,omitempty" json:"language,omitempty"`
	Key        string            `yaml:"key,omitempty" json:"key,omitempty"`
	Meter      string            `yaml:"meter,omitempty" json:"meter,omitempty"`
	BPM        float64           `yaml:"bpm,omitempty" json:"bpm,omitempty"`
	Instrument string            `yaml:"instrument,omitempty" json:"instrument,omitempty"`
	Parts      map[string]string `yaml:"parts" json:"parts"`

	// NOTE: empty means every part once, in PartOrder
	Arrangement []string `yaml:"arrangement,omitempty" json:"arrangement,omitempty"`

	// PartOrder is the order parts are declared in a YAML file. Tunes that
	// did not come from YAML leave it empty and play parts sorted by name.
	PartOrder []string `yaml:"-" json:"-"`
}

type TuneNumToPath = map[uint32]string
