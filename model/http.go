package model

type ParseRequestBody struct {
	Notation string `json:"notation"`
	Language string `json:"language"`
	Key      string `json:"key"`
	Meter    string `json:"meter"`
}

type PlacementResult struct {
	Beat     float64 `json:"beat"`
	Duration float64 `json:"duration"`
	Note     string  `json:"note,omitempty"`
	MidiKey  uint8   `json:"midi_key,omitempty"`
	Rest     bool    `json:"rest,omitempty"`
}

type BarResult struct {
	Key        string            `json:"key"`
	Meter      string            `json:"meter"`
	Full       bool              `json:"full"`
	Placements []PlacementResult `json:"placements"`
}

type ParseResponse struct {
	Bars []BarResult `json:"bars"`
}

type InstrumentResult struct {
	Program uint8  `json:"program"`
	Name    string `json:"name"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
