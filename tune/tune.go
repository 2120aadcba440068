package tune

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/barscribe/abc"
	"github.com/jsphweid/barscribe/bar"
	"github.com/jsphweid/barscribe/constants"
	"github.com/jsphweid/barscribe/instrument"
	"github.com/jsphweid/barscribe/model"
	"github.com/jsphweid/barscribe/track"
	"github.com/jsphweid/barscribe/util"
	"gopkg.in/yaml.v3"
)

var ErrUnknownPart = errors.New("arrangement names an unknown part")

func Load(path string) (model.Tune, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Tune{}, fmt.Errorf("could not open tune: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (model.Tune, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.Tune{}, fmt.Errorf("could not read tune: %w", err)
	}

	var t model.Tune
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return model.Tune{}, fmt.Errorf("could not decode tune: %w", err)
	}
	if len(t.Parts) == 0 {
		return model.Tune{}, fmt.Errorf("tune %q has no parts", t.Title)
	}

	// maps lose their order, so read it back from the node tree
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return model.Tune{}, fmt.Errorf("could not decode tune: %w", err)
	}
	if parts := partsNode(&doc); parts != nil {
		for i := 0; i+1 < len(parts.Content); i += 2 {
			t.PartOrder = append(t.PartOrder, parts.Content[i].Value)
		}
	}
	return t, nil
}

// Encode writes t as YAML with parts in PartOrder.
func Encode(w io.Writer, t model.Tune) error {
	var doc yaml.Node
	if err := doc.Encode(t); err != nil {
		return err
	}
	if parts := partsNode(&doc); parts != nil {
		sortParts(parts, partOrder(t))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

// partsNode finds the mapping under the top level "parts" key.
func partsNode(doc *yaml.Node) *yaml.Node {
	root := doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "parts" && root.Content[i+1].Kind == yaml.MappingNode {
			return root.Content[i+1]
		}
	}
	return nil
}

func sortParts(parts *yaml.Node, order []string) {
	rank := make(map[string]int, len(order))
	for i, name := range order {
		rank[name] = i
	}
	pairs := make([][2]*yaml.Node, 0, len(parts.Content)/2)
	for i := 0; i+1 < len(parts.Content); i += 2 {
		pairs = append(pairs, [2]*yaml.Node{parts.Content[i], parts.Content[i+1]})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return rank[pairs[i][0].Value] < rank[pairs[j][0].Value]
	})
	parts.Content = parts.Content[:0]
	for _, p := range pairs {
		parts.Content = append(parts.Content, p[0], p[1])
	}
}

// partOrder is PartOrder when it names every part exactly once, otherwise
// the part names sorted.
func partOrder(t model.Tune) []string {
	if len(t.PartOrder) != len(t.Parts) {
		return util.GetSortedKeys(t.Parts)
	}
	for _, name := range t.PartOrder {
		if _, ok := t.Parts[name]; !ok {
			return util.GetSortedKeys(t.Parts)
		}
	}
	return t.PartOrder
}

func BPM(t model.Tune) float64 {
	if t.BPM > 0 {
		return t.BPM
	}
	return constants.DefaultBPM
}

func Instrument(t model.Tune) (*instrument.Instrument, error) {
	if t.Instrument == "" {
		return instrument.Piano(), nil
	}
	program, err := instrument.ParseMidiInstr(t.Instrument)
	if err != nil {
		return nil, err
	}
	return instrument.Midi(program), nil
}

// Arrangement returns the order parts are played in.
func Arrangement(t model.Tune) []string {
	if len(t.Arrangement) > 0 {
		return t.Arrangement
	}
	return partOrder(t)
}

// Render parses every part once and lays the bars out on one track in
// arrangement order.
func Render(t model.Tune) (*track.Track, error) {
	lang, err := abc.ParseLanguage(t.Language)
	if err != nil {
		return nil, err
	}
	key := t.Key
	if key == "" {
		key = "C"
	}
	meter := bar.CommonTime
	if t.Meter != "" {
		meter, err = bar.ParseMeter(t.Meter)
		if err != nil {
			return nil, err
		}
	}
	instr, err := Instrument(t)
	if err != nil {
		return nil, err
	}

	parsed := make(map[string][]*bar.Bar)
	for _, name := range util.GetSortedKeys(t.Parts) {
		bars, err := abc.ParseWith(t.Parts[name], lang, key, meter)
		if err != nil {
			return nil, fmt.Errorf("part %q: %w", name, err)
		}
		if err := checkRange(instr, bars); err != nil {
			return nil, fmt.Errorf("part %q: %w", name, err)
		}
		parsed[name] = bars
	}

	res := track.New(instr)
	res.Name = t.Title
	for _, name := range Arrangement(t) {
		bars, ok := parsed[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPart, name)
		}
		res.Extend(bars)
	}
	return res, nil
}

func checkRange(instr *instrument.Instrument, bars []*bar.Bar) error {
	for _, b := range bars {
		for _, n := range b.Notes() {
			if !instr.NoteInRange(n) {
				return fmt.Errorf("%w: %v on %v", track.ErrNoteOutOfRange, n, instr)
			}
		}
	}
	return nil
}
