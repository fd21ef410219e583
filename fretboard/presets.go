package fretboard

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/fretpath/pitch"
)

// StandardTuningName is the preset used when no tuning is configured.
const StandardTuningName = "standard"

// presets lists built-in tunings, string 1 first.
var presets = map[string][]string{
	StandardTuningName: {"E4", "B3", "G3", "D3", "A2", "E2"},
	"drop-d":           {"E4", "B3", "G3", "D3", "A2", "D2"},
	"open-g":           {"D4", "B3", "G3", "D3", "G2", "D2"},
	"open-d":           {"D4", "A3", "F#3", "D3", "A2", "D2"},
	"dadgad":           {"D4", "A3", "G3", "D3", "A2", "D2"},
	"half-step-down":   {"Eb4", "Bb3", "Gb3", "Db3", "Ab2", "Eb2"},
	"standard-7":       {"E4", "B3", "G3", "D3", "A2", "E2", "B1"},
	"bass":             {"G2", "D2", "A1", "E1"},
}

// StandardTuning returns the six-string E standard tuning.
func StandardTuning() Tuning {
	t, _ := Preset(StandardTuningName)

	return t
}

// Preset returns a built-in tuning by name.
func Preset(name string) (Tuning, error) {
	names, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTuning, name)
	}

	return ParseTuning(names)
}

// PresetNames returns the built-in tuning names sorted.
func PresetNames() []string {
	out := make([]string, 0, len(presets))
	for name := range presets {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// ParseTuning builds a tuning from pitch names listed string 1 first.
func ParseTuning(names []string) (Tuning, error) {
	open := make([]pitch.Pitch, 0, len(names))
	for i, name := range names {
		p, err := pitch.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("string %d: %w", i+1, err)
		}
		open = append(open, p)
	}

	return NewTuning(open...)
}

// Standard returns a Fretboard with the standard tuning, DefaultFretCount
// frets and no capo.
func Standard() *Fretboard {
	fb, err := New(StandardTuning(), DefaultFretCount, 0)
	if err != nil {
		panic(err) // static configuration
	}

	return fb
}
