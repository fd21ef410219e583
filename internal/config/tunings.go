package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/fretpath/fretboard"
)

// tuningsFile is the TOML layout of a custom tunings file:
//
//	[tunings]
//	baritone = ["B3", "F#3", "D3", "A2", "E2", "B1"]
//
// Open pitches are listed string 1 (highest) first.
type tuningsFile struct {
	Tunings map[string][]string `toml:"tunings"`
}

// LoadTunings reads and validates the custom tunings at path.
func LoadTunings(path string) (map[string]fretboard.Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read tunings: %w", err)
	}

	return ParseTunings(data)
}

// ParseTunings decodes a tunings document.
func ParseTunings(data []byte) (map[string]fretboard.Tuning, error) {
	var f tuningsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parse tunings: %w", err)
	}

	out := make(map[string]fretboard.Tuning, len(f.Tunings))
	for name, pitches := range f.Tunings {
		t, err := fretboard.ParseTuning(pitches)
		if err != nil {
			return nil, fmt.Errorf("config: tuning %q: %w", name, err)
		}
		out[name] = t
	}

	return out, nil
}
