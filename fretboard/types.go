package fretboard

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/fretpath/pitch"
)

// StringIndex identifies a string, 1-based.
type StringIndex uint8

// NewStringIndex validates n against 1..MaxStrings.
func NewStringIndex(n int) (StringIndex, error) {
	if n < 1 || n > MaxStrings {
		return 0, fmt.Errorf("%w: %d (want 1..%d)", ErrStringOutOfRange, n, MaxStrings)
	}

	return StringIndex(n), nil
}

// Valid reports whether s lies in 1..MaxStrings.
func (s StringIndex) Valid() bool { return s >= 1 && s <= MaxStrings }

// Fingering is one playable position for a pitch.
type Fingering struct {
	Pitch       pitch.Pitch
	StringIndex StringIndex
	Fret        uint8
}

// Open reports whether the fingering uses the open string (or the capo).
func (f Fingering) Open() bool { return f.Fret == 0 }

// String renders e.g. "E4 s1 f0".
func (f Fingering) String() string {
	return fmt.Sprintf("%s s%d f%d", f.Pitch, f.StringIndex, f.Fret)
}

// Tuning maps each string to its open pitch.
type Tuning map[StringIndex]pitch.Pitch

// NewTuning builds a tuning from open pitches listed string 1 first.
func NewTuning(open ...pitch.Pitch) (Tuning, error) {
	if len(open) == 0 {
		return nil, ErrEmptyTuning
	}
	if len(open) > MaxStrings {
		return nil, fmt.Errorf("%w: %d strings (max %d)", ErrStringOutOfRange, len(open), MaxStrings)
	}
	t := make(Tuning, len(open))
	for i, p := range open {
		t[StringIndex(i+1)] = p
	}

	return t, nil
}

// Strings returns the tuning's string indices ascending.
func (t Tuning) Strings() []StringIndex {
	out := make([]StringIndex, 0, len(t))
	for s := range t {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// clone returns an independent copy.
func (t Tuning) clone() Tuning {
	out := make(Tuning, len(t))
	for s, p := range t {
		out[s] = p
	}

	return out
}
