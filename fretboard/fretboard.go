package fretboard

import (
	"fmt"

	"github.com/katalvlaran/fretpath/pitch"
)

// Fretboard is the immutable pitch-reachability map of one configuration.
// It is safe for concurrent readers.
type Fretboard struct {
	tuning    Tuning
	fretCount uint8
	capo      uint8

	// strings lists string indices ascending.
	strings []StringIndex

	// ranges[s][fret] is the pitch sounding at fret on string s.
	ranges map[StringIndex][]pitch.Pitch

	// index[p] lists every fingering of p, by string ascending.
	index map[pitch.Pitch][]Fingering
}

// New builds a Fretboard for tuning with fretCount frets and a capo.
//
// Validation (in order):
//  1. tuning must be non-empty (ErrEmptyTuning).
//  2. every string index must lie in 1..MaxStrings (ErrStringOutOfRange).
//  3. fretCount ≤ MaxFrets (ErrTooManyFrets).
//  4. capo ≤ MaxCapo and capo ≤ fretCount (ErrCapoTooHigh).
//  5. open+fretCount must stay within pitch.Max for every string (ErrRangeOverflow).
//
// Complexity: O(S·F).
func New(tuning Tuning, fretCount, capo uint8) (*Fretboard, error) {
	if len(tuning) == 0 {
		return nil, ErrEmptyTuning
	}
	strs := tuning.Strings()
	for _, s := range strs {
		if !s.Valid() {
			return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrStringOutOfRange, s, MaxStrings)
		}
	}
	if fretCount > MaxFrets {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrTooManyFrets, fretCount, MaxFrets)
	}
	if capo > MaxCapo {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrCapoTooHigh, capo, MaxCapo)
	}
	if capo > fretCount {
		return nil, fmt.Errorf("%w: capo %d above fret count %d", ErrCapoTooHigh, capo, fretCount)
	}

	fb := &Fretboard{
		tuning:    tuning.clone(),
		fretCount: fretCount,
		capo:      capo,
		strings:   strs,
		ranges:    make(map[StringIndex][]pitch.Pitch, len(strs)),
		index:     make(map[pitch.Pitch][]Fingering),
	}

	for _, s := range strs {
		rng, err := stringRange(tuning[s], fretCount, capo)
		if err != nil {
			return nil, fmt.Errorf("string %d: %w", s, err)
		}
		fb.ranges[s] = rng
	}

	// Strings are visited ascending, so each index bucket ends up ordered by string.
	for _, s := range strs {
		for fret, p := range fb.ranges[s] {
			fb.index[p] = append(fb.index[p], Fingering{Pitch: p, StringIndex: s, Fret: uint8(fret)})
		}
	}

	return fb, nil
}

// stringRange lists the pitches from the capo up to the last fret.
func stringRange(open pitch.Pitch, fretCount, capo uint8) ([]pitch.Pitch, error) {
	top, ok := open.Add(int(fretCount))
	if !ok || !open.Valid() {
		return nil, fmt.Errorf(
			"%w: %d frets from %s; the highest pitch %s would only exist at fret %d",
			ErrRangeOverflow, fretCount, open, pitch.Max, int(pitch.Max)-int(open),
		)
	}
	low := open + pitch.Pitch(capo)
	out := make([]pitch.Pitch, 0, int(top-low)+1)
	for p := low; p <= top; p++ {
		out = append(out, p)
	}

	return out, nil
}

// Lookup returns every fingering of p, ordered by string ascending.
// An unreachable pitch yields an empty slice.
func (fb *Fretboard) Lookup(p pitch.Pitch) []Fingering {
	src := fb.index[p]
	out := make([]Fingering, len(src))
	copy(out, src)

	return out
}

// Strings returns the configured string indices ascending.
func (fb *Fretboard) Strings() []StringIndex {
	out := make([]StringIndex, len(fb.strings))
	copy(out, fb.strings)

	return out
}

// StringCount returns the number of strings.
func (fb *Fretboard) StringCount() int { return len(fb.strings) }

// FretCount returns the configured fret count.
func (fb *Fretboard) FretCount() uint8 { return fb.fretCount }

// Capo returns the capo position (0 = no capo).
func (fb *Fretboard) Capo() uint8 { return fb.capo }

// Tuning returns a copy of the open-string tuning.
func (fb *Fretboard) Tuning() Tuning { return fb.tuning.clone() }

// Range returns the reachable pitches of string s (nil if s is not configured).
func (fb *Fretboard) Range(s StringIndex) []pitch.Pitch {
	src, ok := fb.ranges[s]
	if !ok {
		return nil
	}
	out := make([]pitch.Pitch, len(src))
	copy(out, src)

	return out
}

// Reachable reports whether p has at least one fingering.
func (fb *Fretboard) Reachable(p pitch.Pitch) bool { return len(fb.index[p]) > 0 }
