package pitch

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for pitch parsing.
var (
	// ErrSyntax indicates a malformed pitch name.
	ErrSyntax = errors.New("pitch: invalid pitch name")

	// ErrOutOfRange indicates a pitch outside C0 … B9.
	ErrOutOfRange = errors.New("pitch: out of range")
)

// Pitch is a semitone index, C0 == 0.
type Pitch uint8

const (
	// Count is the number of distinct pitches (10 octaves of 12 semitones).
	Count = 120

	// Min is the lowest representable pitch.
	Min Pitch = 0

	// Max is the highest representable pitch.
	Max Pitch = Count - 1

	semitonesPerOctave = 12
)

// Named pitches used by the built-in tunings and in tests.
const (
	B0 Pitch = 11
	E1 Pitch = 16
	A1 Pitch = 21
	B1 Pitch = 23
	D2 Pitch = 26
	E2 Pitch = 28
	G2 Pitch = 31
	A2 Pitch = 33
	C3 Pitch = 36
	D3 Pitch = 38
	E3 Pitch = 40
	G3 Pitch = 43
	A3 Pitch = 45
	B3 Pitch = 47
	C4 Pitch = 48
	D4 Pitch = 50
	E4 Pitch = 52
	G4 Pitch = 55
	A4 Pitch = 57
	B9 Pitch = Max
)

// sharpNames renders each pitch class with sharps.
var sharpNames = [semitonesPerOctave]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// letterOffsets maps a natural note letter to its semitone offset from C.
var letterOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// New returns the pitch for a semitone class (0 = C … 11 = B) and octave.
func New(class, octave int) (Pitch, error) {
	if class < 0 || class >= semitonesPerOctave {
		return 0, fmt.Errorf("%w: class %d", ErrOutOfRange, class)
	}
	idx := octave*semitonesPerOctave + class
	if octave < 0 || idx >= Count {
		return 0, fmt.Errorf("%w: octave %d", ErrOutOfRange, octave)
	}

	return Pitch(idx), nil
}

// Parse converts a name such as "E4", "C#3" or "Bb2" into a Pitch.
func Parse(s string) (Pitch, error) {
	name := strings.TrimSpace(s)
	if len(name) < 2 || len(name) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	// 1) Note letter.
	offset, ok := letterOffsets[upper(name[0])]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	// 2) Optional accidental.
	rest := name[1:]
	switch rest[0] {
	case '#':
		offset++
		rest = rest[1:]
	case 'b':
		offset--
		rest = rest[1:]
	}

	// 3) Single octave digit.
	if len(rest) != 1 || rest[0] < '0' || rest[0] > '9' {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	octave := int(rest[0] - '0')

	idx := octave*semitonesPerOctave + offset
	if idx < int(Min) || idx > int(Max) {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}

	return Pitch(idx), nil
}

// MustParse is like Parse but panics on error. Intended for literals in
// tests and preset tables.
func MustParse(s string) Pitch {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return p
}

// Octave returns the octave number (0 … 9).
func (p Pitch) Octave() int { return int(p) / semitonesPerOctave }

// Class returns the semitone class (0 = C … 11 = B).
func (p Pitch) Class() int { return int(p) % semitonesPerOctave }

// Valid reports whether p lies in C0 … B9.
func (p Pitch) Valid() bool { return p <= Max }

// Add returns p shifted by n semitones and whether the result is still valid.
func (p Pitch) Add(n int) (Pitch, bool) {
	idx := int(p) + n
	if idx < int(Min) || idx > int(Max) {
		return 0, false
	}

	return Pitch(idx), true
}

// String renders the pitch with sharps, e.g. "F#3".
func (p Pitch) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Pitch(%d)", uint8(p))
	}

	return fmt.Sprintf("%s%d", sharpNames[p.Class()], p.Octave())
}

// upper folds an ASCII lower-case letter.
func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}

	return c
}
