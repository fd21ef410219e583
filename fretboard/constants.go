package fretboard

const (
	// MaxStrings is the highest accepted StringIndex.
	MaxStrings = 12

	// MaxFrets is the largest accepted fret count.
	MaxFrets = 30

	// MaxCapo is the highest accepted capo position.
	MaxCapo = 8

	// DefaultFretCount is the fret count of the default guitar.
	DefaultFretCount = 18
)
