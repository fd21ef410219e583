package fretboard

import "errors"

// Sentinel errors for fretboard construction.
var (
	// ErrEmptyTuning indicates a tuning without strings.
	ErrEmptyTuning = errors.New("fretboard: tuning has no strings")

	// ErrStringOutOfRange indicates a string index outside 1..MaxStrings.
	ErrStringOutOfRange = errors.New("fretboard: string index out of range")

	// ErrTooManyFrets indicates a fret count above MaxFrets.
	ErrTooManyFrets = errors.New("fretboard: too many frets")

	// ErrCapoTooHigh indicates a capo above MaxCapo or above the fret count.
	ErrCapoTooHigh = errors.New("fretboard: capo too high")

	// ErrRangeOverflow indicates a string whose range would exceed the pitch space.
	ErrRangeOverflow = errors.New("fretboard: string range exceeds pitch range")

	// ErrUnknownTuning indicates an unknown preset name.
	ErrUnknownTuning = errors.New("fretboard: unknown tuning")
)
