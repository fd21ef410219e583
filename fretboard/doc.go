// Package fretboard models a fretted instrument configuration (tuning, fret
// count, capo) and answers the one question the arrangement engine asks of
// it: on which strings, and at which frets, can a pitch be played?
//
// Model:
//
//   - StringIndex is 1-based (string 1 is the highest-pitched string in the
//     usual tab orientation) and bounded by MaxStrings.
//   - A Fretboard is immutable once built. For every string it stores the
//     ordered sequence of reachable pitches; the position in that sequence
//     is the fret number. Build one per configuration and share the pointer.
//   - A capo raises every string by capo semitones and becomes the new nut:
//     fret numbers are reported relative to the capo, and the playable range
//     shrinks to fretCount-capo frets.
//
// Determinism:
//
//   - Lookup returns fingerings ordered by StringIndex ascending.
//   - Strings returns string indices ascending.
//
// Errors (sentinel, match with errors.Is):
//
//	ErrEmptyTuning      - the tuning has no strings.
//	ErrStringOutOfRange - a string index is 0 or above MaxStrings.
//	ErrTooManyFrets     - fretCount exceeds MaxFrets.
//	ErrCapoTooHigh      - capo exceeds MaxCapo or the fret count.
//	ErrRangeOverflow    - a string's range would run past pitch.Max.
//	ErrUnknownTuning    - Preset was asked for a name it does not know.
//
// Complexity:
//
//   - New:    O(S·F) time and space, S strings, F frets (lookup table is prebuilt).
//   - Lookup: O(k) to copy the k fingerings of a pitch.
package fretboard
