// Package pitch defines the discrete, totally ordered tone space used by the
// fretboard and arrangement packages.
//
// A Pitch is a semitone index in the closed range C0 … B9 (120 values).
// Index 0 is C0, index 119 is B9; adding one moves up a semitone, so the
// fret number of a pitch on a string is simply p - open.
//
// Spelling:
//
//   - Parse accepts a note letter (case-insensitive), an optional accidental
//     ('#' for sharp, 'b' for flat) and a single octave digit: "E4", "c#3", "Db2".
//   - String always renders sharps: Db2.String() == "C#2".
//   - Enharmonic spellings that cross an octave boundary (Cb4, B#3) resolve to
//     the neighbouring octave's pitch, as long as the result stays in C0 … B9.
//
// Errors:
//
//	ErrSyntax     - the text is not a well-formed pitch name.
//	ErrOutOfRange - the spelled pitch falls outside C0 … B9.
package pitch
