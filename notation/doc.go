// Package notation reads the plain-text melody format into arrangement beats.
//
// Format, one beat per line:
//
//	E4          a single pitch
//	A2A3        a chord; pitches may be concatenated…
//	E3 G3 C4    …or separated by whitespace
//	            an empty (or blank) line is a rest
//	---         a line made only of dashes is a measure break
//
// Pitch names are a letter A-G (either case), an optional '#' or 'b' and a
// single octave digit.
//
// Errors are aggregated: every unparsable line is reported in one
// *SyntaxError, which matches ErrSyntax with errors.Is.
package notation
