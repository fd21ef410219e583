// Package tab renders arrangement lines as plain-text guitar tablature.
//
// Layout:
//
//   - One text row per string, string 1 (highest) on top.
//   - Each line becomes a column: '|' for a measure break, '-' for a rest, and
//     for a playable line the fret numbers, left-aligned and dash-padded to the
//     widest fret of the column.
//   - A row starts with Padding dashes, and every column is followed by Padding
//     dashes. Columns are added while the row is shorter than
//     Width - Padding - 2; the row is then dash-filled to Width. Remaining
//     columns wrap into the next row group, separated by a blank line.
//   - With a playback index (0-based over rest and playable columns), a '▼'
//     line above and a '▲' line below mark that column in its row group.
//
// Errors:
//
//   - ErrBadStringCount: stringCount outside 1..fretboard.MaxStrings.
//   - ErrStringOutOfRange: a fingering on a string beyond stringCount.
//   - ErrWidthTooSmall: Width cannot hold a single padded column.
package tab
