// Package arrangement turns a sequence of beats into ranked guitar fingering
// arrangements.
//
// Pipeline:
//
//  1. Candidates: every pitch of a playable beat is looked up on the
//     fretboard; the Cartesian product of the per-pitch fingerings, minus
//     every product that puts two pitches on one string, gives the beat's
//     FingeringCombos. A rest contributes a single cost-neutral marker.
//  2. Graph: each non-measure-break beat is one layer of a core.Graph. A
//     virtual "start" vertex precedes layer 0, and every node of layer L links
//     to every node of layer L+1 with the transition cost as weight.
//  3. Search: yen.KShortestPaths finds the cheapest distinct paths from start
//     to any node of the last layer.
//  4. Assembly: each path becomes an Arrangement; measure breaks are put back
//     at their original positions.
//
// Cost:
//
//	Reaching a rest costs 0. Reaching a note costs
//	100·|Δ avg fret| + 10·span + avg fret, rounded down exactly, where averages and spans
//	only count non-open frets and the Δ term needs both averages defined.
//
// Edge cases:
//
//   - Input without any playable beat: count empty arrangements, no search.
//   - Rests and measure breaks before the first playable beat are dropped and
//     absent from the output; later ones are preserved verbatim.
//   - A chord that cannot be spread over distinct strings yields no combos, and
//     the request fails with ErrNoArrangements.
//   - A playable beat with no pitches yields one empty combo.
//
// Complexity:
//
//	The combo count of a beat is the product of its per-pitch fingering
//	counts, and the edge count between two layers is the product of their
//	sizes. Growth is intentionally never truncated; use WithMaxDifficulty or
//	a context deadline to bound work.
//
// Errors:
//
//   - ErrInvalidRequest: count outside [1, 20] or nil fretboard.
//   - ErrInvalidPitch:   concrete *InvalidPitchError listing every unplayable
//     pitch with its 1-based beat position.
//   - ErrNoArrangements: the search found no complete path.
//
// Determinism:
//
//	Identical inputs produce identical arrangements. Ties in difficulty are
//	broken by path length and then by enumeration order of the fingerings.
package arrangement
