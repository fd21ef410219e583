package arrangement

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fretpath/fretboard"
)

// layer is one non-measure-break beat of the fingering graph.
type layer struct {
	beat   int // index into the trimmed beats
	rest   bool
	combos []FingeringCombo
}

// lookupAll resolves every pitch of every playable beat to its fingerings.
// All unplayable pitches are collected into a single *InvalidPitchError with
// 1-based beat positions.
func lookupAll(fb Fretboard, beats []Beat) ([][][]fretboard.Fingering, error) {
	out := make([][][]fretboard.Fingering, len(beats))
	var invalid []InvalidPitch
	for i, b := range beats {
		if b.Kind != KindPlayable {
			continue
		}
		perPitch := make([][]fretboard.Fingering, len(b.Pitches))
		for j, p := range b.Pitches {
			perPitch[j] = fb.Lookup(p)
			if len(perPitch[j]) == 0 {
				invalid = append(invalid, InvalidPitch{Pitch: p, Position: i + 1})
			}
		}
		out[i] = perPitch
	}
	if len(invalid) > 0 {
		return nil, &InvalidPitchError{Pitches: invalid}
	}

	return out, nil
}

// combos enumerates the Cartesian product of lists, first list outermost and
// last list fastest, skipping every product that uses a string twice.
// An empty lists yields exactly one empty combo.
func combos(lists [][]fretboard.Fingering) []FingeringCombo {
	var out []FingeringCombo
	current := make([]fretboard.Fingering, 0, len(lists))
	used := make(map[fretboard.StringIndex]bool, len(lists))

	var walk func(depth int)
	walk = func(depth int) {
		if depth == len(lists) {
			fs := make([]fretboard.Fingering, len(current))
			copy(fs, current)
			out = append(out, newCombo(fs))

			return
		}
		for _, f := range lists[depth] {
			if used[f.StringIndex] {
				continue
			}
			used[f.StringIndex] = true
			current = append(current, f)
			walk(depth + 1)
			current = current[:len(current)-1]
			used[f.StringIndex] = false
		}
	}
	walk(0)

	return out
}

// buildLayers turns the trimmed beats into graph layers and records the
// positions of the measure breaks it skips. Combination work for playable
// beats runs on up to workers goroutines; results stay in beat order.
func buildLayers(ctx context.Context, beats []Beat, fingerings [][][]fretboard.Fingering, workers int) ([]layer, []int, error) {
	var breaks []int
	layers := make([]layer, 0, len(beats))
	for i, b := range beats {
		switch b.Kind {
		case KindMeasureBreak:
			breaks = append(breaks, i)
		case KindRest:
			layers = append(layers, layer{beat: i, rest: true})
		default:
			layers = append(layers, layer{beat: i})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for li := range layers {
		if layers[li].rest {
			continue
		}
		li := li
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			layers[li].combos = combos(fingerings[layers[li].beat])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return layers, breaks, nil
}
