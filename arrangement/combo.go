package arrangement

import "github.com/katalvlaran/fretpath/fretboard"

// FingeringCombo is one way to finger every pitch of a playable beat, each on
// a different string.
type FingeringCombo struct {
	Fingerings []fretboard.Fingering

	fretSum   int64 // sum of the non-open frets
	fretCount int64 // number of non-open frets; 0 when every fingering is open
	span      uint8 // max - min of the non-open frets
}

// newCombo computes the derived metrics of fs.
func newCombo(fs []fretboard.Fingering) FingeringCombo {
	c := FingeringCombo{Fingerings: fs}

	var lo, hi uint8
	for _, f := range fs {
		if f.Open() {
			continue
		}
		if c.fretCount == 0 || f.Fret < lo {
			lo = f.Fret
		}
		if f.Fret > hi {
			hi = f.Fret
		}
		c.fretSum += int64(f.Fret)
		c.fretCount++
	}
	if c.fretCount > 1 {
		c.span = hi - lo
	}

	return c
}

// AvgFret returns the mean non-open fret and whether it is defined.
func (c FingeringCombo) AvgFret() (float64, bool) {
	if c.fretCount == 0 {
		return 0, false
	}

	return float64(c.fretSum) / float64(c.fretCount), true
}

// Span returns the distance between the highest and lowest non-open fret.
func (c FingeringCombo) Span() uint8 { return c.span }
