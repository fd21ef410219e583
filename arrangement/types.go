package arrangement

import (
	"github.com/katalvlaran/fretpath/fretboard"
	"github.com/katalvlaran/fretpath/pitch"
)

// Kind tags the three shapes a beat or an output line can take.
type Kind uint8

const (
	// KindRest is a beat with nothing played.
	KindRest Kind = iota
	// KindMeasureBreak is a bar line; it carries no timing.
	KindMeasureBreak
	// KindPlayable is a beat with one or more simultaneous pitches.
	KindPlayable
)

// String returns a lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRest:
		return "rest"
	case KindMeasureBreak:
		return "measure-break"
	case KindPlayable:
		return "playable"
	default:
		return "unknown"
	}
}

// Beat is one input position. Pitches is only meaningful for KindPlayable.
type Beat struct {
	Kind    Kind
	Pitches []pitch.Pitch
}

// Rest returns a rest beat.
func Rest() Beat { return Beat{Kind: KindRest} }

// MeasureBreak returns a measure-break beat.
func MeasureBreak() Beat { return Beat{Kind: KindMeasureBreak} }

// Playable returns a beat sounding all of ps at once.
func Playable(ps ...pitch.Pitch) Beat { return Beat{Kind: KindPlayable, Pitches: ps} }

// Line is one output position of an Arrangement. Fingerings is only
// meaningful for KindPlayable and is ordered like the beat's pitches.
type Line struct {
	Kind       Kind
	Fingerings []fretboard.Fingering
}

// RestLine returns a rest line.
func RestLine() Line { return Line{Kind: KindRest} }

// MeasureBreakLine returns a measure-break line.
func MeasureBreakLine() Line { return Line{Kind: KindMeasureBreak} }

// PlayableLine returns a line playing fs.
func PlayableLine(fs ...fretboard.Fingering) Line { return Line{Kind: KindPlayable, Fingerings: fs} }

// Arrangement is one complete fingering of the input.
//
// Difficulty is the summed transition cost of the path; MaxFretSpan is the
// widest fret span of any single beat.
type Arrangement struct {
	Lines       []Line
	Difficulty  int64
	MaxFretSpan uint8
}

// Fretboard is the lookup capability Generate needs; *fretboard.Fretboard
// satisfies it.
type Fretboard interface {
	// Lookup returns every fingering of p, ordered by string index.
	Lookup(p pitch.Pitch) []fretboard.Fingering
}
