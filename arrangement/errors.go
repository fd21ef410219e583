package arrangement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/fretpath/pitch"
)

// Sentinel errors for arrangement generation.
var (
	// ErrInvalidRequest indicates a request rejected before any computation:
	// a count outside [MinArrangements, MaxArrangements] or a nil fretboard.
	ErrInvalidRequest = errors.New("arrangement: invalid request")

	// ErrInvalidPitch indicates at least one pitch has no fingering on the
	// fretboard. The concrete error is *InvalidPitchError.
	ErrInvalidPitch = errors.New("arrangement: invalid pitch")

	// ErrNoArrangements indicates the search found no complete path, e.g. a
	// chord whose pitches cannot be spread across distinct strings.
	ErrNoArrangements = errors.New("arrangement: no arrangements could be calculated")
)

// InvalidPitch is one unplayable pitch and the 1-based position of its beat.
type InvalidPitch struct {
	Pitch    pitch.Pitch
	Position int
}

// InvalidPitchError lists every unplayable pitch of a request, in input order.
type InvalidPitchError struct {
	Pitches []InvalidPitch
}

// Error renders one line per offending pitch.
func (e *InvalidPitchError) Error() string {
	var b strings.Builder
	for i, ip := range e.Pitches {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "arrangement: pitch %s on line %d cannot be played on any string of the fretboard",
			ip.Pitch, ip.Position)
	}

	return b.String()
}

// Is makes errors.Is(err, ErrInvalidPitch) hold.
func (e *InvalidPitchError) Is(target error) bool { return target == ErrInvalidPitch }
