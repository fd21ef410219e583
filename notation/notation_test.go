package notation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fretpath/arrangement"
	"github.com/katalvlaran/fretpath/notation"
	"github.com/katalvlaran/fretpath/pitch"
)

func TestParse(t *testing.T) {
	got, err := notation.ParseString("E2\nA2\nD3\n\nG3\nB3\n---\nE4")
	require.NoError(t, err)

	want := []arrangement.Beat{
		arrangement.Playable(pitch.E2),
		arrangement.Playable(pitch.A2),
		arrangement.Playable(pitch.D3),
		arrangement.Rest(),
		arrangement.Playable(pitch.G3),
		arrangement.Playable(pitch.B3),
		arrangement.MeasureBreak(),
		arrangement.Playable(pitch.E4),
	}
	require.Empty(t, cmp.Diff(want, got))
}

func TestParse_Chords(t *testing.T) {
	got, err := notation.ParseString("A2A3\nE3 G3  c4\nC#4Db4\nBb2 bb2\n  \n-\n")
	require.NoError(t, err)

	want := []arrangement.Beat{
		arrangement.Playable(pitch.A2, pitch.A3),
		arrangement.Playable(pitch.E3, pitch.G3, pitch.C4),
		arrangement.Playable(pitch.MustParse("C#4"), pitch.MustParse("C#4")),
		arrangement.Playable(pitch.MustParse("A#2"), pitch.MustParse("A#2")),
		arrangement.Rest(),
		arrangement.MeasureBreak(),
	}
	require.Empty(t, cmp.Diff(want, got))
}

func TestParse_ErrorsAggregated(t *testing.T) {
	_, err := notation.ParseString("E2\n???\nG3\nH4\nE4E")
	require.ErrorIs(t, err, notation.ErrSyntax)
	require.ErrorIs(t, err, pitch.ErrSyntax)

	var se *notation.SyntaxError
	require.True(t, errors.As(err, &se))
	require.Len(t, se.Lines, 3)
	require.Equal(t, []int{2, 4, 5}, []int{se.Lines[0].Line, se.Lines[1].Line, se.Lines[2].Line})
	require.Equal(t, "???", se.Lines[0].Text)
	require.Len(t, strings.Split(err.Error(), "\n"), 3)
}

func TestParse_Empty(t *testing.T) {
	got, err := notation.ParseString("")
	require.NoError(t, err)
	require.Empty(t, got)
}
