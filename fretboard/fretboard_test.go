package fretboard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fretpath/fretboard"
	"github.com/katalvlaran/fretpath/pitch"
)

func TestNew_StandardLookup(t *testing.T) {
	fb := fretboard.Standard()
	require.Equal(t, 6, fb.StringCount())
	require.Equal(t, uint8(fretboard.DefaultFretCount), fb.FretCount())

	got := fb.Lookup(pitch.E4)
	want := []fretboard.Fingering{
		{Pitch: pitch.E4, StringIndex: 1, Fret: 0},
		{Pitch: pitch.E4, StringIndex: 2, Fret: 5},
		{Pitch: pitch.E4, StringIndex: 3, Fret: 9},
		{Pitch: pitch.E4, StringIndex: 4, Fret: 14},
	}
	require.Equal(t, want, got)

	require.Equal(t, []fretboard.Fingering{{Pitch: pitch.E2, StringIndex: 6, Fret: 0}}, fb.Lookup(pitch.E2))
	require.Empty(t, fb.Lookup(pitch.B9))
	require.False(t, fb.Reachable(pitch.B9))
	require.Empty(t, fb.Lookup(pitch.D2))
}

func TestLookup_ReturnsCopy(t *testing.T) {
	fb := fretboard.Standard()
	got := fb.Lookup(pitch.E4)
	got[0].Fret = 99
	require.Equal(t, uint8(0), fb.Lookup(pitch.E4)[0].Fret)
}

func TestNew_SmallRange(t *testing.T) {
	fb, err := fretboard.New(fretboard.StandardTuning(), 3, 0)
	require.NoError(t, err)
	require.Equal(t, []pitch.Pitch{pitch.E2, pitch.E2 + 1, pitch.E2 + 2, pitch.G2}, fb.Range(6))
	require.Nil(t, fb.Range(7))
}

func TestNew_Capo(t *testing.T) {
	fb, err := fretboard.New(fretboard.StandardTuning(), 12, 2)
	require.NoError(t, err)
	require.Equal(t, uint8(2), fb.Capo())

	// The low E string now starts at F#2 and has 10 frets above the capo.
	rng := fb.Range(6)
	require.Len(t, rng, 11)
	require.Equal(t, "F#2", rng[0].String())
	require.Empty(t, fb.Lookup(pitch.E2))

	// A2 is now only reachable at the capo-relative third fret of string 6.
	got := fb.Lookup(pitch.A2)
	require.Equal(t, []fretboard.Fingering{{Pitch: pitch.A2, StringIndex: 6, Fret: 3}}, got)
}

func TestNew_Errors(t *testing.T) {
	_, err := fretboard.New(fretboard.Tuning{}, 18, 0)
	require.ErrorIs(t, err, fretboard.ErrEmptyTuning)

	_, err = fretboard.New(fretboard.StandardTuning(), 31, 0)
	require.ErrorIs(t, err, fretboard.ErrTooManyFrets)

	_, err = fretboard.New(fretboard.StandardTuning(), 18, 9)
	require.ErrorIs(t, err, fretboard.ErrCapoTooHigh)

	_, err = fretboard.New(fretboard.StandardTuning(), 4, 5)
	require.ErrorIs(t, err, fretboard.ErrCapoTooHigh)

	_, err = fretboard.New(fretboard.Tuning{0: pitch.E4}, 18, 0)
	require.ErrorIs(t, err, fretboard.ErrStringOutOfRange)

	_, err = fretboard.New(fretboard.Tuning{13: pitch.E4}, 18, 0)
	require.ErrorIs(t, err, fretboard.ErrStringOutOfRange)

	_, err = fretboard.New(fretboard.Tuning{1: pitch.MustParse("G9")}, 5, 0)
	require.ErrorIs(t, err, fretboard.ErrRangeOverflow)
	require.Contains(t, err.Error(), "would only exist at fret 4")
}

func TestNewStringIndex(t *testing.T) {
	s, err := fretboard.NewStringIndex(1)
	require.NoError(t, err)
	require.Equal(t, fretboard.StringIndex(1), s)

	_, err = fretboard.NewStringIndex(0)
	require.ErrorIs(t, err, fretboard.ErrStringOutOfRange)
	_, err = fretboard.NewStringIndex(15)
	require.ErrorIs(t, err, fretboard.ErrStringOutOfRange)
}

func TestPresets(t *testing.T) {
	names := fretboard.PresetNames()
	require.Contains(t, names, fretboard.StandardTuningName)
	require.IsIncreasing(t, names)

	for _, name := range names {
		tuning, err := fretboard.Preset(name)
		require.NoError(t, err, name)
		_, err = fretboard.New(tuning, fretboard.DefaultFretCount, 0)
		require.NoError(t, err, name)
	}

	dropD, err := fretboard.Preset("drop-d")
	require.NoError(t, err)
	require.Equal(t, pitch.D2, dropD[6])

	_, err = fretboard.Preset("banjo")
	require.ErrorIs(t, err, fretboard.ErrUnknownTuning)

	_, err = fretboard.ParseTuning([]string{"E4", "Q3"})
	require.ErrorIs(t, err, pitch.ErrSyntax)

	_, err = fretboard.NewTuning(make([]pitch.Pitch, 13)...)
	require.ErrorIs(t, err, fretboard.ErrStringOutOfRange)
}
