package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun_ArrangesFile(t *testing.T) {
	path := writeFile(t, "melody.txt", "E2\nA2\nD3\n\nG3\nB3\n---\nE4\n")

	var out, errW bytes.Buffer
	err := run(context.Background(),
		[]string{"--frets", "20", "--count", "1", "--width", "30", "--padding", "2", "--playback", "3", path},
		strings.NewReader(""), &out, &errW)
	require.NoError(t, err)
	require.Equal(t,
		"Arrangement 1: difficulty 0, max fret span 0\n"+
			"           ▼\n"+
			"--------------------|--0------\n"+
			"-----------------0--|---------\n"+
			"--------------0-----|---------\n"+
			"--------0-----------|---------\n"+
			"-----0--------------|---------\n"+
			"--0-----------------|---------\n"+
			"           ▲\n",
		out.String())
}

func TestRun_StdinSeveralArrangements(t *testing.T) {
	var out, errW bytes.Buffer
	err := run(context.Background(), []string{"-n", "4", "--width", "12"}, strings.NewReader("E4\n"), &out, &errW)
	require.NoError(t, err)
	require.Equal(t, 4, strings.Count(out.String(), "Arrangement "))
	require.Contains(t, out.String(), "Arrangement 4: difficulty 14, max fret span 0\n")
}

func TestRun_ExitCodes(t *testing.T) {
	var out, errW bytes.Buffer

	err := run(context.Background(), nil, strings.NewReader("E2\n???\n"), &out, &errW)
	require.Error(t, err)
	require.Equal(t, exitInvalidInput, exitCode(err))

	err = run(context.Background(), nil, strings.NewReader("B9\n"), &out, &errW)
	require.Error(t, err)
	require.Equal(t, exitInvalidInput, exitCode(err))

	err = run(context.Background(), nil, strings.NewReader("E2A2D3G3B3E4A4\n"), &out, &errW)
	require.Error(t, err)
	require.Equal(t, exitNoResult, exitCode(err))

	err = run(context.Background(), []string{"--count", "0"}, strings.NewReader("E4\n"), &out, &errW)
	require.Error(t, err)
	require.Equal(t, exitFailure, exitCode(err))

	require.Equal(t, exitOK, exitCode(nil))
}

func TestRun_ConfigFileAndTunings(t *testing.T) {
	tunings := writeFile(t, "tunings.toml", "[tunings]\nbaritone = [\"B3\", \"F#3\", \"D3\", \"A2\", \"E2\", \"B1\"]\n")
	cfgPath := writeFile(t, "fretpath.toml", "tuning = \"baritone\"\ntunings-file = \""+filepath.ToSlash(tunings)+"\"\ncount = 1\n")

	var out, errW bytes.Buffer
	err := run(context.Background(), []string{"--config", cfgPath}, strings.NewReader("B3\n"), &out, &errW)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out.String(), "Arrangement 1: difficulty 0, max fret span 0\n"))

	out.Reset()
	err = run(context.Background(), []string{"tunings", "--tunings-file", tunings}, nil, &out, &errW)
	require.NoError(t, err)
	require.Contains(t, out.String(), "baritone: B3 F#3 D3 A2 E2 B1\n")
	require.Contains(t, out.String(), "drop-d: E4 B3 G3 D3 A2 D2\n")
	require.Contains(t, out.String(), "standard: E4 B3 G3 D3 A2 E2\n")
}
