package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fretpath/fretboard"
	"github.com/katalvlaran/fretpath/internal/config"
	"github.com/katalvlaran/fretpath/pitch"
)

func load(t *testing.T, setup func(v *viper.Viper)) (config.Config, error) {
	t.Helper()
	v := viper.New()
	config.SetDefaults(v)
	if setup != nil {
		setup(v)
	}

	return config.Load(v)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t, nil)
	require.NoError(t, err)
	require.Equal(t, config.Config{
		Tuning:        "standard",
		Frets:         fretboard.DefaultFretCount,
		Count:         3,
		Width:         40,
		Padding:       2,
		Playback:      -1,
		Workers:       1,
		MaxDifficulty: -1,
		LogLevel:      "warn",
		LogFormat:     "text",
	}, cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FRETPATH_CAPO", "2")
	t.Setenv("FRETPATH_MAX_DIFFICULTY", "150")
	t.Setenv("FRETPATH_TUNING", "dadgad")

	cfg, err := load(t, nil)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Capo)
	require.Equal(t, int64(150), cfg.MaxDifficulty)
	require.Equal(t, "dadgad", cfg.Tuning)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".fretpath.toml")
	require.NoError(t, os.WriteFile(path, []byte("tuning = \"drop-d\"\ncount = 5\nwidth = 60\n"), 0o600))

	cfg, err := load(t, func(v *viper.Viper) {
		v.SetConfigFile(path)
		require.NoError(t, v.ReadInConfig())
	})
	require.NoError(t, err)
	require.Equal(t, "drop-d", cfg.Tuning)
	require.Equal(t, 5, cfg.Count)
	require.Equal(t, 60, cfg.Width)
}

func TestLoad_Invalid(t *testing.T) {
	for key, val := range map[string]any{
		"frets":   fretboard.MaxFrets + 1,
		"capo":    fretboard.MaxCapo + 1,
		"count":   0,
		"workers": 0,
		"padding": -1,
	} {
		_, err := load(t, func(v *viper.Viper) { v.Set(key, val) })
		require.ErrorIs(t, err, config.ErrInvalid, key)
	}
}

func TestFretboard_PresetAndCustom(t *testing.T) {
	cfg, err := load(t, func(v *viper.Viper) { v.Set("tuning", "drop-d") })
	require.NoError(t, err)
	fb, err := cfg.Fretboard()
	require.NoError(t, err)
	require.Equal(t, pitch.D2, fb.Tuning()[6])

	path := filepath.Join(t.TempDir(), "tunings.toml")
	doc := "[tunings]\nukulele = [\"A4\", \"E4\", \"C4\", \"G4\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg.Tuning = "ukulele"
	cfg.TuningsFile = path
	fb, err = cfg.Fretboard()
	require.NoError(t, err)
	require.Equal(t, 4, fb.StringCount())
	require.Equal(t, pitch.A4, fb.Tuning()[1])

	cfg.Tuning = "nope"
	_, err = cfg.Fretboard()
	require.ErrorIs(t, err, fretboard.ErrUnknownTuning)
}

func TestParseTunings_Errors(t *testing.T) {
	_, err := config.ParseTunings([]byte("[tunings\n"))
	require.Error(t, err)

	_, err = config.ParseTunings([]byte("[tunings]\nbad = [\"X9\"]\n"))
	require.ErrorIs(t, err, pitch.ErrSyntax)

	_, err = config.LoadTunings(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := config.NewLogger("debug", "json", &buf)
	log.Debug("hello", "k", 1)
	require.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	log = config.NewLogger("warn", "text", &buf)
	log.Info("hidden")
	log.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=shown")
}
