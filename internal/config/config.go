// Package config loads fretpath runtime settings from defaults, an optional
// config file, FRETPATH_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/fretpath/arrangement"
	"github.com/katalvlaran/fretpath/fretboard"
)

// EnvPrefix is the prefix of environment overrides, e.g. FRETPATH_CAPO.
const EnvPrefix = "FRETPATH"

// ErrInvalid indicates a setting outside its allowed range.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds all runtime configuration for one fretpath invocation.
type Config struct {
	Tuning        string `mapstructure:"tuning"`
	TuningsFile   string `mapstructure:"tunings-file"`
	Frets         int    `mapstructure:"frets"`
	Capo          int    `mapstructure:"capo"`
	Count         int    `mapstructure:"count"`
	Width         int    `mapstructure:"width"`
	Padding       int    `mapstructure:"padding"`
	Playback      int    `mapstructure:"playback"`
	Workers       int    `mapstructure:"workers"`
	MaxDifficulty int64  `mapstructure:"max-difficulty"`
	LogLevel      string `mapstructure:"log-level"`
	LogFormat     string `mapstructure:"log-format"`
}

// SetDefaults registers the built-in defaults on v and enables FRETPATH_*
// environment lookups.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("tuning", "standard")
	v.SetDefault("tunings-file", "")
	v.SetDefault("frets", fretboard.DefaultFretCount)
	v.SetDefault("capo", 0)
	v.SetDefault("count", 3)
	v.SetDefault("width", 40)
	v.SetDefault("padding", 2)
	v.SetDefault("playback", -1)
	v.SetDefault("workers", 1)
	v.SetDefault("max-difficulty", -1)
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-format", "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load decodes v into a Config and checks every range.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.Frets < 0 || c.Frets > fretboard.MaxFrets:
		return fmt.Errorf("%w: frets %d (max %d)", ErrInvalid, c.Frets, fretboard.MaxFrets)
	case c.Capo < 0 || c.Capo > fretboard.MaxCapo:
		return fmt.Errorf("%w: capo %d (max %d)", ErrInvalid, c.Capo, fretboard.MaxCapo)
	case c.Count < arrangement.MinArrangements || c.Count > arrangement.MaxArrangements:
		return fmt.Errorf("%w: count %d (allowed %d-%d)", ErrInvalid, c.Count,
			arrangement.MinArrangements, arrangement.MaxArrangements)
	case c.Padding < 0:
		return fmt.Errorf("%w: padding %d", ErrInvalid, c.Padding)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	case c.Playback < -1:
		return fmt.Errorf("%w: playback %d", ErrInvalid, c.Playback)
	case c.MaxDifficulty < -1:
		return fmt.Errorf("%w: max-difficulty %d", ErrInvalid, c.MaxDifficulty)
	}

	return nil
}

// Fretboard builds the fretboard described by c, resolving the tuning name
// against the tunings file first and the built-in presets second.
func (c Config) Fretboard() (*fretboard.Fretboard, error) {
	var custom map[string]fretboard.Tuning
	if c.TuningsFile != "" {
		var err error
		if custom, err = LoadTunings(c.TuningsFile); err != nil {
			return nil, err
		}
	}

	t, ok := custom[c.Tuning]
	if !ok {
		var err error
		if t, err = fretboard.Preset(c.Tuning); err != nil {
			return nil, err
		}
	}

	return fretboard.New(t, uint8(c.Frets), uint8(c.Capo))
}
