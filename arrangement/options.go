package arrangement

import (
	"errors"
	"io"
	"log/slog"
	"math"
)

// Errors raised (as panics) by option constructors.
var (
	// ErrBadWorkers indicates WithWorkers was given a value below one.
	ErrBadWorkers = errors.New("arrangement: workers must be at least 1")

	// ErrBadMaxDifficulty indicates WithMaxDifficulty was given a negative value.
	ErrBadMaxDifficulty = errors.New("arrangement: max difficulty must be non-negative")
)

// Options configures Generate.
//
// Logger        – receives debug-level progress records; discarded by default.
// Workers       – goroutines used for per-beat combination work (default 1).
// MaxDifficulty – arrangements costlier than this are never returned.
type Options struct {
	Logger        *slog.Logger
	Workers       int
	MaxDifficulty int64
}

// Option represents a functional option for configuring Generate.
type Option func(*Options)

// WithLogger routes progress records to l. A nil l keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers bounds the parallel candidate generation. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(ErrBadWorkers.Error())
	}

	return func(o *Options) { o.Workers = n }
}

// WithMaxDifficulty drops every arrangement whose difficulty exceeds d.
// Panics if d < 0.
func WithMaxDifficulty(d int64) Option {
	if d < 0 {
		panic(ErrBadMaxDifficulty.Error())
	}

	return func(o *Options) { o.MaxDifficulty = d }
}

// DefaultOptions returns sequential generation with no difficulty cap and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Workers:       1,
		MaxDifficulty: math.MaxInt64,
	}
}
