package tab

import "errors"

// Defaults used when no option overrides them.
const (
	DefaultWidth   = 40
	DefaultPadding = 2
)

// maxFretWidth is the widest fret number (two digits).
const maxFretWidth = 2

var (
	// ErrBadPadding indicates WithPadding was given a negative value.
	ErrBadPadding = errors.New("tab: padding must be non-negative")

	// ErrBadPlayback indicates WithPlayback was given a negative value.
	ErrBadPlayback = errors.New("tab: playback index must be non-negative")
)

// Options configures Render.
type Options struct {
	Width    int
	Padding  int
	Playback int // -1 disables the marker
}

// Option is a functional option for Render.
type Option func(*Options)

// WithWidth sets the total row width in characters.
func WithWidth(w int) Option {
	return func(o *Options) { o.Width = w }
}

// WithPadding sets the dashes between columns. Panics if p < 0.
func WithPadding(p int) Option {
	if p < 0 {
		panic(ErrBadPadding.Error())
	}

	return func(o *Options) { o.Padding = p }
}

// WithPlayback marks the i-th rest or playable column. Panics if i < 0.
// An index past the last column draws no marker.
func WithPlayback(i int) Option {
	if i < 0 {
		panic(ErrBadPlayback.Error())
	}

	return func(o *Options) { o.Playback = i }
}

// DefaultOptions returns DefaultWidth, DefaultPadding and no marker.
func DefaultOptions() Options {
	return Options{Width: DefaultWidth, Padding: DefaultPadding, Playback: -1}
}
