package notation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/fretpath/arrangement"
	"github.com/katalvlaran/fretpath/pitch"
)

// ErrSyntax indicates at least one line could not be parsed.
var ErrSyntax = errors.New("notation: syntax error")

// LineError is one unparsable line.
type LineError struct {
	Line int    // 1-based
	Text string // the offending line, trimmed
	Err  error  // underlying pitch error
}

// SyntaxError lists every unparsable line in input order.
type SyntaxError struct {
	Lines []LineError
}

// Error renders one line per offending input line.
func (e *SyntaxError) Error() string {
	var b strings.Builder
	for i, le := range e.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "notation: line %d: cannot parse %q: %v", le.Line, le.Text, le.Err)
	}

	return b.String()
}

// Is makes errors.Is(err, ErrSyntax) hold.
func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// Unwrap exposes the per-line pitch errors.
func (e *SyntaxError) Unwrap() []error {
	out := make([]error, len(e.Lines))
	for i, le := range e.Lines {
		out[i] = le.Err
	}

	return out
}

// Parse reads beats from r until EOF.
func Parse(r io.Reader) ([]arrangement.Beat, error) {
	var (
		beats []arrangement.Beat
		bad   []LineError
	)

	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		b, err := parseLine(text)
		if err != nil {
			bad = append(bad, LineError{Line: n, Text: text, Err: err})
			continue
		}
		beats = append(beats, b)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("notation: read: %w", err)
	}
	if len(bad) > 0 {
		return nil, &SyntaxError{Lines: bad}
	}

	return beats, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]arrangement.Beat, error) {
	return Parse(strings.NewReader(s))
}

// parseLine classifies one trimmed line.
func parseLine(text string) (arrangement.Beat, error) {
	switch {
	case text == "":
		return arrangement.Rest(), nil
	case strings.Trim(text, "-") == "":
		return arrangement.MeasureBreak(), nil
	}

	var ps []pitch.Pitch
	for _, field := range strings.Fields(text) {
		for field != "" {
			n := tokenLen(field)
			p, err := pitch.Parse(field[:n])
			if err != nil {
				return arrangement.Beat{}, err
			}
			ps = append(ps, p)
			field = field[n:]
		}
	}

	return arrangement.Playable(ps...), nil
}

// tokenLen returns the length of the pitch name at the start of s: a letter,
// an optional accidental and one octave digit. Malformed input yields a
// length that pitch.Parse will reject.
func tokenLen(s string) int {
	n := 1
	if n < len(s) && (s[n] == '#' || s[n] == 'b') {
		n++
	}
	if n < len(s) {
		n++
	}

	return n
}
