package tab

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/fretpath/arrangement"
	"github.com/katalvlaran/fretpath/fretboard"
)

// Sentinel errors for rendering.
var (
	// ErrBadStringCount indicates a string count outside 1..fretboard.MaxStrings.
	ErrBadStringCount = errors.New("tab: bad string count")

	// ErrStringOutOfRange indicates a fingering on a string the tab does not draw.
	ErrStringOutOfRange = errors.New("tab: fingering string out of range")

	// ErrWidthTooSmall indicates the width cannot hold a single padded column.
	ErrWidthTooSmall = errors.New("tab: width too small")
)

// column is the rendering of one line, one cell per string.
type column struct {
	cells    []string
	sonorous bool // rest or playable
}

// group is a run of columns sharing one row group, plus the marker offset.
type group struct {
	columns []column
	marker  int // byte offset of the playback column, -1 if none
}

// Render draws lines for an instrument with stringCount strings.
func Render(lines []arrangement.Line, stringCount int, opts ...Option) (string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if stringCount < 1 || stringCount > fretboard.MaxStrings {
		return "", fmt.Errorf("%w: %d", ErrBadStringCount, stringCount)
	}
	if cfg.Width <= 2*cfg.Padding+maxFretWidth {
		return "", fmt.Errorf("%w: width %d with padding %d", ErrWidthTooSmall, cfg.Width, cfg.Padding)
	}

	// 1) Columns
	cols := make([]column, len(lines))
	for i, l := range lines {
		c, err := renderLine(l, stringCount)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		cols[i] = c
	}

	// 2) Row groups
	groups := layout(cols, cfg)

	// 3) Text
	pad := strings.Repeat("-", cfg.Padding)
	var b strings.Builder
	for gi, g := range groups {
		if gi > 0 {
			b.WriteByte('\n')
		}
		if g.marker >= 0 {
			b.WriteString(strings.Repeat(" ", g.marker))
			b.WriteString("▼\n")
		}
		for s := 0; s < stringCount; s++ {
			row := pad
			for _, c := range g.columns {
				row += c.cells[s] + pad
			}
			b.WriteString(row)
			if fill := cfg.Width - len(row); fill > 0 {
				b.WriteString(strings.Repeat("-", fill))
			}
			b.WriteByte('\n')
		}
		if g.marker >= 0 {
			b.WriteString(strings.Repeat(" ", g.marker))
			b.WriteString("▲\n")
		}
	}

	return b.String(), nil
}

// renderLine builds the per-string cells of one line.
func renderLine(l arrangement.Line, stringCount int) (column, error) {
	switch l.Kind {
	case arrangement.KindMeasureBreak:
		return column{cells: filled("|", stringCount)}, nil
	case arrangement.KindRest:
		return column{cells: filled("-", stringCount), sonorous: true}, nil
	}

	width := 1
	for _, f := range l.Fingerings {
		if n := len(strconv.Itoa(int(f.Fret))); n > width {
			width = n
		}
	}
	cells := filled(strings.Repeat("-", width), stringCount)
	for _, f := range l.Fingerings {
		if int(f.StringIndex) < 1 || int(f.StringIndex) > stringCount {
			return column{}, fmt.Errorf("%w: string %d of %d", ErrStringOutOfRange, f.StringIndex, stringCount)
		}
		fret := strconv.Itoa(int(f.Fret))
		cells[f.StringIndex-1] = fret + strings.Repeat("-", width-len(fret))
	}

	return column{cells: cells, sonorous: true}, nil
}

// layout splits cols into row groups and locates the playback marker.
func layout(cols []column, cfg Options) []group {
	limit := cfg.Width - cfg.Padding - maxFretWidth
	sonorous := 0

	var groups []group
	for i := 0; ; {
		g := group{marker: -1}
		length := cfg.Padding
		for i < len(cols) && length < limit {
			c := cols[i]
			if c.sonorous {
				if sonorous == cfg.Playback {
					g.marker = length
				}
				sonorous++
			}
			g.columns = append(g.columns, c)
			length += len(c.cells[0]) + cfg.Padding
			i++
		}
		groups = append(groups, g)
		if i >= len(cols) {
			break
		}
	}

	return groups
}

func filled(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}

	return out
}
