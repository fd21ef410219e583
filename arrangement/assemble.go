package arrangement

import (
	"sort"

	"github.com/katalvlaran/fretpath/dijkstra"
	"github.com/katalvlaran/fretpath/fretboard"
)

// assemble turns a start→goal path into an Arrangement, putting the measure
// breaks back at their beat positions.
func assemble(fg *fingeringGraph, p dijkstra.Path, breaks []int) Arrangement {
	a := Arrangement{
		Lines:      make([]Line, 0, len(p.Vertices)-1+len(breaks)),
		Difficulty: p.Cost,
	}
	for _, id := range p.Vertices {
		n, ok := fg.nodes[id]
		if !ok {
			continue // start
		}
		if n.rest {
			a.Lines = append(a.Lines, RestLine())
			continue
		}
		fs := append([]fretboard.Fingering(nil), n.combo.Fingerings...)
		a.Lines = append(a.Lines, PlayableLine(fs...))
		if s := n.combo.Span(); s > a.MaxFretSpan {
			a.MaxFretSpan = s
		}
	}

	sorted := append([]int(nil), breaks...)
	sort.Ints(sorted)
	for _, at := range sorted {
		a.Lines = append(a.Lines, Line{})
		copy(a.Lines[at+1:], a.Lines[at:])
		a.Lines[at] = MeasureBreakLine()
	}

	return a
}

// trivial returns count empty arrangements.
func trivial(count int) []Arrangement {
	out := make([]Arrangement, count)
	for i := range out {
		out[i] = Arrangement{Lines: []Line{}}
	}

	return out
}
