package arrangement

// Difficulty weights of the transition cost.
const (
	// AvgFretDiffWeight scales the hand movement between consecutive beats.
	AvgFretDiffWeight = 100

	// SpanWeight scales the fret span of the destination beat.
	SpanWeight = 10

	// AvgFretWeight scales the fret height of the destination beat.
	AvgFretWeight = 1
)

// Bounds on the number of arrangements one request may ask for.
const (
	MinArrangements = 1
	MaxArrangements = 20
)

// startVertex is the virtual layer -1 vertex of the fingering graph.
const startVertex = "start"

// vertexIDFormat zero-pads node IDs so lexical order equals enumeration order.
const vertexIDFormat = "n%07d"
