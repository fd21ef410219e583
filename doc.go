// Package fretpath turns a sequence of pitches into guitar fingering
// arrangements, ranked from easiest to hardest.
//
// Each beat of the input becomes one layer of a directed weighted graph:
// a rest is a single node, a playable beat is one node per way of placing its
// pitches on distinct strings. Edges join consecutive layers and carry the
// cost of moving the fretting hand from one combination to the next. The N
// cheapest start-to-end paths (Yen's algorithm over Dijkstra) are the N
// easiest arrangements.
//
// Packages, leaf first:
//
//	pitch/        C0 … B9 pitch enumeration, parsing and naming
//	fretboard/    tuning, fret count and capo; pitch → fingerings lookup
//	core/         thread-safe Graph, Vertex and Edge primitives
//	bfs/          breadth-first reachability over core.Graph
//	dijkstra/     single-source shortest path with goal, exclusions and a cost cap
//	yen/          k loopless shortest paths on top of dijkstra
//	arrangement/  candidate combos, cost function, graph build and Generate
//	notation/     line-oriented text input (blank = rest, dashes = measure break)
//	tab/          ASCII tablature with wrapping and a playback marker
//	cmd/fretpath  command-line front end (cobra + viper)
//
// Quick start:
//
//	fb := fretboard.Standard()
//	beats, _ := notation.ParseString("E2\nA2\n\nE4\n")
//	arrs, err := arrangement.Generate(fb, beats, 3)
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, _ := tab.Render(arrs[0].Lines, fb.StringCount())
//	fmt.Print(out)
//
// Determinism: identical inputs always yield identical arrangements in the
// same order. Ties in difficulty are broken by hop count and then by the
// lexical order of the graph vertex IDs, which follow enumeration order.
package fretpath
