package arrangement

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/fretpath/bfs"
	"github.com/katalvlaran/fretpath/yen"
)

// Generate returns up to count arrangements of beats on fb, least difficult
// first. It is GenerateContext with a background context.
func Generate(fb Fretboard, beats []Beat, count int, opts ...Option) ([]Arrangement, error) {
	return GenerateContext(context.Background(), fb, beats, count, opts...)
}

// GenerateContext returns up to count arrangements of beats on fb, least
// difficult first. ctx is checked inside the per-beat combination work, the
// reachability walk and before every spur search of the path search.
//
// Steps:
//  1. Reject count outside [MinArrangements, MaxArrangements] (ErrInvalidRequest).
//  2. Without any playable beat, return count empty arrangements.
//  3. Look up every pitch; report all unplayable ones together (ErrInvalidPitch).
//  4. Drop the rests and measure breaks before the first playable beat.
//  5. Enumerate fingering combos per beat and build the layered graph.
//  6. Check that every layer is reachable; name the first beat that is not.
//  7. Run Yen's k-shortest paths from start to the last layer.
//  8. Assemble each path, reinserting measure breaks.
//
// No partial result accompanies an error.
func GenerateContext(ctx context.Context, fb Fretboard, beats []Beat, count int, opts ...Option) ([]Arrangement, error) {
	// 1) Request validation
	if count < MinArrangements || count > MaxArrangements {
		return nil, fmt.Errorf("%w: count %d is outside [%d, %d]", ErrInvalidRequest, count, MinArrangements, MaxArrangements)
	}
	if fb == nil {
		return nil, fmt.Errorf("%w: nil fretboard", ErrInvalidRequest)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger

	// 2) Nothing to play
	first := firstPlayable(beats)
	if first < 0 {
		log.Debug("no playable beat, returning empty arrangements", "count", count)

		return trivial(count), nil
	}

	// 3) Aggregated pitch validation over the untrimmed input
	fingerings, err := lookupAll(fb, beats)
	if err != nil {
		return nil, err
	}

	// 4) Leading trim
	beats, fingerings = beats[first:], fingerings[first:]
	if first > 0 {
		log.Debug("dropped leading non-playable beats", "dropped", first)
	}

	// 5) Candidates and graph
	layers, breaks, err := buildLayers(ctx, beats, fingerings, cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("arrangement: candidates: %w", err)
	}
	fg, err := buildGraph(layers)
	if err != nil {
		return nil, err
	}
	log.Debug("fingering graph built",
		"layers", len(layers),
		"vertices", fg.g.VertexCount(),
		"edges", fg.g.EdgeCount())
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	// 6) Reachability
	if err = reachable(ctx, fg, layers, first); err != nil {
		return nil, err
	}

	// 7) Search
	paths, err := yen.KShortestPaths(fg.g, startVertex, fg.isGoal, count,
		yen.WithContext(ctx), yen.WithMaxCost(cfg.MaxDifficulty))
	if errors.Is(err, yen.ErrNoPath) {
		return nil, ErrNoArrangements
	}
	if err != nil {
		return nil, fmt.Errorf("arrangement: search: %w", err)
	}
	log.Debug("paths found", "requested", count, "found", len(paths))

	// 8) Assembly
	out := make([]Arrangement, len(paths))
	for i, p := range paths {
		out[i] = assemble(fg, p, breaks)
	}

	return out, nil
}

// reachable walks the graph breadth-first from start. A node at layer L sits
// at depth L+1, so a walk that stops short of the last layer means some beat
// has no fingering on distinct strings. first shifts the reported beat back
// to its 1-based position in the caller's input.
func reachable(ctx context.Context, fg *fingeringGraph, layers []layer, first int) error {
	res, err := bfs.BFS(fg.g, startVertex, bfs.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("arrangement: reachability: %w", err)
	}
	if d := res.Deepest(); d < len(layers) {
		return fmt.Errorf("%w: beat %d cannot be fingered on distinct strings",
			ErrNoArrangements, first+layers[d].beat+1)
	}

	return nil
}

// firstPlayable returns the index of the first playable beat, or -1.
func firstPlayable(beats []Beat) int {
	for i, b := range beats {
		if b.Kind == KindPlayable {
			return i
		}
	}

	return -1
}
