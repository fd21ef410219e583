package yen

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/fretpath/core"
	"github.com/katalvlaran/fretpath/dijkstra"
)

// Sentinel errors for Yen's algorithm.
var (
	// ErrBadK indicates a requested path count below one.
	ErrBadK = errors.New("yen: k must be at least 1")

	// ErrNilGoal indicates a nil goal predicate.
	ErrNilGoal = errors.New("yen: goal predicate is nil")

	// ErrNoPath indicates the goal cannot be reached from the source.
	ErrNoPath = errors.New("yen: no path from source to goal")

	// ErrBadMaxCost indicates a negative cost cap.
	ErrBadMaxCost = errors.New("yen: MaxCost must be non-negative")
)

// Options configures KShortestPaths.
type Options struct {
	// Ctx is checked before every spur search.
	Ctx context.Context

	// MaxCost drops every path whose total cost exceeds it.
	MaxCost int64
}

// Option is a functional option for KShortestPaths.
type Option func(*Options)

// WithMaxCost caps the total cost of returned paths. Panics on a negative value.
func WithMaxCost(c int64) Option {
	if c < 0 {
		panic(ErrBadMaxCost.Error())
	}

	return func(o *Options) { o.MaxCost = c }
}

// WithContext sets a context for cancellation. A nil ctx keeps the default.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns Options with a background context and no cost cap.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxCost: math.MaxInt64}
}

// KShortestPaths returns up to k distinct loopless paths from source to any
// vertex accepted by goal, cheapest first. Fewer than k paths are returned when
// the graph does not contain that many. Cancellation of Options.Ctx aborts the
// search with ctx.Err().
func KShortestPaths(g *core.Graph, source string, goal func(id string) bool, k int, opts ...Option) ([]dijkstra.Path, error) {
	if k < 1 {
		return nil, ErrBadK
	}
	if goal == nil {
		return nil, ErrNilGoal
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Ctx.Err(); err != nil {
		return nil, err
	}

	// 1) Shortest path seeds the accepted list.
	first, err := dijkstra.ShortestPath(g, dijkstra.Source(source), dijkstra.WithGoal(goal),
		dijkstra.WithMaxDistance(cfg.MaxCost))
	if errors.Is(err, dijkstra.ErrNoPath) {
		return nil, ErrNoPath
	}
	if err != nil {
		return nil, fmt.Errorf("yen: %w", err)
	}

	accepted := []dijkstra.Path{first}
	seen := map[string]struct{}{pathKey(first): {}}
	candidates := &pathPQ{}

	for len(accepted) < k {
		// 2) Spur from every vertex of the last accepted path except its end.
		last := accepted[len(accepted)-1]
		if err = spur(g, goal, cfg, accepted, last, seen, candidates); err != nil {
			return nil, err
		}

		// 3) Accept the cheapest candidate.
		if candidates.Len() == 0 {
			break
		}
		accepted = append(accepted, heap.Pop(candidates).(dijkstra.Path))
	}

	sort.SliceStable(accepted, func(i, j int) bool { return less(accepted[i], accepted[j]) })

	return accepted, nil
}

// spur pushes every new root+spur candidate derived from last onto candidates.
func spur(
	g *core.Graph,
	goal func(string) bool,
	cfg Options,
	accepted []dijkstra.Path,
	last dijkstra.Path,
	seen map[string]struct{},
	candidates *pathPQ,
) error {
	var rootCost int64
	for i := 0; i < len(last.Vertices)-1; i++ {
		if err := cfg.Ctx.Err(); err != nil {
			return err
		}
		spurVertex := last.Vertices[i]
		rootEdges := last.Edges[:i]

		// Edges leaving the spur vertex along accepted paths with the same root.
		var excludedEdges []string
		for _, p := range accepted {
			if len(p.Edges) > i && equal(p.Edges[:i], rootEdges) {
				excludedEdges = append(excludedEdges, p.Edges[i])
			}
		}

		opts := []dijkstra.Option{
			dijkstra.Source(spurVertex),
			dijkstra.WithGoal(goal),
			dijkstra.WithExcludedVertices(last.Vertices[:i]...),
			dijkstra.WithExcludedEdges(excludedEdges...),
			dijkstra.WithMaxDistance(cfg.MaxCost - rootCost),
		}
		sp, err := dijkstra.ShortestPath(g, opts...)
		switch {
		case errors.Is(err, dijkstra.ErrNoPath):
		case err != nil:
			return fmt.Errorf("yen: spur at %q: %w", spurVertex, err)
		default:
			total := join(last, i, rootCost, sp)
			key := pathKey(total)
			if _, dup := seen[key]; !dup {
				seen[key] = struct{}{}
				heap.Push(candidates, total)
			}
		}

		e, err := g.GetEdge(last.Edges[i])
		if err != nil {
			return fmt.Errorf("yen: edge %q: %w", last.Edges[i], err)
		}
		rootCost += e.Weight
	}

	return nil
}

// join concatenates the first i edges of root with the spur path.
func join(root dijkstra.Path, i int, rootCost int64, sp dijkstra.Path) dijkstra.Path {
	vertices := make([]string, 0, i+len(sp.Vertices))
	vertices = append(vertices, root.Vertices[:i]...)
	vertices = append(vertices, sp.Vertices...)

	edges := make([]string, 0, i+len(sp.Edges))
	edges = append(edges, root.Edges[:i]...)
	edges = append(edges, sp.Edges...)

	return dijkstra.Path{Vertices: vertices, Edges: edges, Cost: rootCost + sp.Cost}
}

// pathKey identifies a path by its edge sequence.
func pathKey(p dijkstra.Path) string {
	return strings.Join(p.Edges, ",")
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// less orders paths by cost, hop count, then vertex ID sequence.
func less(a, b dijkstra.Path) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	if len(a.Edges) != len(b.Edges) {
		return len(a.Edges) < len(b.Edges)
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			return a.Vertices[i] < b.Vertices[i]
		}
	}

	return false
}

// pathPQ is a min-heap of candidate paths ordered by less.
type pathPQ []dijkstra.Path

func (pq pathPQ) Len() int            { return len(pq) }
func (pq pathPQ) Less(i, j int) bool  { return less(pq[i], pq[j]) }
func (pq pathPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *pathPQ) Push(x interface{}) { *pq = append(*pq, x.(dijkstra.Path)) }
func (pq *pathPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
