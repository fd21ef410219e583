package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNoGoal indicates ShortestPath was called without a target or goal predicate.
	ErrNoGoal = errors.New("dijkstra: no target or goal predicate given")

	// ErrNoPath indicates no goal vertex is reachable from the source.
	ErrNoPath = errors.New("dijkstra: no path to goal")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath       – if true, Dijkstra returns the predecessor map; otherwise prev is nil.
// MaxDistance      – vertices whose distance would exceed this are never reached.
// Goal             – ShortestPath stops at the first settled vertex accepted by Goal.
// ExcludedVertices – vertices that may not be entered (the source itself is exempt).
// ExcludedEdges    – edge IDs that may not be traversed.
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      int64
	Goal             func(id string) bool
	ExcludedVertices map[string]struct{}
	ExcludedEdges    map[string]struct{}
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required by both entry points.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor map in Dijkstra's result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps the distance of any reached vertex.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithTarget makes the single vertex id the goal of ShortestPath.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Goal = func(v string) bool { return v == id }
	}
}

// WithGoal makes every vertex accepted by fn a goal of ShortestPath.
func WithGoal(fn func(id string) bool) Option {
	return func(o *Options) {
		o.Goal = fn
	}
}

// WithExcludedVertices forbids entering any of ids. Repeated use accumulates.
func WithExcludedVertices(ids ...string) Option {
	return func(o *Options) {
		if o.ExcludedVertices == nil {
			o.ExcludedVertices = make(map[string]struct{}, len(ids))
		}
		for _, id := range ids {
			o.ExcludedVertices[id] = struct{}{}
		}
	}
}

// WithExcludedEdges forbids traversing any of the edge IDs. Repeated use accumulates.
func WithExcludedEdges(ids ...string) Option {
	return func(o *Options) {
		if o.ExcludedEdges == nil {
			o.ExcludedEdges = make(map[string]struct{}, len(ids))
		}
		for _, id := range ids {
			o.ExcludedEdges[id] = struct{}{}
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given source vertex ID: no predecessor map, no distance cap, no goal and no
// exclusions.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.MaxInt64,
	}
}

// Path is one concrete route through the graph.
//
// Vertices holds every vertex from source to goal inclusive; Edges holds the
// IDs of the traversed edges, so len(Edges) == len(Vertices)-1. Cost is the sum
// of the edge weights.
type Path struct {
	Vertices []string
	Edges    []string
	Cost     int64
}
