package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/fretpath/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in the weighted graph g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise); prev[v] == u means
//     the shortest path to v goes through u, "" for the source and unreachable v.
//   - err:  ErrEmptySource, ErrNilGraph, ErrUnweightedGraph or ErrVertexNotFound.
//
// Exclusions and MaxDistance apply; a Goal, if set, is ignored.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return nil, nil, err
	}
	r.options.Goal = nil
	if err = r.process(); err != nil {
		return nil, nil, err
	}
	if !r.options.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the cheapest path from Source to the nearest vertex
// accepted by the goal (WithTarget or WithGoal), honoring exclusions and the
// distance cap. The source itself may be a goal, giving a zero-length path.
//
// Errors: the Dijkstra validation errors, ErrNoGoal, and ErrNoPath when no goal
// vertex is reachable.
//
// Complexity: O((V + E) log V) worst case; the search stops at the first goal.
func ShortestPath(g *core.Graph, opts ...Option) (Path, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return Path{}, err
	}
	if r.options.Goal == nil {
		return Path{}, ErrNoGoal
	}
	if err = r.process(); err != nil {
		return Path{}, err
	}
	if r.reached == "" {
		return Path{}, ErrNoPath
	}

	return r.path(r.reached), nil
}

// newRunner validates inputs and prepares the initial state.
//
// Validation order:
//  1. Source non-empty (ErrEmptySource).
//  2. g non-nil (ErrNilGraph).
//  3. g weighted (ErrUnweightedGraph).
//  4. Source present (ErrVertexNotFound).
func newRunner(g *core.Graph, opts []Option) (*runner, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, ErrVertexNotFound
	}

	V := g.VertexCount()
	r := &runner{
		g:        g,
		options:  cfg,
		dist:     make(map[string]int64, V),
		prev:     make(map[string]string, V),
		prevEdge: make(map[string]string, V),
		visited:  make(map[string]bool, V),
		pq:       make(nodePQ, 0, V),
	}
	r.init()

	return r, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        *core.Graph       // read-only input graph
	options  Options           // source, cap, goal, exclusions
	dist     map[string]int64  // vertex ID → best distance from Source
	prev     map[string]string // vertex ID → predecessor vertex
	prevEdge map[string]string // vertex ID → edge used to reach it
	visited  map[string]bool   // finalized vertices
	pq       nodePQ            // lazy decrease-key min-heap
	reached  string            // first settled goal vertex, if any
}

// init sets dist[v] = +∞ for all vertices and pushes the source at distance 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.MaxInt64
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly settles the closest unsettled vertex and relaxes its
// outgoing edges, until the heap drains or a goal vertex is settled.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// 2) Skip stale entries.
		if r.visited[u] {
			continue
		}

		// 3) Finalize u.
		r.visited[u] = true

		// 4) Stop at the first goal.
		if r.options.Goal != nil && r.options.Goal(u) {
			r.reached = u

			return nil
		}

		// 5) Relax u's outgoing edges.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor reachable from u.
// Excluded edges and vertices are skipped, and so is any relaxation that would
// exceed MaxDistance. Only strict improvements are recorded, so the first
// predecessor found with the final distance is kept.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		if _, skip := r.options.ExcludedEdges[e.ID]; skip {
			continue
		}
		v := e.Other(u)
		if _, skip := r.options.ExcludedVertices[v]; skip {
			continue
		}
		if r.visited[v] {
			continue
		}

		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		r.prevEdge[v] = e.ID
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// path walks the predecessor chain back from goal and returns it source-first.
func (r *runner) path(goal string) Path {
	var vertices, edges []string
	for v := goal; v != r.options.Source; v = r.prev[v] {
		vertices = append(vertices, v)
		edges = append(edges, r.prevEdge[v])
	}
	vertices = append(vertices, r.options.Source)

	reverse(vertices)
	reverse(edges)

	return Path{Vertices: vertices, Edges: edges, Cost: r.dist[goal]}
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, breaking ties by vertex ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new *nodeItem onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the underlying slice.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
