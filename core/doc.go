// Package core provides the thread-safe in-memory graph that backs the
// fingering graph of the arrangement engine.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Monotonic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - Edges() returns edges in creation order.
//   - Neighbors(id) returns outgoing edges in creation order, so algorithms that
//     iterate neighbors (dijkstra, yen) are reproducible for identical inputs.
//
// Core methods:
//
//	AddVertex(id string) error                                      // O(1)
//	HasVertex(id string) bool                                       // O(1)
//	AddEdge(from, to string, weight int64) (edgeID string, err error) // O(1)†
//	GetEdge(edgeID string) (*Edge, error)                           // O(1)
//	HasEdge(from, to string) bool                                   // O(d)
//	Neighbors(id string) ([]*Edge, error)                           // O(d)
//	Vertices() []string                                             // O(V log V)
//	Edges() []*Edge                                                 // O(E)
//
//	† amortized; O(d) when multi-edges are disabled (duplicate check).
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero (or negative) weight rejected by the graph mode.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//
// Concurrency:
//
//	Mutations take write locks; queries take read locks. Lock order is always
//	muVert → muEdgeAdj. Returned *Edge values are shared and must be treated as
//	read-only.
package core
