// Package dijkstra implements Dijkstra's shortest-path algorithm on the weighted
// core.Graph, plus the restricted single-path query that Yen's k-shortest-paths
// algorithm (package yen) is built on.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source to every
//     reachable vertex in O((V + E) log V) time.
//   - ShortestPath returns one concrete cheapest path from the source to the first
//     vertex accepted by a goal predicate, honoring excluded vertices, excluded
//     edges and a distance cap. It is the "spur path" primitive of Yen.
//
// Options:
//
//   - Source(id):                required starting vertex.
//   - WithReturnPath():          Dijkstra also returns the predecessor map.
//   - WithMaxDistance(d):        vertices farther than d are never settled.
//   - WithTarget(id):            goal is the single vertex id.
//   - WithGoal(fn):              goal is any vertex for which fn returns true.
//   - WithExcludedVertices(ids): vertices that may not be entered.
//   - WithExcludedEdges(ids):    edges that may not be traversed.
//
// Determinism:
//
//   - The heap orders entries by distance, then by vertex ID, and neighbors are
//     relaxed in edge creation order; a vertex keeps the first predecessor that
//     reached it with its final distance. Identical graphs and options always
//     yield identical paths.
//
// Errors (sentinel):
//
//   - ErrEmptySource:      Source was not provided.
//   - ErrNilGraph:         nil *core.Graph.
//   - ErrUnweightedGraph:  the graph was not built with core.WithWeighted().
//   - ErrVertexNotFound:   the source vertex does not exist.
//   - ErrNoGoal:           ShortestPath called without WithTarget or WithGoal.
//   - ErrNoPath:           no goal vertex is reachable under the restrictions.
//   - ErrBadMaxDistance:   (panic) WithMaxDistance given a negative value.
//
// Thread safety:
//
//   - Both entry points only read the graph. Concurrent queries on an unchanging
//     graph are safe; concurrent mutation must be synchronized by the caller.
package dijkstra
