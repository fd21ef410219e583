// Package yen implements Yen's algorithm for the k loopless shortest paths
// between a source vertex and a goal in a weighted core.Graph.
//
// Algorithm:
//
//  1. A[0] is the plain shortest path (dijkstra.ShortestPath).
//  2. For every vertex i of the last accepted path (the spur vertex) the prefix
//     up to i is the root path. Edges that leave the spur vertex along any
//     accepted path sharing that root are excluded, as are the root vertices
//     before the spur vertex, and a spur path to the goal is searched.
//     root + spur becomes a candidate.
//  3. The cheapest unseen candidate is accepted as the next path.
//  4. Repeat until k paths are accepted or no candidates remain.
//
// Ordering:
//
//	Paths are returned by non-decreasing cost. Ties are broken by hop count and
//	then by the lexical order of the vertex ID sequence, so results are fully
//	deterministic for a given graph.
//
// Complexity:
//
//	O(k · L · (V + E) log V), where L is the length of the longest accepted path.
//
// Errors:
//
//   - ErrBadK:    k < 1.
//   - ErrNilGoal: goal predicate is nil.
//   - ErrNoPath:  the goal is unreachable (or over the cost cap).
//   - ctx.Err() when the WithContext context is cancelled.
//   - dijkstra validation errors (nil graph, unweighted graph, unknown source) are
//     wrapped and returned unchanged for errors.Is.
package yen
