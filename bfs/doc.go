// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// Edge weights are ignored: depth counts edges. For a layered graph the depth
// of a vertex is its layer number plus one, which is how the arrangement
// engine finds the first beat no fingering can reach.
//
// Options:
//
//   - WithContext(ctx):         cancellation, checked once per dequeued vertex.
//   - WithMaxDepth(d):          do not enqueue vertices deeper than d (0 = no limit).
//   - WithFilterNeighbor(fn):   skip curr→neighbor when fn returns false.
//   - WithOnVisit(fn):          called per visited vertex; an error aborts the walk.
//
// Determinism: neighbors are enqueued in core.Graph edge creation order, so
// Order is reproducible for identical graphs.
//
// Complexity: O(V + E) time, O(V) space.
//
// Errors:
//
//   - ErrGraphNil, ErrStartVertexNotFound for invalid input.
//   - ErrOptionViolation for a negative MaxDepth.
//   - ErrNeighbors when the graph fails a neighbor lookup.
//   - ctx.Err() on cancellation, or the OnVisit error wrapped with the vertex ID.
package bfs
