package core

// Neighbors returns the edges leaving id, in creation order.
//
// Neighborhood policy:
//   - Directed edges: only edges with e.From == id.
//   - Undirected edges: every incident edge; use Other to find the far end.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d). Concurrency: muVert then muEdgeAdj read locks.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	ids := g.adjacency[id]
	out := make([]*Edge, 0, len(ids))
	for _, eid := range ids {
		out = append(out, g.edges[eid])
	}

	return out, nil
}

// NeighborIDs returns the far endpoints of Neighbors(id), without duplicates,
// in first-seen order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		to := other(e, id)
		if _, ok := seen[to]; ok {
			continue
		}
		seen[to] = struct{}{}
		out = append(out, to)
	}

	return out, nil
}

// Other returns the endpoint of e opposite to id. For a directed edge leaving
// id this is e.To.
func (e *Edge) Other(id string) string { return other(e, id) }
