package arrangement

import (
	"fmt"

	"github.com/katalvlaran/fretpath/core"
)

// node is a vertex of the fingering graph: a rest or one combo of a layer.
type node struct {
	id    string
	layer int
	rest  bool
	combo *FingeringCombo
}

// fingeringGraph is the layered DAG searched for arrangements.
type fingeringGraph struct {
	g         *core.Graph
	nodes     map[string]*node
	lastLayer int
}

// isGoal reports whether id belongs to the last layer.
func (fg *fingeringGraph) isGoal(id string) bool {
	n, ok := fg.nodes[id]

	return ok && n.layer == fg.lastLayer
}

// buildGraph materializes one vertex per rest or combo and an edge from every
// node of layer L to every node of layer L+1, weighted by transitionCost.
// The start vertex links to every node of layer 0.
func buildGraph(layers []layer) (*fingeringGraph, error) {
	fg := &fingeringGraph{
		g:         core.NewGraph(core.WithDirected(true), core.WithWeighted()),
		nodes:     make(map[string]*node),
		lastLayer: len(layers) - 1,
	}
	if err := fg.g.AddVertex(startVertex); err != nil {
		return nil, fmt.Errorf("arrangement: add start: %w", err)
	}

	// 1) Vertices, numbered in enumeration order.
	byLayer := make([][]*node, len(layers))
	seq := 0
	for li, l := range layers {
		if l.rest {
			byLayer[li] = []*node{fg.newNode(&seq, li, nil)}
			continue
		}
		for ci := range l.combos {
			byLayer[li] = append(byLayer[li], fg.newNode(&seq, li, &l.combos[ci]))
		}
	}
	for _, ns := range byLayer {
		for _, n := range ns {
			if err := fg.g.AddVertex(n.id); err != nil {
				return nil, fmt.Errorf("arrangement: add vertex %s: %w", n.id, err)
			}
		}
	}

	// 2) Edges between consecutive layers.
	prev := []*node{nil}
	for _, ns := range byLayer {
		for _, u := range prev {
			from := startVertex
			if u != nil {
				from = u.id
			}
			for _, v := range ns {
				if _, err := fg.g.AddEdge(from, v.id, transitionCost(u, v)); err != nil {
					return nil, fmt.Errorf("arrangement: add edge %s→%s: %w", from, v.id, err)
				}
			}
		}
		prev = ns
	}

	return fg, nil
}

func (fg *fingeringGraph) newNode(seq *int, li int, c *FingeringCombo) *node {
	n := &node{id: fmt.Sprintf(vertexIDFormat, *seq), layer: li, rest: c == nil, combo: c}
	fg.nodes[n.id] = n
	*seq++

	return n
}
