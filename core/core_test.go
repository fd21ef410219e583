package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/fretpath/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph(core.WithDirected(true), core.WithWeighted())
}

func (s *GraphSuite) TestAddVertexIdempotent() {
	s.Require().NoError(s.g.AddVertex("A"))
	s.Require().NoError(s.g.AddVertex("A"))
	s.Require().Equal(1, s.g.VertexCount())
	s.Require().ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestAddEdgeCreatesEndpoints() {
	eid, err := s.g.AddEdge("A", "B", 7)
	s.Require().NoError(err)
	s.Require().Equal("e1", eid)
	s.Require().True(s.g.HasVertex("A"))
	s.Require().True(s.g.HasVertex("B"))
	s.Require().True(s.g.HasEdge("A", "B"))
	s.Require().False(s.g.HasEdge("B", "A"))

	e, err := s.g.GetEdge(eid)
	s.Require().NoError(err)
	s.Require().Equal(int64(7), e.Weight)
	s.Require().True(e.Directed)
}

func (s *GraphSuite) TestAddEdgeRejects() {
	_, err := s.g.AddEdge("A", "A", 1)
	s.Require().ErrorIs(err, core.ErrLoopNotAllowed)

	_, err = s.g.AddEdge("A", "B", -1)
	s.Require().ErrorIs(err, core.ErrBadWeight)

	_, err = s.g.AddEdge("", "B", 1)
	s.Require().ErrorIs(err, core.ErrEmptyVertexID)

	_, err = s.g.AddEdge("A", "B", 1)
	s.Require().NoError(err)
	_, err = s.g.AddEdge("A", "B", 2)
	s.Require().ErrorIs(err, core.ErrMultiEdgeNotAllowed)
}

func (s *GraphSuite) TestNeighborsCreationOrder() {
	// Twelve edges so that lexical ID order ("e10" < "e2") would differ.
	targets := []string{"K", "B", "J", "C", "I", "D", "H", "E", "G", "F", "L", "A"}
	for _, t := range targets {
		_, err := s.g.AddEdge("S", t, 1)
		s.Require().NoError(err)
	}
	ids, err := s.g.NeighborIDs("S")
	s.Require().NoError(err)
	s.Require().Equal(targets, ids)

	edges := s.g.Edges()
	s.Require().Len(edges, len(targets))
	s.Require().Equal("e10", edges[9].ID)
	s.Require().Equal("e11", edges[10].ID)

	_, err = s.g.Neighbors("nope")
	s.Require().ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestVerticesSorted() {
	for _, id := range []string{"n000002", "start", "n000001"} {
		s.Require().NoError(s.g.AddVertex(id))
	}
	s.Require().Equal([]string{"n000001", "n000002", "start"}, s.g.Vertices())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestUnweightedGraph(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 3)
	require.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	// Undirected edges are visible from both ends.
	require.True(t, g.HasEdge("B", "A"))
	ids, err := g.NeighborIDs("B")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, ids)
}

func TestMultiEdgesAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	_, err := g.AddEdge("A", "A", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 2)
	require.NoError(t, err)

	edges, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, edges, 3)
	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, ids)
	require.Equal(t, 3, g.EdgeCount())
}

func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	const workers, perWorker = 8, 50

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, err := g.AddEdge("A", "B", int64(i))
				require.NoError(t, err)
				_ = g.HasEdge("A", "B")
				_ = g.Vertices()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, workers*perWorker, g.EdgeCount())
	edges, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, edges, workers*perWorker)
}
