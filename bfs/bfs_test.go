package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fretpath/bfs"
	"github.com/katalvlaran/fretpath/core"
)

// layered builds s → {a1, a2} → b1 plus an unreachable c1.
func layered(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range [][2]string{{"s", "a1"}, {"s", "a2"}, {"a1", "b1"}, {"a2", "b1"}} {
		_, err := g.AddEdge(e[0], e[1], 7)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("c1"))

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(core.NewGraph(), "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(layered(t), "s", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DepthsIgnoreWeights(t *testing.T) {
	res, err := bfs.BFS(layered(t), "s")
	require.NoError(t, err)
	require.Equal(t, []string{"s", "a1", "a2", "b1"}, res.Order)
	require.Equal(t, map[string]int{"s": 0, "a1": 1, "a2": 1, "b1": 2}, res.Depth)
	require.Equal(t, 2, res.Deepest())

	path, err := res.PathTo("b1")
	require.NoError(t, err)
	require.Equal(t, []string{"s", "a1", "b1"}, path)

	_, err = res.PathTo("c1")
	require.Error(t, err)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	res, err := bfs.BFS(layered(t), "s", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, 1, res.Deepest())

	res, err = bfs.BFS(layered(t), "s", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "a1" }))
	require.NoError(t, err)
	require.Equal(t, []string{"s", "a2", "b1"}, res.Order)
}

func TestBFS_OnVisitAndCancel(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(layered(t), "s", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "a2" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(layered(t), "s", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
