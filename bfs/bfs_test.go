package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adg/bfs"
	"github.com/katalvlaran/adg/diagram"
)

// chain builds the acyclic triangle 0→1, 1→2, 0→2.
func chain(t *testing.T) *diagram.Diagram {
	t.Helper()
	d, err := diagram.New(
		[]diagram.VertexSpec{{Rank: 1}, {Rank: 1}, {Rank: 1}},
		[]diagram.LineSpec{{From: 0, To: 1}, {From: 1, To: 2}, {From: 0, To: 2}},
	)
	require.NoError(t, err)

	return d
}

// twoBubbles builds two disconnected one-body bubbles.
func twoBubbles(t *testing.T) *diagram.Diagram {
	t.Helper()
	d, err := diagram.New(
		[]diagram.VertexSpec{{Rank: 1}, {Rank: 1}, {Rank: 1}, {Rank: 1}},
		[]diagram.LineSpec{{From: 0, To: 2}, {From: 2, To: 0}, {From: 1, To: 3}, {From: 3, To: 1}},
	)
	require.NoError(t, err)

	return d
}

func TestBFS_Undirected(t *testing.T) {
	d := chain(t)
	res, err := bfs.BFS(d, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, res.Order)
	assert.Equal(t, 1, res.Depth[0])
	assert.Equal(t, 2, res.Parent[0])
}

func TestBFS_Directed(t *testing.T) {
	d := chain(t)
	res, err := bfs.BFS(d, 1, bfs.WithDirected())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, res.Order)
	assert.False(t, res.Visited(0))

	assert.Equal(t, []int{0, 1, 2}, bfs.Reachable(d, 0))
	assert.Equal(t, []int{2}, bfs.Reachable(d, 2))
}

func TestBFS_Errors(t *testing.T) {
	d := chain(t)
	_, err := bfs.BFS(d, 5)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	stop := errors.New("stop")
	_, err = bfs.BFS(d, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestConnectivity(t *testing.T) {
	assert.True(t, bfs.Connected(chain(t)))

	d := twoBubbles(t)
	assert.False(t, bfs.Connected(d))
	assert.Equal(t, [][]int{{0, 2}, {1, 3}}, bfs.Components(d))
}
