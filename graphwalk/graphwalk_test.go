package graphwalk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PHLens/SeaOfNode/fixtures"
	"github.com/PHLens/SeaOfNode/graphwalk"
)

func TestReachable_IncludesStartStopAndResult(t *testing.T) {
	g, s, err := fixtures.BuildGraph(nil, fixtures.Chain(2))
	require.NoError(t, err)

	nodes := graphwalk.Reachable(g)

	var sawStart, sawStop, sawResult bool
	result := s.Lookup("result")
	for _, n := range nodes {
		switch n {
		case g.Start():
			sawStart = true
		case g.Stop():
			sawStop = true
		case result:
			sawResult = true
		}
	}
	require.True(t, sawStart)
	require.True(t, sawStop)
	require.True(t, sawResult)
}

func TestReachable_ExcludesDeadNodes(t *testing.T) {
	g, _, err := fixtures.BuildGraph(nil, fixtures.Chain(1))
	require.NoError(t, err)

	for _, n := range graphwalk.Reachable(g) {
		require.False(t, n.IsDead())
	}
}

func TestLayers_StartIsRankZero(t *testing.T) {
	g, _, err := fixtures.BuildGraph(nil, fixtures.Chain(3))
	require.NoError(t, err)

	layers := graphwalk.Layers(g)
	require.NotEmpty(t, layers)
	require.Contains(t, layers[0], g.Start())
}

func TestLayers_EveryReachableNodeIsBucketedExactlyOnce(t *testing.T) {
	g, _, err := fixtures.BuildGraph(nil, fixtures.DiamondIf(1, 2))
	require.NoError(t, err)

	reachable := graphwalk.Reachable(g)
	layers := graphwalk.Layers(g)

	count := 0
	for _, layer := range layers {
		count += len(layer)
	}
	require.Equal(t, len(reachable), count)
}
