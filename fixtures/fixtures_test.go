package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PHLens/SeaOfNode/core"
	"github.com/PHLens/SeaOfNode/fixtures"
)

func TestChain_CollapsesToArgPlusConstant(t *testing.T) {
	g, s, err := fixtures.BuildGraph(nil, fixtures.Chain(3))
	require.NoError(t, err)

	result := s.Lookup("result")
	require.Equal(t, "(arg+3)", g.Print(result))
}

func TestDiamondIf_MergesIntoPhi(t *testing.T) {
	g, s, err := fixtures.BuildGraph(nil, fixtures.DiamondIf(2, 3))
	require.NoError(t, err)

	r := s.Lookup("r")
	require.Equal(t, core.KindPhi, r.Kind())
	require.Contains(t, g.Print(r), "Phi(")
}

func TestEarlyReturn_BothArmsReachStop(t *testing.T) {
	g, _, err := fixtures.BuildGraph(nil, fixtures.EarlyReturn(3, 4))
	require.NoError(t, err)

	require.Equal(t, "Stop[ return 3; return 4; ]", g.Print(g.Stop()))
}

func TestBuildGraph_NilConstructorErrors(t *testing.T) {
	_, _, err := fixtures.BuildGraph(nil, nil)
	require.ErrorIs(t, err, fixtures.ErrConstructFailed)
}
