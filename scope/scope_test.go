package scope_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PHLens/SeaOfNode/core"
	"github.com/PHLens/SeaOfNode/lattice"
	"github.com/PHLens/SeaOfNode/scope"
)

func con(g *core.Graph, v int64) *core.Node {
	return core.NewConstant(g, lattice.NewIntConst(v))
}

func TestDefineLookupUpdate(t *testing.T) {
	g := core.NewGraph()
	s := scope.New(g, g.Start())

	a := con(g, 1)
	require.NoError(t, s.Define("a", a))
	require.Equal(t, a, s.Lookup("a"))

	b := con(g, 2)
	prev := s.Update("a", b)
	require.Equal(t, a, prev)
	require.Equal(t, b, s.Lookup("a"))
}

func TestDefine_RedefinitionInSameFrameErrors(t *testing.T) {
	g := core.NewGraph()
	s := scope.New(g, g.Start())

	require.NoError(t, s.Define("a", con(g, 1)))
	err := s.Define("a", con(g, 2))
	require.Error(t, err)
	require.True(t, errors.Is(err, scope.ErrRedefined))
}

func TestPushPop_ShadowsAndRestores(t *testing.T) {
	g := core.NewGraph()
	s := scope.New(g, g.Start())

	outer := con(g, 1)
	require.NoError(t, s.Define("x", outer))

	s.Push()
	inner := con(g, 2)
	require.NoError(t, s.Define("x", inner))
	require.Equal(t, inner, s.Lookup("x"))
	s.Pop()

	require.Equal(t, outer, s.Lookup("x"))
}

func TestLookup_UnboundNameReturnsNil(t *testing.T) {
	g := core.NewGraph()
	s := scope.New(g, g.Start())
	require.Nil(t, s.Lookup("nope"))
}

func TestDupAndMerge_DivergentBindingBecomesPhi(t *testing.T) {
	g := core.NewGraph()
	s := scope.New(g, g.Start())
	require.NoError(t, s.Define("r", con(g, 1)))

	// Dup shares the frame layout, so diverging "r" across the two arms
	// happens via Update, never a second Define (which would error as a
	// same-frame redefinition).
	other := s.Dup(g)
	other.Update("r", con(g, 2))

	region := s.Merge(g, other)
	require.Equal(t, core.KindRegion, region.Kind())
	require.Equal(t, core.KindPhi, s.Lookup("r").Kind())
}
