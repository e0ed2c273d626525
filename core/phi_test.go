package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PHLens/SeaOfNode/core"
)

// TestPhi_TrivialCollapse checks a Phi whose data inputs are the same node
// disappears in favor of that node.
func TestPhi_TrivialCollapse(t *testing.T) {
	g := core.NewGraph()
	arg := core.NewProj(g, g.Start(), 1, "arg")
	region := core.NewRegion(g, g.Start(), g.Start())
	phi := core.NewPhi(g, "a", region, arg, arg)

	require.Same(t, arg, phi)
}

// TestPhi_BinaryOpHoist checks Phi(Add(A,B), Add(Q,R)) rewrites to
// Add(Phi(A,Q), Phi(B,R)) when every data input shares the same op kind.
func TestPhi_BinaryOpHoist(t *testing.T) {
	g := core.NewGraph()
	arg := core.NewProj(g, g.Start(), 1, "arg")
	negArg := core.NewMinus(g, arg)
	left := core.NewAdd(g, arg, con(g, 2))
	right := core.NewAdd(g, negArg, con(g, 3))
	region := core.NewRegion(g, g.Start(), g.Start())

	phi := core.NewPhi(g, "a", region, left, right)

	require.Equal(t, core.KindAdd, phi.Kind())
	require.Equal(t, core.KindPhi, phi.Inputs()[1].Kind())
	require.Equal(t, core.KindPhi, phi.Inputs()[2].Kind())
}
