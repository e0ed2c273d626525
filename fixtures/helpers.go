package fixtures

import (
	"github.com/PHLens/SeaOfNode/core"
	"github.com/PHLens/SeaOfNode/scope"
)

// Arg projects the implicit `arg` parameter out of g's Start node and binds
// it under name in s's innermost frame, returning the bound node.
func Arg(g *core.Graph, s *scope.Scope, name string) *core.Node {
	n := core.NewProj(g, g.Start(), 1, "arg")
	_ = s.Define(name, n)

	return n
}

// FinishReturn appends a Return over s's current control and expr to g's
// Stop, the step every fixture ends with once its shape is fully built.
func FinishReturn(g *core.Graph, s *scope.Scope, expr *core.Node) {
	ret := core.NewReturn(g, s.Ctrl(), expr)
	g.AddReturn(ret)
}
