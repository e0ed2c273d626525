// SPDX-License-Identifier: MIT
// Package: SeaOfNode/fixtures
//
// impl_early_return.go - implementation of the EarlyReturn constructor.
//
// Contract:
//   - Builds if (arg==1) return thenVal; else return elseVal;
//   - Both arms terminate: Stop accumulates both Returns directly and there
//     is no merged Scope, unlike DiamondIf.
//   - Leaves the Constructor's Scope with a nil control binding, signaling
//     the caller that this path has nothing left to fall through to.
package fixtures

import (
	"github.com/PHLens/SeaOfNode/core"
	"github.com/PHLens/SeaOfNode/lattice"
	"github.com/PHLens/SeaOfNode/scope"
)

// EarlyReturn builds `if (arg==1) return thenVal; else return elseVal;`: both
// arms terminate, so there is no merge — the Constructor leaves the scope
// with a nil control, since there is nothing left to fall through to, and
// Stop accumulates both
// Returns directly, the shape spec.md §8 scenario 5 names.
func EarlyReturn(thenVal, elseVal int64) Constructor {
	return func(g *core.Graph, s *scope.Scope) error {
		arg := Arg(g, s, "arg")
		pred := core.NewEQ(g, arg, core.NewConstant(g, lattice.NewIntConst(1)))

		ifNode := core.NewIf(g, s.Ctrl(), pred)
		ifTrue := core.NewProj(g, ifNode, 0, "True")
		ifFalse := core.NewProj(g, ifNode, 1, "False")

		g.AddReturn(core.NewReturn(g, ifTrue, core.NewConstant(g, lattice.NewIntConst(thenVal))))
		g.AddReturn(core.NewReturn(g, ifFalse, core.NewConstant(g, lattice.NewIntConst(elseVal))))

		s.SetCtrl(nil)

		return nil
	}
}
