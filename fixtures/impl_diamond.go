// SPDX-License-Identifier: MIT
// Package: SeaOfNode/fixtures
//
// impl_diamond.go - implementation of the DiamondIf constructor.
//
// Contract:
//   - Builds if (arg==1) r = thenConst; else r = elseConst;
//   - Binds "r" to the merged value in the Constructor's Scope: a Phi over
//     the two arms' constants. Each arm builds its own Constant node, so
//     equal values still merge into a Phi (e.g. Phi(Region,2,2)).
//   - Exercises Scope.Dup/Merge and the If/Proj/Region/Phi construction
//     together.
package fixtures

import (
	"github.com/PHLens/SeaOfNode/core"
	"github.com/PHLens/SeaOfNode/lattice"
	"github.com/PHLens/SeaOfNode/scope"
)

// DiamondIf builds `if (arg==1) r = thenConst; else r = elseConst;`, leaving
// "r" bound to the merged Phi (or the common value, if the peephole engine
// collapsed the two arms to one). This is the minimal fixture exercising
// Scope.Dup/Merge and the If/Proj/Region/Phi construction together — the
// shape spec.md §8 scenario 4 names directly.
func DiamondIf(thenConst, elseConst int64) Constructor {
	return func(g *core.Graph, s *scope.Scope) error {
		arg := Arg(g, s, "arg")
		pred := core.NewEQ(g, arg, core.NewConstant(g, lattice.NewIntConst(1)))

		ifNode := core.NewIf(g, s.Ctrl(), pred)
		ifTrue := core.NewProj(g, ifNode, 0, "True")
		ifFalse := core.NewProj(g, ifNode, 1, "False")

		elseScope := s.Dup(g)

		s.SetCtrl(ifTrue)
		if err := s.Define("r", core.NewConstant(g, lattice.NewIntConst(thenConst))); err != nil {
			return err
		}

		elseScope.SetCtrl(ifFalse)
		if err := elseScope.Define("r", core.NewConstant(g, lattice.NewIntConst(elseConst))); err != nil {
			return err
		}

		s.Merge(g, elseScope)

		return nil
	}
}
