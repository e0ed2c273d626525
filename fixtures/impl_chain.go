// SPDX-License-Identifier: MIT
// Package: SeaOfNode/fixtures
//
// impl_chain.go - implementation of the Chain(n) constructor.
//
// Contract:
//   - n >= 0; builds n chained Add-by-one steps over the implicit arg.
//   - Binds the final value as "result" in the Constructor's Scope.
//   - No control-flow branches: exercises the Add idealization chain alone.
//
// Determinism:
//   - Deterministic node shape for a given n; every constant is built the
//     same way in the same order.
package fixtures

import (
	"github.com/PHLens/SeaOfNode/core"
	"github.com/PHLens/SeaOfNode/lattice"
	"github.com/PHLens/SeaOfNode/scope"
)

// Chain binds arg as "a" in s, then builds n successive Add-by-one nodes over
// it (arg+1, then that plus 1, and so on), defining only the last value as
// "result" in s. It takes no control-flow branches, so it peepholes down to
// a single (arg+n) expression (or arg itself when n is 0) with no
// intermediate Add surviving — useful as the simplest possible fixture
// for exercising the Add idealization chain under repeated application.
func Chain(n int) Constructor {
	return func(g *core.Graph, s *scope.Scope) error {
		cur := Arg(g, s, "a")
		for i := 0; i < n; i++ {
			cur = core.NewAdd(g, cur, core.NewConstant(g, lattice.NewIntConst(1)))
		}

		return s.Define("result", cur)
	}
}
