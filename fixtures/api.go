// SPDX-License-Identifier: MIT
// Package: SeaOfNode/fixtures
//
// api.go - thin public entry-point for the fixtures package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, cons...). Creates g and an initial
//     Scope, runs cons in order.
//   - All public shapes are declared here, implemented in impl_*.go (single
//     place to read docs).
//   - Determinism: same Constructor sequence and gopts ⇒ identical graphs,
//     since nothing in this package reads wall-clock time or randomness.
//   - Safety: never panic; a nil or erroring Constructor aborts BuildGraph
//     with a wrapped sentinel error.
//
// AI-Hints (practical):
//   - Compose multiple constructors in BuildGraph to assemble a multi-step
//     fixture (e.g. a declaration chain followed by an if/else).
//   - Use the returned Scope to Lookup the binding a test wants to assert
//     on, rather than threading extra return values through the Constructor.
package fixtures

import (
	"fmt"

	"github.com/PHLens/SeaOfNode/core"
	"github.com/PHLens/SeaOfNode/scope"
)

// Constructor mutates a freshly-created graph and scope, wiring whatever
// control/data shape it represents. A Constructor must leave the scope's
// control binding pointing at the live edge of the graph it built, so later
// Constructors (or the caller, for a Return) can continue from it.
type Constructor func(g *core.Graph, s *scope.Scope) error

// BuildGraph creates a new core.Graph with gopts, an initial Scope bound to
// Start's control output, and applies each Constructor in order. It returns
// the graph and the final scope for the caller to inspect or finish (e.g.
// wrapping the live control in a Return).
func BuildGraph(gopts []core.GraphOption, cons ...Constructor) (*core.Graph, *scope.Scope, error) {
	g := core.NewGraph(gopts...)
	startCtrl := core.NewProj(g, g.Start(), 0, "ctrl")
	s := scope.New(g, startCtrl)

	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, s); err != nil {
			return nil, nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, s, nil
}
