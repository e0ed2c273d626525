package core

import "github.com/PHLens/SeaOfNode/lattice"

// NewConstant creates a Constant node carrying t. Per invariant I5 its sole
// input is the graph's unique Start node. Constant's compute() is trivial
// (it always returns the value it was built with) so it never folds to a
// *different* Constant; the peephole driver's identity check in
// Graph.Peephole step 3 special-cases `n.k != KindConstant` for exactly this
// reason.
func NewConstant(g *Graph, t lattice.Value) *Node {
	n := newNode(g, KindConstant, g.start)
	n.constVal = t

	return g.Peephole(n)
}
