package core

import "github.com/PHLens/SeaOfNode/lattice"

// NewPhi creates a Phi merging data from the given region's N predecessors.
// Input 0 is the Region; inputs 1..N are the per-predecessor values, in the
// same order as the Region's own predecessor list. label carries the
// variable name the Phi was inserted for, used only in diagnostics.
func NewPhi(g *Graph, label string, region *Node, data ...*Node) *Node {
	n := newNode(g, KindPhi, append([]*Node{region}, data...)...)
	n.label = label

	return g.Peephole(n)
}

// Region returns the Phi's control input.
func (n *Node) Region() *Node { return n.Input(0) }

// computePhi always returns Bottom: a Phi's runtime value depends on which
// control edge was taken, which compute()'s pure input-type analysis cannot
// see. Phi's only avenue to something better than Bottom is idealize().
func (n *Node) computePhi() lattice.Value { return lattice.Bottom }

// idealizePhi implements the two Phi simplifications grounded in the
// original source: a Phi whose data inputs are all the same node is just
// that node (it was never really a join), and a Phi-of-same-binary-op can be
// rewritten as a binary-op-of-Phis, pushing the join past the operator so
// later peepholes on the hoisted op have a chance to fire.
func (n *Node) idealizePhi(g *Graph) *Node {
	if n.sameDataInputs() {
		return n.Input(1)
	}

	op := n.Input(1)
	if op == nil || op.Arity() != 3 || op.Input(0) != nil || op.IsCFG() {
		return nil
	}
	if !n.sameDataOpKind(op.Kind()) {
		return nil
	}

	lhsIns := make([]*Node, n.Arity())
	rhsIns := make([]*Node, n.Arity())
	lhsIns[0] = n.Input(0)
	rhsIns[0] = n.Input(0)
	for i := 1; i < n.Arity(); i++ {
		di := n.Input(i)
		lhsIns[i] = di.Input(1)
		rhsIns[i] = di.Input(2)
	}
	phiLHS := NewPhi(g, n.label, lhsIns[0], lhsIns[1:]...)
	phiRHS := NewPhi(g, n.label, rhsIns[0], rhsIns[1:]...)

	return newBin(g, op.Kind(), phiLHS, phiRHS)
}

// sameDataInputs reports whether every data input (1..N) is the identical
// node.
func (n *Node) sameDataInputs() bool {
	first := n.Input(1)
	for i := 2; i < n.Arity(); i++ {
		if n.Input(i) != first {
			return false
		}
	}

	return true
}

// sameDataOpKind reports whether every data input shares kind k.
func (n *Node) sameDataOpKind(k Kind) bool {
	for i := 2; i < n.Arity(); i++ {
		di := n.Input(i)
		if di == nil || di.Kind() != k {
			return false
		}
	}

	return true
}
