package core

import "github.com/PHLens/SeaOfNode/lattice"

// computeType dispatches to the per-kind compute rule. Every rule reads only
// the cached types of n's own inputs (never recursing into their compute).
func (n *Node) computeType() lattice.Value {
	switch n.k {
	case KindStart:
		return n.constVal // fixed at construction, see NewGraph
	case KindConstant:
		return n.constVal
	case KindProj:
		return n.computeProj()
	case KindIf:
		return lattice.NewTuple(lattice.Control, lattice.Control)
	case KindRegion:
		return lattice.Control
	case KindPhi:
		return n.computePhi()
	case KindReturn, KindStop:
		return lattice.Bottom
	case KindAdd, KindSub, KindMul, KindDiv, KindMinus:
		return n.computeArith()
	case KindEQ, KindLT, KindLE, KindNot:
		return n.computeCompare()
	case KindScope:
		return lattice.Bottom
	default:
		return lattice.Bottom
	}
}

// compute returns n's type as a pure, monotonic function of its inputs'
// cached types. compute MUST NOT recurse into an input's compute — it reads
// only the input's already-cached type (spec.md §5: "the graph may be
// cyclic via future loops"). Dispatch is a switch on Kind rather than a
// virtual method, per the tagged-variant design note in spec.md §9.
func (n *Node) compute() {
	var t = n.computeType()
	n.typ = &t
}

// idealize asks for a better-shaped replacement for n. It returns nil for
// "no progress", or a node (possibly n itself, possibly new, possibly an
// existing node) that Graph.Peephole will itself peephole before
// substituting. Per-kind idealizations live in arith.go, compare.go, phi.go;
// If/Proj/Region/Return/Stop have none at this tier (spec.md §4.4).
func (n *Node) idealize(g *Graph) *Node {
	switch n.k {
	case KindAdd:
		return n.idealizeAdd(g)
	case KindSub, KindMul, KindDiv, KindMinus:
		return n.idealizeArith(g)
	case KindEQ, KindLT, KindLE, KindNot:
		return n.idealizeCompare(g)
	case KindPhi:
		return n.idealizePhi(g)
	default:
		return nil
	}
}

// Peephole is the driver spec.md §4.3 describes: called on every
// just-constructed node, it yields the node the caller should keep in place
// of the one it was handed. The steps below are numbered to match the spec.
func (g *Graph) Peephole(n *Node) *Node {
	// 1. type := compute()
	n.compute()

	// 2. observation mode: skip folding and idealization entirely.
	if g.noPeephole {
		return n
	}

	// 3. fold to a Constant if the computed type is already a singleton.
	if n.k != KindConstant && n.typ != nil && n.typ.IsConstant() {
		c := NewConstant(g, *n.typ)
		c = g.Peephole(c)

		return g.deadCodeElim(n, c)
	}

	// 4-5. ask idealize() for a better shape; peephole its result before
	// substituting.
	if better := n.idealize(g); better != nil {
		better = g.Peephole(better)

		return g.deadCodeElim(n, better)
	}

	// 6. no progress: keep n as-is.
	return n
}

// deadCodeElim implements spec.md §4.3's dead_code_elim: if the peephole
// driver is about to replace old with a different node new, and old has
// picked up no real uses in the meantime (it was only just constructed), old
// is reclaimed immediately. new is kept alive across old's unwind so a
// shared input doesn't get swept away transitively.
func (g *Graph) deadCodeElim(old, next *Node) *Node {
	if next == old {
		return old
	}
	if old.OutputCount() == 0 {
		next.Keep()
		old.Kill()
		next.Unkeep()
	}

	return next
}
