package core

import "github.com/PHLens/SeaOfNode/lattice"

// Compare and logical nodes share the arithmetic nodes' input layout: input
// 0 reserved, operand(s) at 1 (and 2 for the binary comparisons).

// NewEQ, NewLT, NewLE create a binary comparison node and peephole it. Each
// yields the integer 0 or 1.
func NewEQ(g *Graph, lhs, rhs *Node) *Node { return g.Peephole(newBin(g, KindEQ, lhs, rhs)) }
func NewLT(g *Graph, lhs, rhs *Node) *Node { return g.Peephole(newBin(g, KindLT, lhs, rhs)) }
func NewLE(g *Graph, lhs, rhs *Node) *Node { return g.Peephole(newBin(g, KindLE, lhs, rhs)) }

// NewNot creates a logical negation node and peepholes it.
func NewNot(g *Graph, x *Node) *Node { return g.Peephole(newUnary(g, KindNot, x)) }

// computeCompare dispatches EQ/LT/LE/Not. The binary comparisons fold to a
// constant 0/1 only when both operands are constant integers; otherwise the
// result is the meet of the two operand types (matching the arithmetic
// nodes' compute rule). Not folds the single operand, or passes its type
// through unchanged when not constant.
func (n *Node) computeCompare() lattice.Value {
	if n.k == KindNot {
		return n.computeUnary(func(v int64) int64 {
			if v == 0 {
				return 1
			}

			return 0
		})
	}

	lt, lok := n.lhs().Type()
	rt, rok := n.rhs().Type()
	if !lok || !rok || lt.Kind() != lattice.KindInteger || rt.Kind() != lattice.KindInteger {
		return lattice.Bottom
	}
	a, aok := lt.AsInt()
	b, bok := rt.AsInt()
	if aok && bok {
		return lattice.NewIntConst(boolInt(n.evalCompare(a, b)))
	}

	return lattice.Meet(lt, rt)
}

func (n *Node) evalCompare(a, b int64) bool {
	switch n.k {
	case KindEQ:
		return a == b
	case KindLT:
		return a < b
	case KindLE:
		return a <= b
	default:
		return false
	}
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}

	return 0
}

// idealizeCompare implements the one compare-tier idealization spec.md §4.4
// names: op(x, x) collapses to the operator's reflexive value (EQ and LE are
// reflexively true, LT is reflexively false). Not has no idealization — its
// constant fold is handled by compute() and the generic fold-to-Constant
// step in Graph.Peephole.
func (n *Node) idealizeCompare(g *Graph) *Node {
	if n.k == KindNot {
		return nil
	}
	if n.lhs() == n.rhs() {
		return NewConstant(g, lattice.NewIntConst(boolInt(n.evalCompare(3, 3))))
	}

	return nil
}
