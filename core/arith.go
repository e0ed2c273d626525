package core

import "github.com/PHLens/SeaOfNode/lattice"

// Arithmetic nodes reserve input 0 for a future control input (spec.md §3's
// node-kind table); the operands live at inputs 1 and 2 (or just 1, for the
// unary Minus).

// NewAdd, NewSub, NewMul, NewDiv create a binary arithmetic node over lhs,
// rhs and immediately peephole it.
func NewAdd(g *Graph, lhs, rhs *Node) *Node { return g.Peephole(newBin(g, KindAdd, lhs, rhs)) }
func NewSub(g *Graph, lhs, rhs *Node) *Node { return g.Peephole(newBin(g, KindSub, lhs, rhs)) }
func NewMul(g *Graph, lhs, rhs *Node) *Node { return g.Peephole(newBin(g, KindMul, lhs, rhs)) }
func NewDiv(g *Graph, lhs, rhs *Node) *Node { return g.Peephole(newBin(g, KindDiv, lhs, rhs)) }

// NewMinus creates a unary negation node over x and peepholes it.
func NewMinus(g *Graph, x *Node) *Node { return g.Peephole(newUnary(g, KindMinus, x)) }

func newBin(g *Graph, k Kind, lhs, rhs *Node) *Node { return newNode(g, k, nil, lhs, rhs) }
func newUnary(g *Graph, k Kind, x *Node) *Node      { return newNode(g, k, nil, x) }

// lhs/rhs/operand read the operand slots reserved at inputs 1/2.
func (n *Node) lhs() *Node     { return n.Input(1) }
func (n *Node) rhs() *Node     { return n.Input(2) }
func (n *Node) operand() *Node { return n.Input(1) }

// computeArith dispatches the per-kind arithmetic compute rule. When both
// operands are integer constants the result folds to a constant; otherwise
// the result is the meet of the two operand types, so information about
// e.g. IntTop still narrows even when neither side is fully known yet.
func (n *Node) computeArith() lattice.Value {
	switch n.k {
	case KindMinus:
		return n.computeUnary(func(v int64) int64 { return -v })
	default:
		return n.computeBinary()
	}
}

func (n *Node) computeBinary() lattice.Value {
	lt, lok := n.lhs().Type()
	rt, rok := n.rhs().Type()
	if !lok || !rok || lt.Kind() != lattice.KindInteger || rt.Kind() != lattice.KindInteger {
		return lattice.Bottom
	}
	a, aok := lt.AsInt()
	b, bok := rt.AsInt()
	if aok && bok {
		switch n.k {
		case KindAdd:
			return lattice.NewIntConst(a + b)
		case KindSub:
			return lattice.NewIntConst(a - b)
		case KindMul:
			return lattice.NewIntConst(a * b)
		case KindDiv:
			if b == 0 {
				// spec.md §9 open question: DivNode by zero yields the
				// constant zero, kept as language semantics rather than an
				// error.
				return lattice.Zero
			}

			return lattice.NewIntConst(a / b)
		}
	}

	return lattice.Meet(lt, rt)
}

func (n *Node) computeUnary(fold func(int64) int64) lattice.Value {
	t, ok := n.operand().Type()
	if !ok || t.Kind() != lattice.KindInteger {
		return lattice.Bottom
	}
	if v, ok := t.AsInt(); ok {
		return lattice.NewIntConst(fold(v))
	}

	return t
}

// swap12 exchanges inputs 1 and 2 in place and returns n, the idiom used
// throughout idealizeAdd/idealizeArith to canonicalize operand order without
// allocating a new node.
func (n *Node) swap12() *Node {
	// Both operands stay inputs of n, so the use multisets on them are
	// unchanged; only the input positions trade places.
	n.inputs[1], n.inputs[2] = n.inputs[2], n.inputs[1]

	return n
}

// idealizeArith covers Sub/Mul/Div/Minus; Add has its own richer
// canonicalization in idealizeAdd.
func (n *Node) idealizeArith(g *Graph) *Node {
	switch n.k {
	case KindMul:
		return n.idealizeMul()
	default:
		return nil
	}
}

func (n *Node) idealizeMul() *Node {
	lt, _ := n.lhs().Type()
	rt, _ := n.rhs().Type()

	// x * 1 -> x
	if v, ok := rt.AsInt(); ok && v == 1 {
		return n.lhs()
	}
	// Move constants to the RHS: con*arg -> arg*con.
	if lt.IsConstant() && !rt.IsConstant() {
		return n.swap12()
	}

	return nil
}

// idealizeAdd implements spec.md §4.4's AddNode idealizations: identity
// removal, doubling, and the left-spine canonical form with constants
// gathered at the rightmost leaf.
func (n *Node) idealizeAdd(g *Graph) *Node {
	lhs, rhs := n.lhs(), n.rhs()
	rt, _ := rhs.Type()

	// x + 0 -> x. (x is never checked for 0 on the LHS: that case
	// canonicalizes to the RHS-constant form below before this rule would
	// see it.)
	if v, ok := rt.AsInt(); ok && v == 0 {
		return lhs
	}

	// x + x -> x * 2
	if lhs == rhs {
		two := NewConstant(g, lattice.NewIntConst(2))

		return newBin(g, KindMul, lhs, two)
	}

	// Goal: a left-leaning spine of Adds with constants gathered at the
	// rightmost leaf, which then fold.

	// Move non-Adds to the RHS.
	if lhs.Kind() != KindAdd && rhs.Kind() == KindAdd {
		return n.swap12()
	}

	// We may now see (Add Add non), (Add non non), (Add Add Add), but never
	// (Add non Add).

	// Rotate x + (y + z) -> (x + y) + z, removing the Add on the RHS.
	if rhs.Kind() == KindAdd {
		inner := NewAdd(g, lhs, rhs.lhs())

		return newBin(g, KindAdd, inner, rhs.rhs())
	}

	// We may now see (Add Add non) or (Add non non), never (Add non Add)
	// nor (Add Add Add).
	if lhs.Kind() != KindAdd {
		if splineCmp(lhs, rhs) {
			return n.swap12()
		}

		return nil
	}

	// Only (Add Add non) remains.
	lt2, _ := lhs.rhs().Type()
	if lt2.IsConstant() && rt.IsConstant() {
		// (x + c1) + c2 -> x + (c1 + c2), which folds the constants.
		fused := NewAdd(g, lhs.rhs(), rhs)

		return newBin(g, KindAdd, lhs.lhs(), fused)
	}

	// Sort along the spine via rotation: (x + y) + z -> (x + z) + y, when
	// that lowers the key.
	if splineCmp(lhs.rhs(), rhs) {
		rotated := NewAdd(g, lhs.lhs(), rhs)

		return newBin(g, KindAdd, rotated, lhs.rhs())
	}

	return nil
}

// splineCmp decides whether swapping hi (the current RHS-adjacent operand)
// and lo (the incoming operand) would improve the canonical order along an
// Add spine: constants sort rightmost, then ties break by ascending node id.
// Returns true if hi and lo should be swapped.
func splineCmp(hi, lo *Node) bool {
	ht, _ := hi.Type()
	lt, _ := lo.Type()
	if lt.IsConstant() {
		return false
	}
	if ht.IsConstant() {
		return true
	}

	return lo.id > hi.id
}
