package core

import "github.com/PHLens/SeaOfNode/lattice"

// Kind tags which of the fixed node shapes a Node is. Node kinds share one
// envelope (id, inputs, outputs, cached type) and dispatch compute/idealize
// on Kind rather than through an interface hierarchy — see DESIGN.md for why
// this mirrors the "tagged variant, not inheritance" design note in spec.md
// §9.
type Kind int

const (
	KindStart Kind = iota
	KindConstant
	KindProj
	KindIf
	KindRegion
	KindPhi
	KindReturn
	KindStop
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindMinus
	KindEQ
	KindLT
	KindLE
	KindNot
	KindScope
)

func (k Kind) String() string {
	names := [...]string{
		"Start", "Constant", "Proj", "If", "Region", "Phi", "Return", "Stop",
		"Add", "Sub", "Mul", "Div", "Minus", "EQ", "LT", "LE", "Not", "Scope",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "Unknown"
	}

	return names[k]
}

// Node is the universal unit of the Sea-of-Nodes graph. Every field below is
// unexported: callers mutate a Node only through the edge-discipline methods
// in edges.go, which keep inputs and outputs mirrored (invariant I1).
type Node struct {
	g  *Graph
	id int
	k  Kind

	inputs  []*Node // position is semantic; may contain nil
	outputs []*Node // multiset of uses, duplicates permitted; nil entries are "keep" sentinels

	typ *lattice.Value // nil iff the node is dead (invariant I2/I3)

	// Kind-specific auxiliary data. Only the field(s) relevant to k are ever
	// read; keeping them on one envelope avoids a second allocation per node.
	projIdx  int           // Proj
	label    string        // Proj, Phi (for diagnostics / printing)
	constVal lattice.Value // Constant
	frames   []map[string]int // Scope: one name->input-index map per lexical nesting level
}

// ID returns the node's monotonically increasing, lifetime-stable id.
func (n *Node) ID() int { return n.id }

// Kind returns the node's tag.
func (n *Node) Kind() Kind { return n.k }

// Type returns the node's cached type, or false if the node is dead.
func (n *Node) Type() (lattice.Value, bool) {
	if n.typ == nil {
		return lattice.Bottom, false
	}

	return *n.typ, true
}

// Arity returns the number of input slots (including nil placeholders).
func (n *Node) Arity() int { return len(n.inputs) }

// Input returns the i-th input, or nil if out of range or unset.
func (n *Node) Input(i int) *Node {
	if i < 0 || i >= len(n.inputs) {
		return nil
	}

	return n.inputs[i]
}

// Inputs returns a copy of the input slice, safe for the caller to range
// over without observing concurrent mutation (there is none, but it also
// protects the Node's own backing array from external aliasing).
func (n *Node) Inputs() []*Node {
	out := make([]*Node, len(n.inputs))
	copy(out, n.inputs)

	return out
}

// OutputCount returns the number of uses, including any "keep" sentinels.
func (n *Node) OutputCount() int { return len(n.outputs) }

// Outputs returns a copy of the use multiset (nil entries are keep
// sentinels, see Keep/Unkeep in edges.go).
func (n *Node) Outputs() []*Node {
	out := make([]*Node, len(n.outputs))
	copy(out, n.outputs)

	return out
}

// IsDead reports whether the node has been killed (invariant I2).
func (n *Node) IsDead() bool { return n.typ == nil }

// Label returns the node's diagnostic label (glabel in spec terms): the
// bound variable name for a Phi, "True"/"False"/the argument name for a
// Proj, and "" for every other kind, which prints its label from its
// operands instead (see print.go).
func (n *Node) Label() string {
	switch n.k {
	case KindProj, KindPhi:
		return n.label
	default:
		return ""
	}
}

// IsCFG reports whether input 0 of this node kind is required to be control
// (invariant I4): Start, a Proj projecting an If's control tuple, Region, If,
// Return and Stop.
func (n *Node) IsCFG() bool {
	switch n.k {
	case KindStart, KindIf, KindRegion, KindReturn, KindStop:
		return true
	case KindProj:
		multi := n.Input(0)

		return multi != nil && multi.Kind() == KindIf
	default:
		return false
	}
}

// newNode allocates a node with the given kind and inputs, wiring mirrored
// use edges for every non-nil input, and registers it with g. It does not
// compute a type or run peephole — callers finish construction (set
// kind-specific fields) before calling g.Peephole.
func newNode(g *Graph, k Kind, inputs ...*Node) *Node {
	n := &Node{g: g, id: g.nextID(), k: k, inputs: append([]*Node(nil), inputs...)}
	for _, in := range inputs {
		if in != nil {
			in.addUse(n)
		}
	}
	g.register(n)

	return n
}
