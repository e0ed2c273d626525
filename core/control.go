package core

// This file implements the no-idealization control nodes: If, Region,
// Return and Stop. Each contributes only a compute() rule (dispatched from
// peephole.go's computeType); spec.md §4.4 assigns them no idealizations at
// this chapter tier.

// NewIf creates an If node over the given control predecessor and boolean
// predicate expression. Its type is always Tuple(Control, Control): the
// (True, False) successor pair, extracted by a pair of Proj nodes.
func NewIf(g *Graph, ctrl, pred *Node) *Node {
	n := newNode(g, KindIf, ctrl, pred)

	return g.Peephole(n)
}

// NewRegion creates an N-ary control merge over preds. Input 0 is always
// nil, per spec.md §3's node-kind table; preds occupy inputs 1..N.
func NewRegion(g *Graph, preds ...*Node) *Node {
	n := newNode(g, KindRegion, append([]*Node{nil}, preds...)...)

	return g.Peephole(n)
}

// NewReturn creates a Return over the given control and result expression.
// The caller is responsible for appending it to the graph's Stop via
// Graph.AddReturn.
func NewReturn(g *Graph, ctrl, expr *Node) *Node {
	n := newNode(g, KindReturn, ctrl, expr)

	return g.Peephole(n)
}

// AddReturn appends ret as a new input of the graph's Stop node, the
// accumulation point for every terminated path (spec.md §4.6).
func (g *Graph) AddReturn(ret *Node) {
	g.stop.AddDef(ret)
	g.Peephole(g.stop)
}

// Ctrl returns input 0, the control predecessor, for any CFG node.
func (n *Node) Ctrl() *Node { return n.Input(0) }

// Expr returns input 1, the data value, for a Return node.
func (n *Node) Expr() *Node { return n.Input(1) }

// Pred returns input 1, the boolean predicate, for an If node.
func (n *Node) Pred() *Node { return n.Input(1) }
