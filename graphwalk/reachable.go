package graphwalk

import "github.com/PHLens/SeaOfNode/core"

// Reachable returns every live node reachable from g's Start or Stop,
// following both input and output edges — the sea of nodes has no single
// traversal direction that reaches everything, since a node's only path to
// Stop may run entirely through its def edges while its only path to Start
// may run entirely through its use edges.
//
// The result order is deterministic: nodes are emitted in the order first
// discovered by a depth-first walk seeded at Start then Stop.
func Reachable(g *core.Graph) []*core.Node {
	seen := make(map[*core.Node]bool, g.NodeCount())
	var order []*core.Node

	var visit func(n *core.Node)
	visit = func(n *core.Node) {
		if n == nil || n.IsDead() || seen[n] {
			return
		}
		seen[n] = true
		order = append(order, n)
		for _, in := range n.Inputs() {
			visit(in)
		}
		for _, out := range n.Outputs() {
			visit(out)
		}
	}

	visit(g.Start())
	visit(g.Stop())

	return order
}
