package graphwalk

import "github.com/PHLens/SeaOfNode/core"

// Layers buckets every node Reachable(g) returns into rank order: rank 0 is
// Start, and every other node's rank is one more than the deepest rank among
// its own inputs. This gives a Graphviz-style rank hint — nodes in the same
// bucket have no def/use dependency on each other — without needing a real
// dominance computation.
//
// A node with no inputs other than nil placeholders (Start itself) sits at
// rank 0. Phi nodes are walked like any other node: rank 8's loop-carried
// dependencies are out of scope for this chapter, so the rank walk never
// needs to break a cycle.
func Layers(g *core.Graph) [][]*core.Node {
	rank := make(map[*core.Node]int)
	var rankOf func(n *core.Node) int
	rankOf = func(n *core.Node) int {
		if n == nil || n.IsDead() {
			return -1
		}
		if r, ok := rank[n]; ok {
			return r
		}
		rank[n] = 0 // break any accidental cycle conservatively at 0
		best := -1
		for _, in := range n.Inputs() {
			if r := rankOf(in); r > best {
				best = r
			}
		}
		r := best + 1
		rank[n] = r

		return r
	}

	nodes := Reachable(g)
	maxRank := 0
	for _, n := range nodes {
		if r := rankOf(n); r > maxRank {
			maxRank = r
		}
	}

	layers := make([][]*core.Node, maxRank+1)
	for _, n := range nodes {
		r := rank[n]
		layers[r] = append(layers[r], n)
	}

	return layers
}
