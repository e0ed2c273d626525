package core

import "github.com/PHLens/SeaOfNode/lattice"

// NewProj extracts element idx of a Tuple-typed multi-valued parent (Start
// or If). label is carried only for printing/diagnostics ("True"/"False"
// for If projections, the argument name for Start's arg projection).
func NewProj(g *Graph, multi *Node, idx int, label string) *Node {
	n := newNode(g, KindProj, multi)
	n.projIdx = idx
	n.label = label

	return g.Peephole(n)
}

// computeProj reads element projIdx out of its parent's cached Tuple type.
func (n *Node) computeProj() lattice.Value {
	parent := n.Input(0)
	if parent == nil {
		return lattice.Bottom
	}
	pt, ok := parent.Type()
	if !ok {
		return lattice.Bottom
	}

	return pt.Elem(n.projIdx)
}

// ProjIndex returns the tuple slot this Proj extracts.
func (n *Node) ProjIndex() int { return n.projIdx }
