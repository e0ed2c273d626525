package core

import "sort"

// Scope is a parser-only helper that happens to live in the graph as a real
// Node: its inputs are the bindings currently visible, and its "$ctrl" name
// (reserved — the grammar never produces an identifier starting with '$') is
// bound at input 0 like any other name. Keeping it a Node means its bindings
// participate in the ordinary use/def edge discipline, so killing a binding
// when a frame pops is just PopN.

// CtrlName is the reserved binding that tracks the currently active control
// node. It can never collide with a source identifier.
const CtrlName = "$ctrl"

// NewScopeNode creates an empty Scope with no frames pushed yet.
func NewScopeNode(g *Graph) *Node {
	n := newNode(g, KindScope)

	return g.Peephole(n)
}

// PushFrame opens a new lexical nesting level.
func (n *Node) PushFrame() {
	n.frames = append(n.frames, map[string]int{})
}

// PopFrame closes the innermost lexical nesting level, releasing every
// binding it owned.
func (n *Node) PopFrame() {
	last := len(n.frames) - 1
	frame := n.frames[last]
	n.frames = n.frames[:last]
	n.PopN(n.Arity() - len(frame))
}

// NumFrames reports how many lexical nesting levels are currently open.
func (n *Node) NumFrames() int { return len(n.frames) }

// DefineInScope binds name to value in the innermost open frame. It reports
// ok=false if name is already bound in that frame (a redefinition) — the
// core primitive mirrors the original's silent-overwrite bookkeeping; the
// scope package turns !ok into a reported error, per spec.md's requirement
// that redefining a name in the same frame is a fatal parse error.
func (n *Node) DefineInScope(name string, value *Node) (ok bool) {
	frame := n.frames[len(n.frames)-1]
	if _, dup := frame[name]; dup {
		frame[name] = n.Arity()

		return false
	}
	frame[name] = n.Arity()
	n.AddDef(value)

	return true
}

// LookupInScope finds name starting from the innermost frame outward,
// returning the bound node or nil if name is unbound anywhere.
func (n *Node) LookupInScope(name string) *Node {
	return n.updateInScope(name, nil, len(n.frames)-1)
}

// UpdateInScope rewrites the binding of name, searching from the innermost
// frame outward, and returns the node previously bound (nil if name is
// unbound anywhere, in which case no rewrite happens).
func (n *Node) UpdateInScope(name string, value *Node) *Node {
	return n.updateInScope(name, value, len(n.frames)-1)
}

func (n *Node) updateInScope(name string, value *Node, level int) *Node {
	if level < 0 {
		return nil
	}
	idx, found := n.frames[level][name]
	if !found {
		return n.updateInScope(name, value, level-1)
	}
	old := n.Input(idx)
	if value == nil {
		return old
	}
	n.SetDef(idx, value)

	return old
}

// Frames returns the bound names in each open frame, outermost first, each
// inner slice ordered by input index.
func (n *Node) Frames() [][]string {
	out := make([][]string, len(n.frames))
	for i, frame := range n.frames {
		names := make([]string, 0, len(frame))
		for name := range frame {
			names = append(names, name)
		}
		sort.Slice(names, func(a, b int) bool { return frame[names[a]] < frame[names[b]] })
		out[i] = names
	}

	return out
}

// CtrlNode returns the binding currently held under CtrlName.
func (n *Node) CtrlNode() *Node { return n.Input(0) }

// SetCtrlNode rewrites the CtrlName binding.
func (n *Node) SetCtrlNode(c *Node) *Node {
	n.SetDef(0, c)

	return c
}

// reverseNames recovers the name bound at each input index, the inverse of
// the per-frame name->index maps, used by MergeScopes to label the Phis it
// creates.
func (n *Node) reverseNames() []string {
	names := make([]string, n.Arity())
	for _, frame := range n.frames {
		for name, idx := range frame {
			if idx < len(names) {
				names[idx] = name
			}
		}
	}

	return names
}

// DupScope duplicates a Scope across every frame: the new Scope shares the
// same name->index layout (so merging two dups lines bindings up by index)
// but is a distinct Node, becoming a fresh user of every node currently
// bound rather than aliasing the original's input slots.
func (n *Node) DupScope(g *Graph) *Node {
	dup := NewScopeNode(g)
	for _, frame := range n.frames {
		cp := make(map[string]int, len(frame))
		for k, v := range frame {
			cp[k] = v
		}
		dup.frames = append(dup.frames, cp)
	}
	for i := 0; i < n.Arity(); i++ {
		dup.AddDef(n.Input(i))
	}

	return dup
}

// MergeScopes reconciles n with that, presumed to be two control-flow arms
// of the same branch: it builds a Region joining the two control edges, and
// for every name whose binding differs between the two scopes, a Phi over
// that Region. that is killed (its bindings are consumed, not shared).
// Returns the new Region.
func (n *Node) MergeScopes(g *Graph, that *Node) *Node {
	region := NewRegion(g, n.CtrlNode(), that.CtrlNode())
	n.SetCtrlNode(region)
	names := n.reverseNames()
	for i := 1; i < n.Arity(); i++ {
		if n.Input(i) != that.Input(i) {
			label := names[i]
			phi := NewPhi(g, label, region, n.Input(i), that.Input(i))
			n.SetDef(i, phi)
		}
	}
	that.Kill()

	return region
}
