package scope

import (
	"fmt"

	"github.com/PHLens/SeaOfNode/core"
)

// Scope is a thin handle around a core.Node of kind Scope: a stack of lexical
// frames mapping names to the graph nodes currently bound to them.
type Scope struct {
	n *core.Node
}

// New creates an empty Scope with a single frame already pushed, bound to
// ctrl under the reserved control name.
func New(g *core.Graph, ctrl *core.Node) *Scope {
	s := &Scope{n: core.NewScopeNode(g)}
	s.Push()
	_, _ = s.define(core.CtrlName, ctrl)

	return s
}

// Node returns the underlying graph node, for printing or graph traversal.
func (s *Scope) Node() *core.Node { return s.n }

// Push opens a new lexical nesting level (entering a block).
func (s *Scope) Push() { s.n.PushFrame() }

// Pop closes the innermost lexical nesting level (leaving a block), releasing
// every binding it owned.
func (s *Scope) Pop() { s.n.PopFrame() }

// Define binds name to value in the innermost open frame. It returns
// ErrRedefined if name is already bound in that frame.
func (s *Scope) Define(name string, value *core.Node) error {
	ok, _ := s.define(name, value)
	if !ok {
		return fmt.Errorf("%w: %q", ErrRedefined, name)
	}

	return nil
}

func (s *Scope) define(name string, value *core.Node) (bool, *core.Node) {
	ok := s.n.DefineInScope(name, value)

	return ok, value
}

// Lookup finds name starting from the innermost frame outward. It returns
// nil if name is unbound in every open frame.
func (s *Scope) Lookup(name string) *core.Node {
	return s.n.LookupInScope(name)
}

// Update rewrites the binding of name, searching from the innermost frame
// outward, and returns the node previously bound (nil if name is unbound
// anywhere, in which case no rewrite happens).
func (s *Scope) Update(name string, value *core.Node) *core.Node {
	return s.n.UpdateInScope(name, value)
}

// Frames returns, innermost first, the bound names in each currently open
// lexical frame — the read-only view a visualizer uses to render the active
// scope stack (spec.md §6).
func (s *Scope) Frames() [][]string {
	names := s.n.Frames()
	out := make([][]string, len(names))
	for i := range names {
		out[len(names)-1-i] = names[i]
	}

	return out
}

// Arity returns the number of bindings currently held across every open
// frame, used by the if/else builder to detect an arm that declared a name
// the other arm did not.
func (s *Scope) Arity() int { return s.n.Arity() }

// Ctrl returns the node currently bound to the reserved control name.
func (s *Scope) Ctrl() *core.Node { return s.n.CtrlNode() }

// SetCtrl rewrites the reserved control binding, e.g. after an If splits
// control into a True/False projection.
func (s *Scope) SetCtrl(c *core.Node) *core.Node { return s.n.SetCtrlNode(c) }

// Dup duplicates the Scope across every open frame: the copy shares the same
// name layout (so it can later be merged back against the original) but is a
// distinct Node with its own use edges on every currently-bound value.
func (s *Scope) Dup(g *core.Graph) *Scope {
	return &Scope{n: s.n.DupScope(g)}
}

// Merge reconciles s with that, the two control-flow arms of an if/else: it
// builds a Region joining both control edges and, for every name whose
// binding differs between the two scopes, a Phi selecting between them. that
// is consumed (killed) by the merge. Returns the new Region, the control
// node for code following the branch.
func (s *Scope) Merge(g *core.Graph, that *Scope) *core.Node {
	return s.n.MergeScopes(g, that.n)
}
