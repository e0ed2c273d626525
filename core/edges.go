package core

// This file implements the mirror-safe edge discipline spec.md §4.2
// requires: every change to inputs is paired with the corresponding outputs
// update before any recursive kill fires, and SetDef always registers the
// new use before dropping the old one, so a node the new owner is about to
// adopt is never freed out from under it.

// addUse appends owner to n's output multiset. Duplicates are expected and
// kept: if owner references n at two input positions, n.outputs holds owner
// twice.
func (n *Node) addUse(owner *Node) {
	n.outputs = append(n.outputs, owner)
}

// delUse removes one occurrence of owner from n's output multiset in O(1) by
// swapping with the last element, and reports whether outputs is now empty
// — the signal the caller uses to decide whether to kill n.
func (n *Node) delUse(owner *Node) bool {
	for i, o := range n.outputs {
		if o == owner {
			last := len(n.outputs) - 1
			n.outputs[i] = n.outputs[last]
			n.outputs = n.outputs[:last]

			return len(n.outputs) == 0
		}
	}

	return len(n.outputs) == 0
}

// SetDef rewires input i of n to point at next, first registering the new
// use on next and only then removing the use on the prior input — the order
// spec.md mandates to avoid freeing a node the new owner was about to adopt.
// If the prior input becomes unused it is killed (recursively).
func (n *Node) SetDef(i int, next *Node) {
	if i < 0 || i >= len(n.inputs) {
		return
	}
	prev := n.inputs[i]
	if next != nil {
		next.addUse(n)
	}
	n.inputs[i] = next
	if prev != nil && prev.delUse(n) {
		prev.Kill()
	}
}

// AddDef appends next as a new trailing input of n, registering the use.
// Used by Scope definitions (DefineInScope), Scope duplication (DupScope)
// and Graph.AddReturn.
func (n *Node) AddDef(next *Node) {
	n.inputs = append(n.inputs, next)
	if next != nil {
		next.addUse(n)
	}
}

// PopN truncates n's input vector to newArity, dropping the uses those
// inputs held on n and recursively killing any that become unused. This is
// the only place a node's arity shrinks (spec.md §9, "Scope frames"): it
// backs Scope.pop releasing a closed lexical frame's bindings.
func (n *Node) PopN(newArity int) {
	if newArity < 0 || newArity >= len(n.inputs) {
		return
	}
	dropped := n.inputs[newArity:]
	n.inputs = n.inputs[:newArity:newArity]
	for _, d := range dropped {
		if d != nil && d.delUse(n) {
			d.Kill()
		}
	}
}

// Keep adds a nil "sentinel" use to n, suppressing DCE during a transient
// rewrite window — e.g. while dead_code_elim kills old but new shares some
// of old's former inputs and must not be swept away by the unwind.
func (n *Node) Keep() {
	n.outputs = append(n.outputs, nil)
}

// Unkeep removes one sentinel use added by Keep.
func (n *Node) Unkeep() {
	for i, o := range n.outputs {
		if o == nil {
			last := len(n.outputs) - 1
			n.outputs[i] = n.outputs[last]
			n.outputs = n.outputs[:last]

			return
		}
	}
}

// Kill is valid only when n has no uses (including keep sentinels). It
// unhooks every input (recursively killing any that become unused), empties
// the input vector, and marks n dead by nulling its cached type (invariant
// I2). Calling Kill on a node with outstanding uses is a programmer error
// and is a silent no-op, matching the teacher's convention of never
// panicking on a defensive check that callers are expected to honor.
func (n *Node) Kill() {
	if len(n.outputs) != 0 || n.typ == nil {
		return
	}
	inputs := n.inputs
	n.inputs = nil
	for _, in := range inputs {
		if in != nil && in.delUse(n) {
			in.Kill()
		}
	}
	n.typ = nil
}
