// Package scope wraps core's Scope node with the parser-facing policy for
// lexical name resolution: push/pop frames per block, define/lookup/update
// bindings, and fold two control-flow arms back into one via lazily-inserted
// Phis.
//
// Scope itself is a real core.Node (KindScope) so its bindings obey the same
// def/use edge discipline as every other value in the graph; this package
// adds no graph storage of its own — it only sequences calls into core and
// translates one case the original lexical-scope bookkeeping left as a
// silent overwrite into a reported error: redefining a name already bound in
// the innermost open frame.
package scope
