// Package seaofnode is a single-pass compiler front-end for the "Simple"
// imperative language, translating source directly into a Sea-of-Nodes (SoN)
// graph while applying peephole optimizations during construction — constant
// folding, algebraic idealization, and canonical operand ordering happen as
// each node is built, not as a later pass.
//
// Under the hood, the module is organized into one package per concern:
//
//	lattice/    — the fixed Top/Bottom/Control/Tuple/Integer type lattice
//	core/       — the node arena, def/use edge discipline, and peephole engine
//	scope/      — lexical name resolution with lazy Phi insertion at joins
//	lexer/      — hand-written tokenizer for the Simple grammar
//	parser/     — recursive-descent CFG builder, the module's public entry point
//	graphwalk/  — reachability and rank-layering traversal, for diagnostics
//	fixtures/   — deterministic graphs for tests and benchmarks
//
// A parse never returns a partial graph: any syntax or semantic error aborts
// immediately, and the nodes built so far are reclaimed by the same
// reference-counted dead-code elimination that runs throughout construction.
//
//	g, err := parser.Parse(`return 1+2*3+-5;`)
//	// g.Print(g.Stop()) == "return 2;"
package seaofnode
