// Package parser implements the recursive-descent translator from Simple
// source text to a finished Sea of Nodes graph: Parse is the module's public
// entry point. Precedence climbs comparison -> addition -> multiplication ->
// unary -> primary, matching the grammar in spec form; every production
// builds its nodes through core's constructors, so peephole optimization
// runs inline as the parse proceeds rather than as a later pass over a
// finished tree.
//
// A parse that encounters any lexical, syntactic, or semantic error returns
// immediately with no graph; there is no error recovery or partial result.
package parser
