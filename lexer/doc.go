// Package lexer implements the character-level scanner the parser drives:
// skip-whitespace-then-match-literal lookahead (Match/MatchExact), identifier
// and integer-literal recognition, and a diagnostic token reader for error
// messages. It has no notion of grammar or precedence — every decision about
// what token is expected where belongs to the parser.
//
// The scanner never pre-tokenizes the source into a slice: like the grammar
// it serves, each call re-examines the input from the current cursor, which
// keeps backtracking-free recursive descent simple (a rejected Match consumes
// nothing but leading whitespace) at the cost of repeated whitespace skipping, cheap
// for source files in the size range this language targets.
package lexer
