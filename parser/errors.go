package parser

import "errors"

// Sentinel errors wrapped into the diagnostics Parse returns. Every message
// carries the stable prefix spec.md §6 names, so callers can match on text
// as well as on errors.Is.
var (
	// ErrSyntax covers any construct the grammar does not recognize at the
	// current position: a missing token, an unexpected keyword, trailing
	// input after the final statement.
	ErrSyntax = errors.New("Syntax error")

	// ErrUndefinedName is returned when an expression statement assigns to,
	// or an identifier expression reads, a name with no reachable binding.
	ErrUndefinedName = errors.New("Undefined name")

	// ErrRedefinition is returned when a declaration names an identifier
	// already bound in the innermost open block.
	ErrRedefinition = errors.New("Redefining name")

	// ErrAsymmetricIfArms is returned when either arm of an if/else
	// declares a new name, even if the other arm declares one too — the
	// merged scope would not know what to Phi.
	ErrAsymmetricIfArms = errors.New("Cannot define a new name on one arm of an if")

	// ErrExpectedIdent is returned when the grammar calls for an
	// identifier and the next token is not one.
	ErrExpectedIdent = errors.New("Expected an identifier")

	// ErrReservedKeyword is returned when a keyword of the grammar appears
	// where an identifier is expected.
	ErrReservedKeyword = errors.New("Cannot use a keyword as an identifier")
)

// keywords are reserved and may never be used as a declared or referenced
// name, per spec.md §6's grammar.
var keywords = map[string]bool{
	"else": true, "false": true, "if": true, "int": true, "return": true, "true": true,
}
