package lexer

import "errors"

// ErrLeadingZero is returned by ParseNumber when a numeric literal has more
// than one digit and starts with '0'. The parser reports it as its own
// "Syntax error" diagnostic with the same message text; that error wraps
// parser.ErrSyntax, not ErrLeadingZero.
var ErrLeadingZero = errors.New("lexer: integer values cannot start with '0'")
