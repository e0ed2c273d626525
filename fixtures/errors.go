package fixtures

import "errors"

// ErrConstructFailed wraps the index of a nil Constructor passed to
// BuildGraph, mirroring the defensive nil-constructor check every
// deterministic fixture assembler needs.
var ErrConstructFailed = errors.New("fixtures: nil constructor")
