package scope

import "errors"

// ErrRedefined is the sentinel wrapped into the parser's "Redefining name"
// diagnostic when Define is called twice for the same name in one frame.
var ErrRedefined = errors.New("scope: name already defined in this frame")
