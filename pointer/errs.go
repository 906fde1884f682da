package pointer

import "errors"

// ErrSyntax reports a malformed pointer string or array index token.
var ErrSyntax = errors.New("invalid pointer syntax")
