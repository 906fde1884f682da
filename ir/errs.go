package ir

import "errors"

var (
	// ErrInvalidObjectType reports a decoded value whose dynamic type has
	// no representation in the IR.
	ErrInvalidObjectType = errors.New("invalid object type")

	// ErrParse reports malformed JSON input to Decode.
	ErrParse = errors.New("parse error")
)
