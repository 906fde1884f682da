package jsonpatch

import (
	"errors"
	"fmt"

	"github.com/signadot/go-jsonpatch/encode"
	"github.com/signadot/go-jsonpatch/ir"
)

var (
	// ErrReferencesNonexistentValue reports a pointer which does not
	// resolve in the document being patched: a missing object key, an
	// out-of-range or malformed array index, a step through a leaf, or
	// an operation on an absent target.
	ErrReferencesNonexistentValue = errors.New("references nonexistent value")

	// ErrMoveIntoDescendant reports a move whose from location is a
	// proper prefix of its path location.
	ErrMoveIntoDescendant = errors.New("cannot move value into own descendant")

	// ErrTestFailed matches TestFailedError via errors.Is.
	ErrTestFailed = errors.New("test failed")

	// ErrInvalidPatch reports a patch document that does not decode to
	// a well-formed operation list.
	ErrInvalidPatch = errors.New("invalid patch")
)

// TestFailedError reports a failed test operation. Found is nil when the
// tested path did not resolve at all.
type TestFailedError struct {
	Path     string
	Expected *ir.Node
	Found    *ir.Node
}

func (e *TestFailedError) Error() string {
	if e.Found == nil {
		return fmt.Sprintf("test failed at %q: expected %s, no value",
			e.Path, encode.MustString(e.Expected))
	}
	return fmt.Sprintf("test failed at %q: expected %s, found %s",
		e.Path, encode.MustString(e.Expected), encode.MustString(e.Found))
}

func (e *TestFailedError) Is(err error) bool {
	return err == ErrTestFailed
}
