package jsonpatch

import (
	"github.com/signadot/go-jsonpatch/ir"
	"github.com/signadot/go-jsonpatch/pointer"
)

// applyTest implements test. The document is never mutated; a failed
// resolution or a structural mismatch both surface as TestFailedError,
// with Found nil in the former case.
func applyTest(doc *ir.Node, path pointer.Pointer, expected *ir.Node) error {
	found, err := Resolve(doc, path)
	if err != nil {
		return &TestFailedError{
			Path:     path.String(),
			Expected: expected,
		}
	}
	if !ir.Equal(found, expected) {
		return &TestFailedError{
			Path:     path.String(),
			Expected: expected,
			Found:    found,
		}
	}
	return nil
}
