package jsonpatch

import (
	"github.com/signadot/go-jsonpatch/ir"
	"github.com/signadot/go-jsonpatch/pointer"
)

// applyCopy implements copy: a deep clone of the value at from is added
// at path. Cloning guarantees the two locations share no structure, so
// a later mutation of one never shows through the other.
func applyCopy(doc *ir.Node, from, path pointer.Pointer) (*ir.Node, error) {
	val, err := Resolve(doc, from)
	if err != nil {
		return nil, err
	}
	return applyAdd(doc, path, val.Clone())
}
