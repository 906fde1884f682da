package jsonpatch

import (
	"fmt"
	"slices"

	"github.com/signadot/go-jsonpatch/ir"
	"github.com/signadot/go-jsonpatch/pointer"
)

// applyRemove implements remove. Removing the root replaces the document
// with null; anywhere else the target must exist.
func applyRemove(doc *ir.Node, path pointer.Pointer) (*ir.Node, error) {
	root, _, err := removeValue(doc, path)
	return root, err
}

// removeValue removes the value at path and returns it along with the
// new root, so that move can reuse the detached subtree.
func removeValue(doc *ir.Node, path pointer.Pointer) (*ir.Node, *ir.Node, error) {
	if path.IsRoot() {
		return ir.Null(), doc, nil
	}
	parentPath, _ := path.Parent()
	root, parent, err := makeExclusivePath(doc, parentPath)
	if err != nil {
		return nil, nil, err
	}
	removed, err := removeChild(parent, path.Last())
	if err != nil {
		return nil, nil, err
	}
	return root, removed, nil
}

func removeChild(parent *ir.Node, tok string) (*ir.Node, error) {
	switch parent.Type {
	case ir.ObjectType:
		i := parent.FieldIndex(tok)
		if i < 0 {
			return nil, fmt.Errorf("%w: no field %q", ErrReferencesNonexistentValue, tok)
		}
		removed := parent.Values[i]
		parent.Fields = slices.Delete(parent.Fields, i, i+1)
		parent.Values = slices.Delete(parent.Values, i, i+1)
		return removed, nil
	case ir.ArrayType:
		i, err := arraySlot(parent, tok)
		if err != nil {
			return nil, err
		}
		removed := parent.Values[i]
		parent.Values = slices.Delete(parent.Values, i, i+1)
		return removed, nil
	default:
		return nil, fmt.Errorf("%w: cannot remove child from %s value",
			ErrReferencesNonexistentValue, parent.Type)
	}
}
