package jsonpatch

import (
	"fmt"

	"github.com/signadot/go-jsonpatch/ir"
	"github.com/signadot/go-jsonpatch/pointer"
)

// applyReplace implements replace: read-before-write on exactly one
// existing slot. Unlike add it never appends or shifts, and "-" names
// the last element rather than the append position.
func applyReplace(doc *ir.Node, path pointer.Pointer, val *ir.Node) (*ir.Node, error) {
	if _, err := Resolve(doc, path); err != nil {
		return nil, err
	}
	if path.IsRoot() {
		return val, nil
	}
	parentPath, _ := path.Parent()
	root, parent, err := makeExclusivePath(doc, parentPath)
	if err != nil {
		return nil, err
	}
	if err := replaceChild(parent, path.Last(), val); err != nil {
		return nil, err
	}
	return root, nil
}

func replaceChild(parent *ir.Node, tok string, val *ir.Node) error {
	switch parent.Type {
	case ir.ObjectType:
		i := parent.FieldIndex(tok)
		if i < 0 {
			return fmt.Errorf("%w: no field %q", ErrReferencesNonexistentValue, tok)
		}
		parent.Values[i] = val
		return nil
	case ir.ArrayType:
		i, err := arraySlot(parent, tok)
		if err != nil {
			return err
		}
		parent.Values[i] = val
		return nil
	default:
		return fmt.Errorf("%w: cannot replace child of %s value",
			ErrReferencesNonexistentValue, parent.Type)
	}
}
