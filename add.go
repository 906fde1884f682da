package jsonpatch

import (
	"fmt"

	"github.com/signadot/go-jsonpatch/ir"
	"github.com/signadot/go-jsonpatch/pointer"
)

// applyAdd implements add. A root path replaces the whole document.
// Object adds insert or overwrite the key; array adds append at "-" and
// insert-with-shift at an index up to and including the array length.
func applyAdd(doc *ir.Node, path pointer.Pointer, val *ir.Node) (*ir.Node, error) {
	if path.IsRoot() {
		return val, nil
	}
	parentPath, _ := path.Parent()
	root, parent, err := makeExclusivePath(doc, parentPath)
	if err != nil {
		return nil, err
	}
	if err := addChild(parent, path.Last(), val); err != nil {
		return nil, err
	}
	return root, nil
}

func addChild(parent *ir.Node, tok string, val *ir.Node) error {
	switch parent.Type {
	case ir.ObjectType:
		if i := parent.FieldIndex(tok); i >= 0 {
			parent.Values[i] = val
			return nil
		}
		parent.Fields = append(parent.Fields, ir.FromString(tok))
		parent.Values = append(parent.Values, val)
		return nil
	case ir.ArrayType:
		if tok == "-" {
			parent.Values = append(parent.Values, val)
			return nil
		}
		idx, err := pointer.ArrayIndex(tok)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrReferencesNonexistentValue, err)
		}
		if idx > len(parent.Values) {
			return fmt.Errorf("%w: index %d out of bounds for insert (len %d)",
				ErrReferencesNonexistentValue, idx, len(parent.Values))
		}
		parent.Values = append(parent.Values, nil)
		copy(parent.Values[idx+1:], parent.Values[idx:])
		parent.Values[idx] = val
		return nil
	default:
		return fmt.Errorf("%w: cannot add child to %s value",
			ErrReferencesNonexistentValue, parent.Type)
	}
}
