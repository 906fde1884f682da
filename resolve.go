package jsonpatch

import (
	"fmt"

	"github.com/signadot/go-jsonpatch/debug"
	"github.com/signadot/go-jsonpatch/ir"
	"github.com/signadot/go-jsonpatch/pointer"
)

// Resolve walks p from the root of doc and returns the addressed value.
// In an array, "-" reads the last element. Resolution never mutates the
// document.
func Resolve(doc *ir.Node, p pointer.Pointer) (*ir.Node, error) {
	if debug.Resolve() {
		debug.Logf("resolve %q in %v\n", p.String(), doc)
	}
	cur := doc
	for _, tok := range p {
		next, err := child(cur, tok)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func child(cur *ir.Node, tok string) (*ir.Node, error) {
	switch cur.Type {
	case ir.ObjectType:
		if v := ir.Get(cur, tok); v != nil {
			return v, nil
		}
		return nil, fmt.Errorf("%w: no field %q", ErrReferencesNonexistentValue, tok)
	case ir.ArrayType:
		if tok == "-" {
			if len(cur.Values) == 0 {
				return nil, fmt.Errorf("%w: %q on empty array", ErrReferencesNonexistentValue, tok)
			}
			return cur.Values[len(cur.Values)-1], nil
		}
		idx, err := pointer.ArrayIndex(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReferencesNonexistentValue, err)
		}
		if idx >= len(cur.Values) {
			return nil, fmt.Errorf("%w: index %d out of bounds (len %d)",
				ErrReferencesNonexistentValue, idx, len(cur.Values))
		}
		return cur.Values[idx], nil
	default:
		return nil, fmt.Errorf("%w: %s value has no children",
			ErrReferencesNonexistentValue, cur.Type)
	}
}

// makeExclusivePath promotes the containers along p to exclusive,
// rebinding each promoted child into its promoted parent, and returns the
// new root together with the exclusive container addressed by p. The
// caller may then write to the returned container without affecting any
// holder of the pre-patch tree. Cost is O(len(p)), independent of
// document size.
func makeExclusivePath(root *ir.Node, p pointer.Pointer) (*ir.Node, *ir.Node, error) {
	newRoot := root.ToExclusive()
	cur := newRoot
	for _, tok := range p {
		switch cur.Type {
		case ir.ObjectType:
			i := cur.FieldIndex(tok)
			if i < 0 {
				return nil, nil, fmt.Errorf("%w: no field %q", ErrReferencesNonexistentValue, tok)
			}
			next := cur.Values[i].ToExclusive()
			cur.Values[i] = next
			cur = next
		case ir.ArrayType:
			i, err := arraySlot(cur, tok)
			if err != nil {
				return nil, nil, err
			}
			next := cur.Values[i].ToExclusive()
			cur.Values[i] = next
			cur = next
		default:
			return nil, nil, fmt.Errorf("%w: %s value has no children",
				ErrReferencesNonexistentValue, cur.Type)
		}
	}
	return newRoot, cur, nil
}

// arraySlot resolves tok to an existing element index, with "-" naming
// the last element.
func arraySlot(arr *ir.Node, tok string) (int, error) {
	if tok == "-" {
		if len(arr.Values) == 0 {
			return 0, fmt.Errorf("%w: %q on empty array", ErrReferencesNonexistentValue, tok)
		}
		return len(arr.Values) - 1, nil
	}
	idx, err := pointer.ArrayIndex(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrReferencesNonexistentValue, err)
	}
	if idx >= len(arr.Values) {
		return 0, fmt.Errorf("%w: index %d out of bounds (len %d)",
			ErrReferencesNonexistentValue, idx, len(arr.Values))
	}
	return idx, nil
}
