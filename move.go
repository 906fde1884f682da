package jsonpatch

import (
	"fmt"
	"slices"

	"github.com/signadot/go-jsonpatch/ir"
	"github.com/signadot/go-jsonpatch/pointer"
)

// applyMove implements move: remove at from, then add at path. The
// document root cannot be moved, and from must not address an ancestor
// of path, which would detach the destination along with the source.
// Moving a value onto its own location is a no-op.
func applyMove(doc *ir.Node, from, path pointer.Pointer) (*ir.Node, error) {
	if from.IsRoot() {
		return nil, fmt.Errorf("%w: cannot move the document root",
			ErrReferencesNonexistentValue)
	}
	if from.IsPrefixOf(path) {
		return nil, fmt.Errorf("%w: %q contains %q", ErrMoveIntoDescendant,
			from.String(), path.String())
	}
	if slices.Equal(from, path) {
		// remove+add would reorder an object key to last position
		if _, err := Resolve(doc, from); err != nil {
			return nil, err
		}
		return doc, nil
	}
	root, moved, err := removeValue(doc, from)
	if err != nil {
		return nil, err
	}
	return applyAdd(root, path, moved)
}
