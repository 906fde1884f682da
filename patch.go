// Package jsonpatch applies RFC 6902 JSON Patch operations to documents
// in the ir node representation, addressed by RFC 6901 pointers.
//
// Application is persistent: the input document is never written, the
// engine copies only the spine from the root to each mutation target,
// and everything off that spine is shared between input and output.
package jsonpatch

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/go-jsonpatch/debug"
	"github.com/signadot/go-jsonpatch/encode"
	"github.com/signadot/go-jsonpatch/ir"
	"github.com/signadot/go-jsonpatch/pointer"
)

// Op names a JSON Patch operation kind.
type Op string

const (
	Add     Op = "add"
	Remove  Op = "remove"
	Replace Op = "replace"
	Move    Op = "move"
	Copy    Op = "copy"
	Test    Op = "test"
)

// Operation is a single RFC 6902 patch operation. Value is kept raw so
// that an explicit "value": null is distinguishable from an absent value
// field, and From is a pointer so that an absent member is
// distinguishable from the root pointer "".
type Operation struct {
	Op    Op              `json:"op"`
	Path  string          `json:"path"`
	From  *string         `json:"from,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`

	path, from pointer.Pointer
	value      *ir.Node
	decoded    bool
}

// Patch is an ordered list of operations. Order is significant: each
// operation runs against the document produced by the one before it.
type Patch []Operation

// DecodePatch decodes and validates a JSON patch document: a JSON array
// of operation objects. Pointers and values are decoded eagerly so that
// Apply never fails on syntax.
func DecodePatch(d []byte) (Patch, error) {
	var p Patch
	if err := json.Unmarshal(d, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}
	for i := range p {
		if err := p[i].decode(); err != nil {
			return nil, fmt.Errorf("%w: operation %d: %w", ErrInvalidPatch, i, err)
		}
	}
	if debug.Decode() {
		debug.Logf("decoded patch with %d operations\n", len(p))
	}
	return p, nil
}

func (op *Operation) decode() error {
	var err error
	op.path, err = pointer.Parse(op.Path)
	if err != nil {
		return err
	}
	switch op.Op {
	case Add, Replace, Test:
		if op.Value == nil {
			return fmt.Errorf("%s requires a value", op.Op)
		}
		op.value, err = ir.Decode(op.Value)
		if err != nil {
			return err
		}
	case Move, Copy:
		if op.From == nil {
			return fmt.Errorf("%s requires a from", op.Op)
		}
		op.from, err = pointer.Parse(*op.From)
		if err != nil {
			return err
		}
	case Remove:
	default:
		return fmt.Errorf("unsupported operation %q", op.Op)
	}
	op.decoded = true
	return nil
}

// Apply runs the patch against doc, returning the patched document. The
// input tree is never written: untouched subtrees are shared between doc
// and the result, and on error doc is returned unmodified to the caller
// in its entirety, giving all-or-nothing application. A document must
// not be patched concurrently from several goroutines; the patch itself
// is only read, so one Patch may be applied to several documents at
// once.
func Apply(doc *ir.Node, patch Patch) (*ir.Node, error) {
	res := doc
	for i := range patch {
		op := patch[i]
		if err := op.decodeLazy(); err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		if debug.Patch() {
			debug.Logf("apply %s %s to %v\n", op.Op, op.Path, res)
		}
		var err error
		switch op.Op {
		case Add:
			res, err = applyAdd(res, op.path, op.value)
		case Remove:
			res, err = applyRemove(res, op.path)
		case Replace:
			res, err = applyReplace(res, op.path, op.value)
		case Move:
			res, err = applyMove(res, op.from, op.path)
		case Copy:
			res, err = applyCopy(res, op.from, op.path)
		case Test:
			err = applyTest(res, op.path, op.value)
		default:
			err = fmt.Errorf("%w: unsupported operation %q", ErrInvalidPatch, op.Op)
		}
		if err != nil {
			return nil, fmt.Errorf("operation %d (%s %s): %w", i, op.Op, op.Path, err)
		}
	}
	ir.Share(res)
	return res, nil
}

// decodeLazy validates operations on patches assembled without
// DecodePatch, such as literal Patch values in tests.
func (op *Operation) decodeLazy() error {
	if op.decoded {
		return nil
	}
	if err := op.decode(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}
	return nil
}

// ApplyBytes decodes doc, applies patch, and re-encodes the result,
// including the scalar-fragment case for non-container roots.
func ApplyBytes(doc []byte, patch Patch, opts ...encode.EncodeOption) ([]byte, error) {
	y, err := ir.Decode(doc)
	if err != nil {
		return nil, err
	}
	res, err := Apply(y, patch)
	if err != nil {
		return nil, err
	}
	return encode.Marshal(res, opts...)
}
