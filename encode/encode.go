package encode

import (
	"io"

	"github.com/signadot/go-jsonpatch/ir"

	"github.com/tidwall/pretty"
)

// EncState carries the effective encoding options.
type EncState struct {
	indent string
	colors *Colors
}

// Encode writes node to w as JSON.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	d, err := Marshal(node, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Marshal encodes node to JSON bytes. Container roots honor the indent
// and color options; scalar roots take the fragment path described in the
// package comment.
func Marshal(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch node.Type {
	case ir.ObjectType, ir.ArrayType:
		d, err := node.MarshalJSON()
		if err != nil {
			return nil, err
		}
		if es.indent != "" {
			d = pretty.PrettyOptions(d, &pretty.Options{Width: 80, Indent: es.indent})
		}
		if es.colors != nil {
			d = pretty.Color(d, es.colors.style())
		}
		return d, nil
	default:
		arr := ir.FromSlice([]*ir.Node{node})
		d, err := arr.MarshalJSON()
		if err != nil {
			return nil, err
		}
		return d[1 : len(d)-1], nil
	}
}
