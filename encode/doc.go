// Package encode encodes IR nodes to JSON bytes.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode with options
//	err := encode.Encode(node, os.Stdout, encode.EncodeIndent("  "))
//
// A patched document may have a scalar root, which encoding/json only
// emits as part of a larger value. Marshal wraps such a root in a
// single-element array and slices the brackets off the compact encoding,
// leaving a standalone JSON fragment. Formatting options apply only to
// container roots; the fragment path is always compact.
//
// # Related Packages
//
//   - github.com/signadot/go-jsonpatch/ir - IR representation
package encode
