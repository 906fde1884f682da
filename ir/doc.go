// Package ir provides the intermediate representation for JSON documents
// handled by the patch engine.
//
// # Overview
//
// A document is a tree of Node values. The IR is a simple recursive tagged
// union: the Type field says which payload fields are meaningful. Documents
// enter the IR either from already-decoded Go values (FromAny) or from JSON
// bytes (Decode), and leave it through package encode.
//
// # Ownership
//
// The IR supports persistent updates through an ownership tag on container
// nodes. Freshly decoded or constructed trees are shared; the patch engine
// promotes containers to exclusive along the path it mutates (ToExclusive)
// and reseals the result (Share) when it is done. A holder of a reference
// to the pre-patch tree never observes the mutation, because shared nodes
// are only ever copied, not written.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
package ir
