package jsonpatch

import (
	"errors"
	"testing"

	"github.com/signadot/go-jsonpatch/ir"
	"github.com/signadot/go-jsonpatch/pointer"
)

func TestResolve(t *testing.T) {
	doc := mustNode(t, `{"a":{"b":[1,2,3]},"":{"c":4},"x/y":5,"~":6,"arr":[]}`)
	tests := []struct {
		ptr string
		res string
		err error
	}{
		{ptr: "", res: `{"a":{"b":[1,2,3]},"":{"c":4},"x/y":5,"~":6,"arr":[]}`},
		{ptr: "/a", res: `{"b":[1,2,3]}`},
		{ptr: "/a/b", res: `[1,2,3]`},
		{ptr: "/a/b/0", res: `1`},
		{ptr: "/a/b/2", res: `3`},
		{ptr: "/a/b/-", res: `3`},
		{ptr: "//c", res: `4`},
		{ptr: "/x~1y", res: `5`},
		{ptr: "/~0", res: `6`},
		{ptr: "/a/b/3", err: ErrReferencesNonexistentValue},
		{ptr: "/a/b/01", err: ErrReferencesNonexistentValue},
		{ptr: "/a/b/-1", err: ErrReferencesNonexistentValue},
		{ptr: "/a/b/x", err: ErrReferencesNonexistentValue},
		{ptr: "/a/c", err: ErrReferencesNonexistentValue},
		{ptr: "/a/b/0/deeper", err: ErrReferencesNonexistentValue},
		{ptr: "/arr/-", err: ErrReferencesNonexistentValue},
		{ptr: "/missing", err: ErrReferencesNonexistentValue},
	}
	for _, tc := range tests {
		t.Run(tc.ptr, func(t *testing.T) {
			p, err := pointer.Parse(tc.ptr)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Resolve(doc, p)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !ir.Equal(got, mustNode(t, tc.res)) {
				t.Errorf("got %s, want %s", encodeStr(t, got), tc.res)
			}
		})
	}
}

func TestMakeExclusivePath(t *testing.T) {
	doc := mustNode(t, `{"a":{"b":{"c":1}},"sib":{"d":2}}`)
	p, _ := pointer.Parse("/a/b")
	root, parent, err := makeExclusivePath(doc, p)
	if err != nil {
		t.Fatal(err)
	}
	if root == doc {
		t.Errorf("root not copied")
	}
	if !parent.IsMutable() {
		t.Errorf("returned parent not mutable")
	}
	if parent == ir.Get(ir.Get(doc, "a"), "b") {
		t.Errorf("parent is the shared node")
	}
	// everything off the spine stays shared with the original
	if ir.Get(root, "sib") != ir.Get(doc, "sib") {
		t.Errorf("sibling subtree copied")
	}
	if ir.Get(parent, "c") != ir.Get(ir.Get(ir.Get(doc, "a"), "b"), "c") {
		t.Errorf("leaf below target copied")
	}
	// the original document is untouched
	if !ir.Equal(doc, mustNode(t, `{"a":{"b":{"c":1}},"sib":{"d":2}}`)) {
		t.Errorf("original changed")
	}
}
