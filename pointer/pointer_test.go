package pointer

import (
	"errors"
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		toks Pointer
		err  bool
	}{
		{raw: "", toks: nil},
		{raw: "/", toks: Pointer{""}},
		{raw: "/a", toks: Pointer{"a"}},
		{raw: "/a/b", toks: Pointer{"a", "b"}},
		{raw: "/a//b", toks: Pointer{"a", "", "b"}},
		{raw: "/a~1b", toks: Pointer{"a/b"}},
		{raw: "/m~0n", toks: Pointer{"m~n"}},
		{raw: "/~01", toks: Pointer{"~1"}},
		{raw: "/ ", toks: Pointer{" "}},
		{raw: "/c%d", toks: Pointer{"c%d"}},
		{raw: "/0", toks: Pointer{"0"}},
		{raw: "a/b", err: true},
		{raw: "~1", err: true},
	}
	for _, tc := range tests {
		p, err := Parse(tc.raw)
		if tc.err {
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q): expected ErrSyntax, got %v", tc.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tc.raw, err)
			continue
		}
		if !slices.Equal(p, tc.toks) {
			t.Errorf("Parse(%q) = %#v, want %#v", tc.raw, p, tc.toks)
		}
		if got := p.String(); got != tc.raw {
			t.Errorf("Parse(%q).String() = %q", tc.raw, got)
		}
	}
}

func TestParent(t *testing.T) {
	p, err := Parse("/a/b/c")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"/a/b", "/a", ""}
	for _, w := range want {
		parent, ok := p.Parent()
		if !ok {
			t.Fatalf("no parent of %q", p.String())
		}
		if parent.String() != w {
			t.Fatalf("parent of %q = %q, want %q", p.String(), parent.String(), w)
		}
		p = parent
	}
	if _, ok := p.Parent(); ok {
		t.Errorf("root pointer has a parent")
	}
}

func TestIsValidArrayIndex(t *testing.T) {
	tests := []struct {
		tok   string
		valid bool
	}{
		{"0", true},
		{"1", true},
		{"10", true},
		{"907", true},
		{"01", false},
		{"00", false},
		{"-", false},
		{"-1", false},
		{"+1", false},
		{"1e3", false},
		{"", false},
		{"a", false},
	}
	for _, tc := range tests {
		if got := IsValidArrayIndex(tc.tok); got != tc.valid {
			t.Errorf("IsValidArrayIndex(%q) = %v, want %v", tc.tok, got, tc.valid)
		}
		if _, err := ArrayIndex(tc.tok); (err == nil) != tc.valid {
			t.Errorf("ArrayIndex(%q) err = %v, valid %v", tc.tok, err, tc.valid)
		}
	}
}

func TestIsPrefixOf(t *testing.T) {
	tests := []struct {
		p, q string
		want bool
	}{
		{"/a", "/a/b", true},
		{"/a", "/a", false},
		{"/a", "/ab", false},
		{"/a/b", "/a", false},
		{"", "/a", true},
		{"", "", false},
	}
	for _, tc := range tests {
		p, _ := Parse(tc.p)
		q, _ := Parse(tc.q)
		if got := p.IsPrefixOf(q); got != tc.want {
			t.Errorf("IsPrefixOf(%q, %q) = %v, want %v", tc.p, tc.q, got, tc.want)
		}
	}
}
